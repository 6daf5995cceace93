// Package layout maps between buffer positions and screen geometry. A Mapper
// shapes lines through a metrics.Provider on demand and caches the result
// per line, keyed on the buffer's line versions, so edits reshape only the
// lines they touched and a font change reshapes everything.
package layout

// Point is a screen coordinate in the provider's units (pixels for font
// providers, cells for the terminal provider). The origin is the top-left
// of the document.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}
