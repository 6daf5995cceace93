// Package metrics defines the measurement seam between the editing core and
// text shaping. Providers turn a line of text into per-codepoint horizontal
// offsets and advances; everything above (layout, hit testing) is independent
// of how measurement happens.
//
// Shaping is deterministic: identical text and font configuration yield
// identical glyphs.
package metrics

import (
	"errors"
	"fmt"
)

// ErrInvalidFontConfig reports a font configuration no provider can shape
// with. Test with errors.Is.
var ErrInvalidFontConfig = errors.New("invalid font config")

// FontConfig selects the font used for measurement. Family is advisory;
// providers that render a single face ignore it but it still keys layout
// caches.
type FontConfig struct {
	Size   float64
	Family string
}

// Validate rejects configurations with a non-positive size.
func (c FontConfig) Validate() error {
	if !(c.Size > 0) {
		return fmt.Errorf("size %v: %w", c.Size, ErrInvalidFontConfig)
	}
	return nil
}

// Glyph is the measurement of one codepoint: its index within the line, the
// x-offset of its left edge, and its advance width. Offsets start at 0 and
// are non-decreasing.
type Glyph struct {
	Index int
	X     float64
	Width float64
}

// Provider measures text under a font configuration.
type Provider interface {
	// ShapeLine measures one line (no newlines) and returns one Glyph per
	// codepoint, in order.
	ShapeLine(text string, cfg FontConfig) ([]Glyph, error)
	// LineHeight returns the vertical extent of one line.
	LineHeight(cfg FontConfig) (float64, error)
}
