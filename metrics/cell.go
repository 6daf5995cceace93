package metrics

import (
	"unicode/utf8"

	"github.com/avasker/scrawl/internal/grapheme"
)

// Cell measures in terminal cells: narrow runes advance 1, wide (East Asian)
// runes 2, and every line is 1 cell tall. Widths are assigned per grapheme
// cluster so a combining sequence or ZWJ emoji is counted once; codepoints
// after the first in a cluster carry zero width at the cluster's trailing
// edge. Font size does not affect cell measurement but the configuration is
// still validated.
type Cell struct{}

func (Cell) ShapeLine(text string, cfg FontConfig) ([]Glyph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	glyphs := make([]Glyph, 0, utf8.RuneCountInString(text))
	x := 0.0
	i := 0
	for _, cl := range grapheme.Clusters(text) {
		w := float64(cl.Cells)
		glyphs = append(glyphs, Glyph{Index: i, X: x, Width: w})
		i++
		for r := 1; r < cl.Runes; r++ {
			glyphs = append(glyphs, Glyph{Index: i, X: x + w})
			i++
		}
		x += w
	}
	return glyphs, nil
}

func (Cell) LineHeight(cfg FontConfig) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	return 1, nil
}
