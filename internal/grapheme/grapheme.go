// Package grapheme segments text into Unicode grapheme clusters and measures
// their terminal-cell widths. The editing core addresses text in codepoints;
// this package exists so cell-based measurement can stay cluster-aware.
package grapheme

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster with its codepoint count and cell width.
type Cluster struct {
	Text  string
	Runes int
	Cells int
}

// Clusters returns the grapheme clusters of text in order.
func Clusters(text string) []Cluster {
	if text == "" {
		return nil
	}
	out := make([]Cluster, 0, utf8.RuneCountInString(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		s := g.Str()
		out = append(out, Cluster{
			Text:  s,
			Runes: len(g.Runes()),
			Cells: Cells(s),
		})
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	n := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		n++
	}
	return n
}

// Cells returns the terminal-cell width of a single cluster.
//
// runewidth reports zero for some sequences uniseg understands (ZWJ emoji);
// take the larger of the two. Tabs measure one cell: the session inserts
// spaces for indentation, so a literal tab only arrives via pasted or loaded
// text and still needs a selectable column.
func Cells(cluster string) int {
	if cluster == "\t" {
		return 1
	}
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}
