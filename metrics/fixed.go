package metrics

// Ratios relative to the font size. Every codepoint advances by the same
// width, which makes this provider exact for the monospace scratchpad look
// and trivially fast.
const (
	fixedAdvanceRatio = 0.6
	fixedHeightRatio  = 1.5
)

// Fixed measures every codepoint at 0.6 times the font size, with a line
// height of 1.5 times the font size. It is the default provider.
type Fixed struct{}

func (Fixed) ShapeLine(text string, cfg FontConfig) ([]Glyph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	adv := fixedAdvanceRatio * cfg.Size
	glyphs := make([]Glyph, 0, len(text))
	x := 0.0
	i := 0
	for range text {
		glyphs = append(glyphs, Glyph{Index: i, X: x, Width: adv})
		x += adv
		i++
	}
	return glyphs, nil
}

func (Fixed) LineHeight(cfg FontConfig) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	return fixedHeightRatio * cfg.Size, nil
}
