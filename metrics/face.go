package metrics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

const faceDPI = 72

// Face measures with a real font face: per-rune glyph advances plus kerning,
// in 26.6 fixed point converted to float64 pixels. Faces are built lazily
// and cached per size.
//
// Face is the full-shaping end of the measurement seam. Swapping it in for
// Fixed changes no caller.
type Face struct {
	fnt   *sfnt.Font
	faces map[float64]font.Face
}

// NewFace returns a Face measuring with the embedded Go Mono font.
func NewFace() (*Face, error) {
	return NewFaceFromData(gomono.TTF)
}

// NewFaceFromData returns a Face measuring with the given TTF/OTF data.
func NewFaceFromData(data []byte) (*Face, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Face{fnt: fnt, faces: make(map[float64]font.Face)}, nil
}

func (p *Face) face(size float64) (font.Face, error) {
	if f, ok := p.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(p.fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     faceDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	p.faces[size] = f
	return f, nil
}

func (p *Face) ShapeLine(text string, cfg FontConfig) ([]Glyph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fc, err := p.face(cfg.Size)
	if err != nil {
		return nil, err
	}
	glyphs := make([]Glyph, 0, len(text))
	var x fixed.Int26_6
	var prev rune
	i := 0
	for _, r := range text {
		if prev != 0 {
			x += fc.Kern(prev, r)
		}
		prev = r
		adv := glyphAdvance(fc, r)
		glyphs = append(glyphs, Glyph{Index: i, X: fixedToFloat(x), Width: fixedToFloat(adv)})
		x += adv
		i++
	}
	return glyphs, nil
}

func (p *Face) LineHeight(cfg FontConfig) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	fc, err := p.face(cfg.Size)
	if err != nil {
		return 0, err
	}
	return fixedToFloat(fc.Metrics().Height), nil
}

// glyphAdvance falls back to the replacement character for runes the face
// has no glyph for. Tabs measure as a single space.
func glyphAdvance(fc font.Face, r rune) fixed.Int26_6 {
	if r == '\t' {
		r = ' '
	}
	adv, ok := fc.GlyphAdvance(r)
	if !ok {
		adv, _ = fc.GlyphAdvance('�')
	}
	return adv
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
