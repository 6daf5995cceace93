package session

import (
	"github.com/avasker/scrawl/buffer"
	"github.com/avasker/scrawl/layout"
	"github.com/avasker/scrawl/metrics"
)

// Font size bounds for the step operations.
const (
	DefaultFontSize = 24.0
	MinFontSize     = 8.0
	MaxFontSize     = 72.0
	FontSizeStep    = 2.0
)

// PointForPosition returns the top-left point of the glyph slot at p.
func (s *Session) PointForPosition(p buffer.Pos) (layout.Point, error) {
	return s.mapper.PointForPosition(p)
}

// PositionForPoint returns the buffer position nearest pt. It never fails;
// out-of-bounds points clamp to the document edges.
func (s *Session) PositionForPoint(pt layout.Point) buffer.Pos {
	return s.mapper.PositionForPoint(pt)
}

// CaretPoint returns the caret's top-left point.
func (s *Session) CaretPoint() layout.Point {
	pt, err := s.mapper.PointForPosition(s.buf.Clamp(s.cur.Head()))
	if err != nil {
		return layout.Point{}
	}
	return pt
}

// SelectionRects returns one rectangle per selected line, or nil without a
// selection.
func (s *Session) SelectionRects() []layout.Rect {
	r, ok := s.cur.Selection()
	if !ok {
		return nil
	}
	rects, err := s.mapper.RangeRects(r)
	if err != nil {
		return nil
	}
	return rects
}

// LineHeight returns the line height under the current font configuration.
func (s *Session) LineHeight() float64 { return s.mapper.LineHeight() }

// FontConfig returns the current font configuration.
func (s *Session) FontConfig() metrics.FontConfig { return s.mapper.FontConfig() }

// SetFontConfig replaces the font configuration, dropping all cached
// layouts. Invalid configurations are rejected.
func (s *Session) SetFontConfig(cfg metrics.FontConfig) error {
	return s.mapper.SetFontConfig(cfg)
}

// IncreaseFontSize grows the font size one step, up to MaxFontSize. Font
// changes emit no Change: the text is untouched.
func (s *Session) IncreaseFontSize() { s.stepFontSize(FontSizeStep) }

// DecreaseFontSize shrinks the font size one step, down to MinFontSize.
func (s *Session) DecreaseFontSize() { s.stepFontSize(-FontSizeStep) }

// ResetFontSize restores DefaultFontSize.
func (s *Session) ResetFontSize() {
	cfg := s.mapper.FontConfig()
	cfg.Size = DefaultFontSize
	_ = s.mapper.SetFontConfig(cfg)
}

func (s *Session) stepFontSize(delta float64) {
	cfg := s.mapper.FontConfig()
	cfg.Size += delta
	if cfg.Size < MinFontSize {
		cfg.Size = MinFontSize
	}
	if cfg.Size > MaxFontSize {
		cfg.Size = MaxFontSize
	}
	_ = s.mapper.SetFontConfig(cfg)
}
