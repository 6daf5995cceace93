package layout

import (
	"fmt"
	"math"

	"github.com/avasker/scrawl/buffer"
	"github.com/avasker/scrawl/metrics"
)

// lineLayout is one cached shaped line. version is the buffer's line version
// at shaping time; a mismatch on lookup forces a reshape.
type lineLayout struct {
	version uint64
	glyphs  []metrics.Glyph
	width   float64
}

// Mapper owns the shaped-line cache. It reads the buffer it was built with
// but never mutates it.
//
// Mapper is not safe for concurrent use.
type Mapper struct {
	buf    *buffer.Buffer
	prov   metrics.Provider
	cfg    metrics.FontConfig
	height float64
	cache  map[int]lineLayout
	known  int // last observed line count, for eviction on shrink
}

// NewMapper builds a mapper over buf using prov under cfg. The configuration
// is validated up front.
func NewMapper(buf *buffer.Buffer, prov metrics.Provider, cfg metrics.FontConfig) (*Mapper, error) {
	m := &Mapper{buf: buf, cache: make(map[int]lineLayout)}
	if err := m.configure(prov, cfg); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mapper) configure(prov metrics.Provider, cfg metrics.FontConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	h, err := prov.LineHeight(cfg)
	if err != nil {
		return err
	}
	m.prov = prov
	m.cfg = cfg
	m.height = h
	m.cache = make(map[int]lineLayout)
	m.known = 0
	return nil
}

// SetFontConfig switches the font configuration and drops the cache. Setting
// the current configuration again is a no-op.
func (m *Mapper) SetFontConfig(cfg metrics.FontConfig) error {
	if cfg == m.cfg {
		return nil
	}
	return m.configure(m.prov, cfg)
}

// SetProvider switches the measurement provider and drops the cache.
func (m *Mapper) SetProvider(prov metrics.Provider) error {
	return m.configure(prov, m.cfg)
}

// FontConfig returns the active font configuration.
func (m *Mapper) FontConfig() metrics.FontConfig {
	return m.cfg
}

// LineHeight returns the height of one line under the active configuration.
func (m *Mapper) LineHeight() float64 {
	return m.height
}

// PointForPosition returns the top-left of the caret at p: the x-offset of
// the codepoint at p.Col (the line width when p.Col is the line length) and
// y of the line's top edge.
func (m *Mapper) PointForPosition(p buffer.Pos) (Point, error) {
	m.evictBeyondLineCount()
	lay, err := m.layoutFor(p.Line)
	if err != nil {
		return Point{}, err
	}
	if p.Col < 0 || p.Col > len(lay.glyphs) {
		return Point{}, fmt.Errorf("column %d on line %d: %w", p.Col, p.Line, buffer.ErrOutOfRange)
	}
	return Point{X: xAt(lay, p.Col), Y: float64(p.Line) * m.height}, nil
}

// PositionForPoint returns the buffer position nearest pt. It never fails:
// the vertical coordinate clamps into the document and the horizontal
// coordinate snaps to the nearest codepoint boundary, ties going right.
func (m *Mapper) PositionForPoint(pt Point) buffer.Pos {
	m.evictBeyondLineCount()
	line := 0
	if m.height > 0 {
		line = int(math.Floor(pt.Y / m.height))
	}
	if line < 0 {
		line = 0
	}
	if last := m.buf.LineCount() - 1; line > last {
		line = last
	}
	lay, err := m.layoutFor(line)
	if err != nil {
		return buffer.Pos{Line: line}
	}
	return buffer.Pos{Line: line, Col: nearestCol(lay, pt.X)}
}

// RangeRects returns one rectangle per line the normalized range touches.
// Lines fully inside the range span their whole width; an empty line inside
// the range yields a zero-width rectangle.
func (m *Mapper) RangeRects(r buffer.Range) ([]Rect, error) {
	m.evictBeyondLineCount()
	r = r.Normalized()
	if r.Empty() {
		return nil, nil
	}
	rects := make([]Rect, 0, r.End.Line-r.Start.Line+1)
	for line := r.Start.Line; line <= r.End.Line; line++ {
		lay, err := m.layoutFor(line)
		if err != nil {
			return nil, err
		}
		startCol, endCol := 0, len(lay.glyphs)
		if line == r.Start.Line {
			startCol = r.Start.Col
		}
		if line == r.End.Line {
			endCol = r.End.Col
		}
		if startCol < 0 || endCol > len(lay.glyphs) {
			return nil, fmt.Errorf("range %v..%v on line %d: %w", r.Start, r.End, line, buffer.ErrOutOfRange)
		}
		x0, x1 := xAt(lay, startCol), xAt(lay, endCol)
		rects = append(rects, Rect{X: x0, Y: float64(line) * m.height, W: x1 - x0, H: m.height})
	}
	return rects, nil
}

// layoutFor returns the cached layout for line i, reshaping when the line
// version moved on.
func (m *Mapper) layoutFor(i int) (lineLayout, error) {
	lv, err := m.buf.LineVersion(i)
	if err != nil {
		return lineLayout{}, err
	}
	if lay, ok := m.cache[i]; ok && lay.version == lv {
		return lay, nil
	}
	text, err := m.buf.LineText(i)
	if err != nil {
		return lineLayout{}, err
	}
	glyphs, err := m.prov.ShapeLine(text, m.cfg)
	if err != nil {
		return lineLayout{}, err
	}
	lay := lineLayout{version: lv, glyphs: glyphs, width: lineWidth(glyphs)}
	m.cache[i] = lay
	return lay, nil
}

// evictBeyondLineCount drops cache entries for lines the buffer no longer
// has. Entries for surviving lines are left alone; stale ones fall out via
// the version check.
func (m *Mapper) evictBeyondLineCount() {
	n := m.buf.LineCount()
	if n >= m.known {
		m.known = n
		return
	}
	for i := range m.cache {
		if i >= n {
			delete(m.cache, i)
		}
	}
	m.known = n
}

func xAt(lay lineLayout, col int) float64 {
	if col < len(lay.glyphs) {
		return lay.glyphs[col].X
	}
	return lay.width
}

// nearestCol snaps x to the nearest codepoint boundary by comparing against
// the midpoint of each glyph's span.
func nearestCol(lay lineLayout, x float64) int {
	n := len(lay.glyphs)
	for j := 0; j < n; j++ {
		right := lay.width
		if j+1 < n {
			right = lay.glyphs[j+1].X
		}
		if x < (lay.glyphs[j].X+right)/2 {
			return j
		}
	}
	return n
}

func lineWidth(glyphs []metrics.Glyph) float64 {
	if len(glyphs) == 0 {
		return 0
	}
	last := glyphs[len(glyphs)-1]
	return last.X + last.Width
}
