package session

import (
	"github.com/avasker/scrawl/buffer"
	"github.com/avasker/scrawl/cursor"
	"github.com/avasker/scrawl/layout"
	"github.com/avasker/scrawl/metrics"
	"github.com/avasker/scrawl/undo"
)

// Config configures a Session. Zero values select the defaults: empty text,
// fixed-advance metrics at the default font size, an in-process clipboard,
// and default undo tuning.
type Config struct {
	// Initial text for the buffer.
	Text string

	// Metrics shapes lines for the coordinate mapper. Nil selects
	// metrics.Fixed.
	Metrics metrics.Provider

	// Font is the initial font configuration. The zero value selects
	// DefaultFontSize with no family.
	Font metrics.FontConfig

	// Clipboard backs Copy/Cut/Paste. Nil selects a MemoryClipboard.
	Clipboard Clipboard

	// Undo is forwarded to the undo engine.
	Undo undo.Config
}

// Session is the editing façade. It owns its buffer exclusively; all
// mutation goes through Session methods. Not safe for concurrent use.
type Session struct {
	buf    *buffer.Buffer
	cur    *cursor.Model
	hist   *undo.Engine
	mapper *layout.Mapper
	clip   Clipboard
	subs   []func(Change)
}

// New builds a Session from cfg. It fails only when cfg.Font is set and
// invalid.
func New(cfg Config) (*Session, error) {
	prov := cfg.Metrics
	if prov == nil {
		prov = metrics.Fixed{}
	}
	font := cfg.Font
	if font == (metrics.FontConfig{}) {
		font = metrics.FontConfig{Size: DefaultFontSize}
	}
	clip := cfg.Clipboard
	if clip == nil {
		clip = &MemoryClipboard{}
	}

	buf := buffer.New(cfg.Text)
	mapper, err := layout.NewMapper(buf, prov, font)
	if err != nil {
		return nil, err
	}
	return &Session{
		buf:    buf,
		cur:    cursor.NewModel(),
		hist:   undo.NewEngine(cfg.Undo),
		mapper: mapper,
		clip:   clip,
	}, nil
}

// Text returns the whole document.
func (s *Session) Text() string { return s.buf.Text() }

// Version returns the buffer version. It increases on every effective
// mutation.
func (s *Session) Version() uint64 { return s.buf.Version() }

// LineCount returns the number of lines; always at least one.
func (s *Session) LineCount() int { return s.buf.LineCount() }

// LineText returns the content of line i without its trailing break.
func (s *Session) LineText(i int) (string, error) { return s.buf.LineText(i) }

// SetText replaces the whole document, drops history, and moves the caret to
// the origin. The reload path uses this.
func (s *Session) SetText(text string) {
	s.buf.SetText(text)
	s.cur.Restore(cursor.State{})
	s.hist.Reset()
	s.emit(0, s.buf.LineCount()-1)
}

// Head returns the caret position.
func (s *Session) Head() buffer.Pos { return s.buf.Clamp(s.cur.Head()) }

// Selection returns the normalized selection range, if one is active.
func (s *Session) Selection() (buffer.Range, bool) { return s.cur.Selection() }

// SelectedText returns the selected text, or "" without a selection.
func (s *Session) SelectedText() string {
	r, ok := s.cur.Selection()
	if !ok {
		return ""
	}
	text, _ := s.buf.TextRange(r)
	return text
}

// Move applies a cursor movement. Movement never mutates the buffer and
// emits no change.
func (s *Session) Move(mv cursor.Move) { s.cur.Move(s.buf, mv) }

// SelectAll selects the whole document and puts the caret at the end.
func (s *Session) SelectAll() { s.cur.SelectAll(s.buf) }

// PointerDown starts a pointer gesture: the caret jumps to the hit position
// and any selection collapses.
func (s *Session) PointerDown(pt layout.Point) {
	s.cur.MoveTo(s.buf, s.mapper.PositionForPoint(pt), false)
}

// PointerDrag extends the gesture's selection to the hit position.
func (s *Session) PointerDrag(pt layout.Point) {
	s.cur.MoveTo(s.buf, s.mapper.PositionForPoint(pt), true)
}

// PointerUp ends a pointer gesture. Empty selections are never retained, so
// there is nothing left to collapse; the method completes the protocol.
func (s *Session) PointerUp() {}
