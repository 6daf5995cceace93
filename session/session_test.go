package session

import (
	"errors"
	"testing"
	"time"

	"github.com/avasker/scrawl/buffer"
	"github.com/avasker/scrawl/cursor"
	"github.com/avasker/scrawl/layout"
	"github.com/avasker/scrawl/metrics"
	"github.com/avasker/scrawl/undo"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newSession(t *testing.T, text string) (*Session, *testClock) {
	t.Helper()
	clk := &testClock{now: time.Unix(1000, 0)}
	s, err := New(Config{Text: text, Undo: undo.Config{Now: clk.Now}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, clk
}

// seek places the caret without going through geometry.
func seek(s *Session, p buffer.Pos) {
	s.cur.MoveTo(s.buf, p, false)
}

// selectRange selects from a to h, leaving the caret at h.
func selectRange(s *Session, a, h buffer.Pos) {
	s.cur.MoveTo(s.buf, a, false)
	s.cur.MoveTo(s.buf, h, true)
}

func typeText(s *Session, text string) {
	for _, r := range text {
		s.InsertText(string(r))
	}
}

func TestNew_Defaults(t *testing.T) {
	s, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := s.Text(), ""; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := s.LineCount(), 1; got != want {
		t.Fatalf("line count: got %d, want %d", got, want)
	}
	if got, want := s.Head(), (buffer.Pos{}); got != want {
		t.Fatalf("head: got %v, want %v", got, want)
	}
	if got, want := s.Version(), uint64(0); got != want {
		t.Fatalf("version: got %d, want %d", got, want)
	}
	if got, want := s.FontConfig().Size, float64(DefaultFontSize); got != want {
		t.Fatalf("font size: got %v, want %v", got, want)
	}
	if got, want := s.LineHeight(), 36.0; got != want {
		t.Fatalf("line height: got %v, want %v", got, want)
	}
	if s.CanUndo() {
		t.Fatalf("fresh session reports CanUndo")
	}
	if got, want := s.SelectedText(), ""; got != want {
		t.Fatalf("selected text: got %q, want %q", got, want)
	}
}

func TestNew_RejectsInvalidFont(t *testing.T) {
	_, err := New(Config{Font: metrics.FontConfig{Size: -4}})
	if !errors.Is(err, metrics.ErrInvalidFontConfig) {
		t.Fatalf("New error: got %v, want %v", err, metrics.ErrInvalidFontConfig)
	}
}

func TestSession_MoveDelegates(t *testing.T) {
	s, _ := newSession(t, "foo bar")
	s.Move(cursor.Move{Unit: cursor.UnitWord, Dir: cursor.DirRight})
	if got, want := s.Head(), (buffer.Pos{Line: 0, Col: 3}); got != want {
		t.Fatalf("head after word right: got %v, want %v", got, want)
	}
	s.Move(cursor.Move{Unit: cursor.UnitLine, Dir: cursor.DirEnd, Extend: true})
	if got, want := s.SelectedText(), " bar"; got != want {
		t.Fatalf("selected text: got %q, want %q", got, want)
	}
}

func TestSession_SelectAll(t *testing.T) {
	s, _ := newSession(t, "abc\ndef")
	s.SelectAll()
	if got, want := s.SelectedText(), "abc\ndef"; got != want {
		t.Fatalf("selected text: got %q, want %q", got, want)
	}
	if got, want := s.Head(), (buffer.Pos{Line: 1, Col: 3}); got != want {
		t.Fatalf("head: got %v, want %v", got, want)
	}
}

func TestSession_SetTextResetsHistoryAndCaret(t *testing.T) {
	s, _ := newSession(t, "")
	typeText(s, "abc")
	seek(s, buffer.Pos{Line: 0, Col: 2})

	s.SetText("new\ntext")
	if got, want := s.Text(), "new\ntext"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := s.Head(), (buffer.Pos{}); got != want {
		t.Fatalf("head: got %v, want %v", got, want)
	}
	if s.CanUndo() {
		t.Fatalf("CanUndo after SetText")
	}
	if s.Undo() {
		t.Fatalf("Undo after SetText reported a step")
	}
}

func TestSession_PointerSelectsByGeometry(t *testing.T) {
	// Size 10 under the fixed provider: advance 6, line height 15.
	s, err := New(Config{Text: "abc\ndef", Font: metrics.FontConfig{Size: 10}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.PointerDown(layout.Point{X: 7, Y: 1})
	if got, want := s.Head(), (buffer.Pos{Line: 0, Col: 1}); got != want {
		t.Fatalf("head after down: got %v, want %v", got, want)
	}
	if _, ok := s.Selection(); ok {
		t.Fatalf("selection active after plain down")
	}

	s.PointerDrag(layout.Point{X: 13, Y: 16})
	if got, want := s.Head(), (buffer.Pos{Line: 1, Col: 2}); got != want {
		t.Fatalf("head after drag: got %v, want %v", got, want)
	}
	if got, want := s.SelectedText(), "bc\nde"; got != want {
		t.Fatalf("selected text: got %q, want %q", got, want)
	}

	// Dragging back onto the anchor leaves no selection to keep.
	s.PointerDrag(layout.Point{X: 7, Y: 1})
	if _, ok := s.Selection(); ok {
		t.Fatalf("selection active after dragging back to anchor")
	}
	s.PointerUp()
	if got, want := s.Head(), (buffer.Pos{Line: 0, Col: 1}); got != want {
		t.Fatalf("head after up: got %v, want %v", got, want)
	}
}

func TestSession_ChangeEvents(t *testing.T) {
	s, _ := newSession(t, "ab")
	var events []Change
	s.Subscribe(func(ev Change) { events = append(events, ev) })

	s.InsertText("x")
	if got, want := len(events), 1; got != want {
		t.Fatalf("events after insert: got %d, want %d", got, want)
	}
	if got, want := events[0], (Change{Version: 1, FirstLine: 0, LastLine: 0}); got != want {
		t.Fatalf("insert event: got %+v, want %+v", got, want)
	}

	s.InsertNewline()
	if got, want := events[1], (Change{Version: 2, FirstLine: 0, LastLine: 1}); got != want {
		t.Fatalf("newline event: got %+v, want %+v", got, want)
	}

	s.Move(cursor.Move{Unit: cursor.UnitChar, Dir: cursor.DirRight})
	if got, want := len(events), 2; got != want {
		t.Fatalf("events after move: got %d, want %d", got, want)
	}

	seek(s, buffer.Pos{Line: 1, Col: 0})
	s.DeleteBackward()
	if got, want := events[2], (Change{Version: 3, FirstLine: 0, LastLine: 0}); got != want {
		t.Fatalf("join event: got %+v, want %+v", got, want)
	}

	s.Undo()
	if got, want := events[3], (Change{Version: 4, FirstLine: 0, LastLine: 1}); got != want {
		t.Fatalf("undo event: got %+v, want %+v", got, want)
	}

	// No-op mutations emit nothing.
	seek(s, s.buf.End())
	s.DeleteForward()
	if got, want := len(events), 4; got != want {
		t.Fatalf("events after no-op: got %d, want %d", got, want)
	}

	s.SetText("q\nr")
	if got, want := events[4], (Change{Version: 5, FirstLine: 0, LastLine: 1}); got != want {
		t.Fatalf("set text event: got %+v, want %+v", got, want)
	}
}

func TestSession_FontSizeSteps(t *testing.T) {
	s, _ := newSession(t, "x")
	var events []Change
	s.Subscribe(func(ev Change) { events = append(events, ev) })

	s.IncreaseFontSize()
	if got, want := s.FontConfig().Size, 26.0; got != want {
		t.Fatalf("size after increase: got %v, want %v", got, want)
	}
	s.ResetFontSize()
	if got, want := s.FontConfig().Size, 24.0; got != want {
		t.Fatalf("size after reset: got %v, want %v", got, want)
	}

	for i := 0; i < 12; i++ {
		s.DecreaseFontSize()
	}
	if got, want := s.FontConfig().Size, float64(MinFontSize); got != want {
		t.Fatalf("size at lower clamp: got %v, want %v", got, want)
	}
	if got, want := s.LineHeight(), 12.0; got != want {
		t.Fatalf("line height at size 8: got %v, want %v", got, want)
	}

	for i := 0; i < 40; i++ {
		s.IncreaseFontSize()
	}
	if got, want := s.FontConfig().Size, float64(MaxFontSize); got != want {
		t.Fatalf("size at upper clamp: got %v, want %v", got, want)
	}

	if err := s.SetFontConfig(metrics.FontConfig{Size: 0}); !errors.Is(err, metrics.ErrInvalidFontConfig) {
		t.Fatalf("SetFontConfig error: got %v, want %v", err, metrics.ErrInvalidFontConfig)
	}
	if got, want := s.FontConfig().Size, float64(MaxFontSize); got != want {
		t.Fatalf("size after rejected config: got %v, want %v", got, want)
	}

	if got, want := len(events), 0; got != want {
		t.Fatalf("font ops emitted events: got %d, want %d", got, want)
	}
}

func TestSession_CaretPointAndRects(t *testing.T) {
	s, err := New(Config{Text: "abc\ndef", Font: metrics.FontConfig{Size: 10}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	seek(s, buffer.Pos{Line: 1, Col: 2})
	if got, want := s.CaretPoint(), (layout.Point{X: 12, Y: 15}); got != want {
		t.Fatalf("caret point: got %v, want %v", got, want)
	}

	if got := s.SelectionRects(); got != nil {
		t.Fatalf("rects without selection: got %v, want nil", got)
	}
	selectRange(s, buffer.Pos{Line: 0, Col: 1}, buffer.Pos{Line: 1, Col: 2})
	rects := s.SelectionRects()
	if got, want := len(rects), 2; got != want {
		t.Fatalf("rect count: got %d, want %d", got, want)
	}
	if got, want := rects[0], (layout.Rect{X: 6, Y: 0, W: 12, H: 15}); got != want {
		t.Fatalf("first rect: got %v, want %v", got, want)
	}
	if got, want := rects[1], (layout.Rect{X: 0, Y: 15, W: 12, H: 15}); got != want {
		t.Fatalf("second rect: got %v, want %v", got, want)
	}

	pt, err := s.PointForPosition(buffer.Pos{Line: 0, Col: 3})
	if err != nil {
		t.Fatalf("PointForPosition: %v", err)
	}
	if got, want := pt, (layout.Point{X: 18, Y: 0}); got != want {
		t.Fatalf("point: got %v, want %v", got, want)
	}
	if got, want := s.PositionForPoint(layout.Point{X: 100, Y: 100}), (buffer.Pos{Line: 1, Col: 3}); got != want {
		t.Fatalf("position for far point: got %v, want %v", got, want)
	}
}
