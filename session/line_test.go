package session

import (
	"testing"

	"github.com/avasker/scrawl/buffer"
)

func TestSession_DeleteLine(t *testing.T) {
	s, _ := newSession(t, "aa\nbb\ncc")
	seek(s, buffer.Pos{Line: 1, Col: 1})

	s.DeleteLine()
	if got, want := s.Text(), "aa\ncc"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := s.Head(), (buffer.Pos{Line: 1, Col: 0}); got != want {
		t.Fatalf("head: got %v, want %v", got, want)
	}

	s.Undo()
	if got, want := s.Text(), "aa\nbb\ncc"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
	if got, want := s.Head(), (buffer.Pos{Line: 1, Col: 1}); got != want {
		t.Fatalf("head after undo: got %v, want %v", got, want)
	}
}

func TestSession_DeleteLastLine(t *testing.T) {
	s, _ := newSession(t, "aa\nbb")
	seek(s, buffer.Pos{Line: 1, Col: 1})

	s.DeleteLine()
	if got, want := s.Text(), "aa"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := s.Head(), (buffer.Pos{}); got != want {
		t.Fatalf("head: got %v, want %v", got, want)
	}
}

func TestSession_DeleteOnlyLineClears(t *testing.T) {
	s, _ := newSession(t, "abc")
	seek(s, buffer.Pos{Line: 0, Col: 2})

	s.DeleteLine()
	if got, want := s.Text(), ""; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := s.LineCount(), 1; got != want {
		t.Fatalf("line count: got %d, want %d", got, want)
	}

	v := s.Version()
	s.DeleteLine()
	if got, want := s.Version(), v; got != want {
		t.Fatalf("version after empty no-op: got %d, want %d", got, want)
	}
}

func TestSession_MoveLineUpDown(t *testing.T) {
	s, _ := newSession(t, "aa\nbb\ncc")
	seek(s, buffer.Pos{Line: 1, Col: 1})

	s.MoveLineUp()
	if got, want := s.Text(), "bb\naa\ncc"; got != want {
		t.Fatalf("text after up: got %q, want %q", got, want)
	}
	if got, want := s.Head(), (buffer.Pos{Line: 0, Col: 1}); got != want {
		t.Fatalf("head after up: got %v, want %v", got, want)
	}

	v := s.Version()
	s.MoveLineUp()
	if got, want := s.Version(), v; got != want {
		t.Fatalf("version after top no-op: got %d, want %d", got, want)
	}

	s.MoveLineDown()
	if got, want := s.Text(), "aa\nbb\ncc"; got != want {
		t.Fatalf("text after down: got %q, want %q", got, want)
	}
	if got, want := s.Head(), (buffer.Pos{Line: 1, Col: 1}); got != want {
		t.Fatalf("head after down: got %v, want %v", got, want)
	}

	s.MoveLineDown()
	if got, want := s.Text(), "aa\ncc\nbb"; got != want {
		t.Fatalf("text after second down: got %q, want %q", got, want)
	}
	if got, want := s.Head(), (buffer.Pos{Line: 2, Col: 1}); got != want {
		t.Fatalf("head after second down: got %v, want %v", got, want)
	}

	v = s.Version()
	s.MoveLineDown()
	if got, want := s.Version(), v; got != want {
		t.Fatalf("version after bottom no-op: got %d, want %d", got, want)
	}

	s.Undo()
	if got, want := s.Text(), "aa\nbb\ncc"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
	if got, want := s.Head(), (buffer.Pos{Line: 1, Col: 1}); got != want {
		t.Fatalf("head after undo: got %v, want %v", got, want)
	}
}

func TestSession_MoveLineCollapsesSelection(t *testing.T) {
	s, _ := newSession(t, "aa\nbb")
	selectRange(s, buffer.Pos{Line: 1, Col: 0}, buffer.Pos{Line: 1, Col: 2})

	s.MoveLineUp()
	if got, want := s.Text(), "bb\naa"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if _, ok := s.Selection(); ok {
		t.Fatalf("selection survived line move")
	}
	if got, want := s.Head(), (buffer.Pos{Line: 0, Col: 2}); got != want {
		t.Fatalf("head: got %v, want %v", got, want)
	}
}

func TestSession_IndentAtCaret(t *testing.T) {
	s, _ := newSession(t, "ab")
	seek(s, buffer.Pos{Line: 0, Col: 1})

	s.Indent()
	if got, want := s.Text(), "a  b"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := s.Head(), (buffer.Pos{Line: 0, Col: 3}); got != want {
		t.Fatalf("head: got %v, want %v", got, want)
	}

	s.Undo()
	if got, want := s.Text(), "ab"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
}

func TestSession_IndentSelectionPerLine(t *testing.T) {
	s, _ := newSession(t, "aa\nbb\ncc")
	selectRange(s, buffer.Pos{Line: 0, Col: 1}, buffer.Pos{Line: 1, Col: 1})

	s.Indent()
	if got, want := s.Text(), "  aa\n  bb\ncc"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	r, ok := s.Selection()
	if !ok {
		t.Fatalf("selection lost after indent")
	}
	if got, want := r.Start, (buffer.Pos{Line: 0, Col: 3}); got != want {
		t.Fatalf("selection start: got %v, want %v", got, want)
	}
	if got, want := r.End, (buffer.Pos{Line: 1, Col: 3}); got != want {
		t.Fatalf("selection end: got %v, want %v", got, want)
	}

	s.Outdent()
	if got, want := s.Text(), "aa\nbb\ncc"; got != want {
		t.Fatalf("text after outdent: got %q, want %q", got, want)
	}
	r, ok = s.Selection()
	if !ok {
		t.Fatalf("selection lost after outdent")
	}
	if got, want := r.Start, (buffer.Pos{Line: 0, Col: 1}); got != want {
		t.Fatalf("selection start after outdent: got %v, want %v", got, want)
	}
	if got, want := r.End, (buffer.Pos{Line: 1, Col: 1}); got != want {
		t.Fatalf("selection end after outdent: got %v, want %v", got, want)
	}

	// One atomic step each way.
	s.Undo()
	if got, want := s.Text(), "  aa\n  bb\ncc"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
	s.Undo()
	if got, want := s.Text(), "aa\nbb\ncc"; got != want {
		t.Fatalf("text after second undo: got %q, want %q", got, want)
	}
}

func TestSession_IndentSkipsLineAfterSelectionEnd(t *testing.T) {
	s, _ := newSession(t, "aa\nbb")
	selectRange(s, buffer.Pos{}, buffer.Pos{Line: 1, Col: 0})

	s.Indent()
	if got, want := s.Text(), "  aa\nbb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	r, ok := s.Selection()
	if !ok {
		t.Fatalf("selection lost")
	}
	if got, want := r.Start, (buffer.Pos{}); got != want {
		t.Fatalf("selection start: got %v, want %v", got, want)
	}
	if got, want := r.End, (buffer.Pos{Line: 1, Col: 0}); got != want {
		t.Fatalf("selection end: got %v, want %v", got, want)
	}
}

func TestSession_OutdentStripsWhatIsThere(t *testing.T) {
	s, _ := newSession(t, " aa\nbb\n  cc")
	selectRange(s, buffer.Pos{}, buffer.Pos{Line: 2, Col: 2})

	s.Outdent()
	if got, want := s.Text(), "aa\nbb\ncc"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	v := s.Version()
	s.Outdent()
	if got, want := s.Version(), v; got != want {
		t.Fatalf("version after nothing to strip: got %d, want %d", got, want)
	}
}

func TestSession_OutdentWithoutSelection(t *testing.T) {
	s, _ := newSession(t, "  aa")
	seek(s, buffer.Pos{Line: 0, Col: 3})

	s.Outdent()
	if got, want := s.Text(), "aa"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := s.Head(), (buffer.Pos{Line: 0, Col: 1}); got != want {
		t.Fatalf("head: got %v, want %v", got, want)
	}
}
