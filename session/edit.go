package session

import (
	"strings"

	"github.com/avasker/scrawl/autoformat"
	"github.com/avasker/scrawl/buffer"
)

// InsertText inserts text at the caret, replacing the selection if one is
// active. A replace or an insert containing a line break records as one
// atomic undo step; plain typing coalesces.
func (s *Session) InsertText(text string) {
	if text == "" {
		return
	}
	if r, ok := s.cur.Selection(); ok {
		s.replaceSelection(r, text)
		return
	}
	before := s.cur.State()
	at := s.buf.Clamp(s.cur.Head())
	end, _ := s.buf.Insert(at, text)
	s.cur.MoveTo(s.buf, end, false)
	s.hist.RecordInsert(at, text, before, s.cur.State())
	if strings.ContainsRune(text, '\n') {
		s.emitStructural(at.Line)
		return
	}
	s.emit(at.Line, at.Line)
}

// InsertNewline breaks the line at the caret and auto-inserts the list or
// indent continuation computed from the text left of the break. Break and
// continuation land as one atomic undo step; an active selection is replaced
// by the break.
func (s *Session) InsertNewline() {
	before := s.cur.State()
	at := s.buf.Clamp(s.cur.Head())
	var deleted string
	if r, ok := s.cur.Selection(); ok {
		deleted, _ = s.buf.Delete(r)
		at = r.Start
	}
	line, _ := s.buf.LineText(at.Line)
	left := string([]rune(line)[:at.Col])
	text := "\n" + autoformat.Continuation(left)

	end, _ := s.buf.Insert(at, text)
	s.cur.MoveTo(s.buf, end, false)
	if deleted != "" {
		s.hist.RecordReplace(at, deleted, text, before, s.cur.State())
	} else {
		s.hist.RecordInsert(at, text, before, s.cur.State())
	}
	s.emitStructural(at.Line)
}

// DeleteBackward deletes the selection if active, else the character before
// the caret, joining with the previous line at column zero. At the document
// origin it is a no-op.
func (s *Session) DeleteBackward() {
	if r, ok := s.cur.Selection(); ok {
		s.replaceSelection(r, "")
		return
	}
	before := s.cur.State()
	at := s.buf.Clamp(s.cur.Head())
	if at == (buffer.Pos{}) {
		return
	}
	start := buffer.Pos{Line: at.Line, Col: at.Col - 1}
	if at.Col == 0 {
		n, _ := s.buf.LineLen(at.Line - 1)
		start = buffer.Pos{Line: at.Line - 1, Col: n}
	}
	deleted, _ := s.buf.Delete(buffer.Range{Start: start, End: at})
	s.cur.MoveTo(s.buf, start, false)
	s.hist.RecordDelete(start, deleted, before, s.cur.State())
	if start.Line != at.Line {
		s.emitStructural(start.Line)
		return
	}
	s.emit(start.Line, start.Line)
}

// DeleteForward deletes the selection if active, else the character after
// the caret, joining with the next line at end of line. At the document end
// it is a no-op.
func (s *Session) DeleteForward() {
	if r, ok := s.cur.Selection(); ok {
		s.replaceSelection(r, "")
		return
	}
	before := s.cur.State()
	at := s.buf.Clamp(s.cur.Head())
	n, _ := s.buf.LineLen(at.Line)
	end := buffer.Pos{Line: at.Line, Col: at.Col + 1}
	if at.Col == n {
		if at.Line+1 >= s.buf.LineCount() {
			return
		}
		end = buffer.Pos{Line: at.Line + 1}
	}
	deleted, _ := s.buf.Delete(buffer.Range{Start: at, End: end})
	s.cur.MoveTo(s.buf, at, false)
	s.hist.RecordDelete(at, deleted, before, s.cur.State())
	if end.Line != at.Line {
		s.emitStructural(at.Line)
		return
	}
	s.emit(at.Line, at.Line)
}

// DeleteToLineStart deletes from the line start to the caret. At column zero
// it is a no-op; it never joins lines.
func (s *Session) DeleteToLineStart() {
	before := s.cur.State()
	at := s.buf.Clamp(s.cur.Head())
	if at.Col == 0 {
		return
	}
	start := buffer.Pos{Line: at.Line}
	deleted, _ := s.buf.Delete(buffer.Range{Start: start, End: at})
	s.cur.MoveTo(s.buf, start, false)
	s.hist.RecordDelete(start, deleted, before, s.cur.State())
	s.emit(at.Line, at.Line)
}

// DeleteToLineEnd deletes from the caret to the line end. At end of line it
// is a no-op; it never joins lines.
func (s *Session) DeleteToLineEnd() {
	before := s.cur.State()
	at := s.buf.Clamp(s.cur.Head())
	n, _ := s.buf.LineLen(at.Line)
	if at.Col == n {
		return
	}
	end := buffer.Pos{Line: at.Line, Col: n}
	deleted, _ := s.buf.Delete(buffer.Range{Start: at, End: end})
	s.cur.MoveTo(s.buf, at, false)
	s.hist.RecordDelete(at, deleted, before, s.cur.State())
	s.emit(at.Line, at.Line)
}

// replaceSelection deletes r and inserts text at its start as one atomic
// step. An empty text is a plain selection delete.
func (s *Session) replaceSelection(r buffer.Range, text string) {
	before := s.cur.State()
	deleted, _ := s.buf.Delete(r)
	end := r.Start
	if text != "" {
		end, _ = s.buf.Insert(r.Start, text)
	}
	s.cur.MoveTo(s.buf, end, false)
	s.hist.RecordReplace(r.Start, deleted, text, before, s.cur.State())
	if strings.ContainsRune(deleted, '\n') || strings.ContainsRune(text, '\n') {
		s.emitStructural(r.Start.Line)
		return
	}
	s.emit(r.Start.Line, r.Start.Line)
}
