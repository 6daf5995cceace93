package session

import (
	"strings"

	"github.com/avasker/scrawl/buffer"
	"github.com/avasker/scrawl/undo"
)

// IndentUnit is the indentation inserted by Indent and stripped by Outdent.
const IndentUnit = "  "

// DeleteLine removes the caret's whole line as one atomic step. The last
// remaining line is cleared instead of removed.
func (s *Session) DeleteLine() {
	before := s.cur.State()
	at := s.buf.Clamp(s.cur.Head())
	i := at.Line
	n := s.buf.LineCount()
	lineLen, _ := s.buf.LineLen(i)

	var r buffer.Range
	switch {
	case n == 1:
		if lineLen == 0 {
			return
		}
		r = buffer.Range{End: buffer.Pos{Col: lineLen}}
	case i == n-1:
		prevLen, _ := s.buf.LineLen(i - 1)
		r = buffer.Range{Start: buffer.Pos{Line: i - 1, Col: prevLen}, End: buffer.Pos{Line: i, Col: lineLen}}
	default:
		r = buffer.Range{Start: buffer.Pos{Line: i}, End: buffer.Pos{Line: i + 1}}
	}
	deleted, _ := s.buf.Delete(r)
	target := buffer.Pos{Line: i}
	if last := s.buf.LineCount() - 1; target.Line > last {
		target.Line = last
	}
	s.cur.MoveTo(s.buf, target, false)
	s.hist.RecordLine([]undo.Op{undo.DeleteOp(r.Start, deleted)}, before, s.cur.State())
	if strings.ContainsRune(deleted, '\n') {
		s.emitStructural(r.Start.Line)
		return
	}
	s.emit(r.Start.Line, r.Start.Line)
}

// MoveLineUp swaps the caret's line with the one above. The caret follows
// its line; the selection collapses. On the first line it is a no-op.
func (s *Session) MoveLineUp() {
	before := s.cur.State()
	at := s.buf.Clamp(s.cur.Head())
	i := at.Line
	if i == 0 {
		return
	}
	line, _ := s.buf.LineText(i)
	prevLen, _ := s.buf.LineLen(i - 1)
	lineLen, _ := s.buf.LineLen(i)

	del := buffer.Range{Start: buffer.Pos{Line: i - 1, Col: prevLen}, End: buffer.Pos{Line: i, Col: lineLen}}
	deleted, _ := s.buf.Delete(del)
	ins := buffer.Pos{Line: i - 1}
	_, _ = s.buf.Insert(ins, line+"\n")

	s.cur.MoveTo(s.buf, buffer.Pos{Line: i - 1, Col: at.Col}, false)
	ops := []undo.Op{undo.DeleteOp(del.Start, deleted), undo.InsertOp(ins, line+"\n")}
	s.hist.RecordLine(ops, before, s.cur.State())
	s.emit(i-1, i)
}

// MoveLineDown swaps the caret's line with the one below. The caret follows
// its line; the selection collapses. On the last line it is a no-op.
func (s *Session) MoveLineDown() {
	before := s.cur.State()
	at := s.buf.Clamp(s.cur.Head())
	i := at.Line
	if i+1 >= s.buf.LineCount() {
		return
	}
	next, _ := s.buf.LineText(i + 1)
	lineLen, _ := s.buf.LineLen(i)
	nextLen, _ := s.buf.LineLen(i + 1)

	del := buffer.Range{Start: buffer.Pos{Line: i, Col: lineLen}, End: buffer.Pos{Line: i + 1, Col: nextLen}}
	deleted, _ := s.buf.Delete(del)
	ins := buffer.Pos{Line: i}
	_, _ = s.buf.Insert(ins, next+"\n")

	s.cur.MoveTo(s.buf, buffer.Pos{Line: i + 1, Col: at.Col}, false)
	ops := []undo.Op{undo.DeleteOp(del.Start, deleted), undo.InsertOp(ins, next+"\n")}
	s.hist.RecordLine(ops, before, s.cur.State())
	s.emit(i, i+1)
}

// Indent inserts one IndentUnit at the caret, or with a selection indents
// every selected line as one atomic step. A selection ending at column zero
// leaves that line untouched.
func (s *Session) Indent() {
	before := s.cur.State()
	r, ok := s.cur.Selection()
	if !ok {
		at := s.buf.Clamp(s.cur.Head())
		end, _ := s.buf.Insert(at, IndentUnit)
		s.cur.MoveTo(s.buf, end, false)
		s.hist.RecordInsert(at, IndentUnit, before, s.cur.State())
		s.emit(at.Line, at.Line)
		return
	}
	first, last := r.Start.Line, r.End.Line
	if last > first && r.End.Col == 0 {
		last--
	}
	var ops []undo.Op
	for i := first; i <= last; i++ {
		at := buffer.Pos{Line: i}
		_, _ = s.buf.Insert(at, IndentUnit)
		ops = append(ops, undo.InsertOp(at, IndentUnit))
	}

	st := before
	st.Head = indentShift(st.Head, first, last)
	st.Anchor = indentShift(st.Anchor, first, last)
	s.cur.Restore(st)
	s.hist.RecordLine(ops, before, s.cur.State())
	s.emit(first, last)
}

// Outdent strips up to one IndentUnit of leading spaces from the caret's
// line, or from every selected line, as one atomic step. Lines without
// leading spaces are left alone; if none has any, nothing is recorded.
func (s *Session) Outdent() {
	before := s.cur.State()
	first := s.buf.Clamp(s.cur.Head()).Line
	last := first
	if r, ok := s.cur.Selection(); ok {
		first, last = r.Start.Line, r.End.Line
		if last > first && r.End.Col == 0 {
			last--
		}
	}

	removed := make(map[int]int)
	var ops []undo.Op
	for i := first; i <= last; i++ {
		line, _ := s.buf.LineText(i)
		m := 0
		for m < len(IndentUnit) && m < len(line) && line[m] == ' ' {
			m++
		}
		if m == 0 {
			continue
		}
		at := buffer.Pos{Line: i}
		deleted, _ := s.buf.Delete(buffer.Range{Start: at, End: buffer.Pos{Line: i, Col: m}})
		ops = append(ops, undo.DeleteOp(at, deleted))
		removed[i] = m
	}
	if len(ops) == 0 {
		return
	}

	st := before
	st.Head = outdentShift(st.Head, removed)
	st.Anchor = outdentShift(st.Anchor, removed)
	if st.Anchored && st.Anchor == st.Head {
		st.Anchored = false
	}
	s.cur.Restore(st)
	s.hist.RecordLine(ops, before, s.cur.State())
	s.emit(first, last)
}

func indentShift(p buffer.Pos, first, last int) buffer.Pos {
	if p.Line >= first && p.Line <= last && p.Col > 0 {
		p.Col += len(IndentUnit)
	}
	return p
}

func outdentShift(p buffer.Pos, removed map[int]int) buffer.Pos {
	if m, ok := removed[p.Line]; ok {
		p.Col -= m
		if p.Col < 0 {
			p.Col = 0
		}
	}
	return p
}
