// Package cursor tracks the caret and selection over a buffer and implements
// movement at char, word, line, and document granularity.
//
// A selection is an anchor plus the caret head; it is never stored empty. Any
// move with Extend=false collapses it. Vertical movement keeps a sticky
// target column so the caret returns to its column after crossing short
// lines.
package cursor

import "github.com/avasker/scrawl/buffer"

// Unit selects the granularity of a movement.
type Unit int

const (
	UnitChar Unit = iota
	UnitWord
	UnitLine
	UnitDoc
)

// Dir selects the direction of a movement.
type Dir int

const (
	DirLeft Dir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for UnitDoc)
	DirEnd  // line end (or doc end for UnitDoc)
)

// Move describes one movement request.
type Move struct {
	Unit   Unit
	Dir    Dir
	Extend bool // if true, grows the selection; if false collapses it
}

// State is a restorable snapshot of caret and selection.
type State struct {
	Head     buffer.Pos
	Anchor   buffer.Pos
	Anchored bool
}

type selection struct {
	active bool
	anchor buffer.Pos
}

// Model holds the caret, the selection anchor, and the sticky column. The
// zero value is a caret at the document origin; NewModel is equivalent.
type Model struct {
	head   buffer.Pos
	sel    selection
	sticky int
}

func NewModel() *Model {
	return &Model{sticky: -1}
}

// Head returns the caret position.
func (m *Model) Head() buffer.Pos {
	return m.head
}

// Selection returns the normalized selection range. ok is false when no
// selection is active.
func (m *Model) Selection() (buffer.Range, bool) {
	if !m.sel.active || m.sel.anchor == m.head {
		return buffer.Range{}, false
	}
	return (buffer.Range{Start: m.sel.anchor, End: m.head}).Normalized(), true
}

// State snapshots the caret and selection for later Restore.
func (m *Model) State() State {
	return State{Head: m.head, Anchor: m.sel.anchor, Anchored: m.sel.active}
}

// Restore reinstates a snapshot and drops the sticky column.
func (m *Model) Restore(s State) {
	m.head = s.Head
	m.sel = selection{active: s.Anchored, anchor: s.Anchor}
	m.sticky = -1
}

// ClearSelection collapses the selection, leaving the caret in place.
func (m *Model) ClearSelection() {
	m.sel = selection{}
}

// Move applies mv against buf.
func (m *Model) Move(buf *buffer.Buffer, mv Move) {
	prev := buf.Clamp(m.head)
	next := buf.Clamp(m.target(buf, prev, mv))
	m.applySelection(prev, next, mv.Extend)
	m.head = next
}

// MoveTo places the caret at p (pointer placement). p is clamped.
func (m *Model) MoveTo(buf *buffer.Buffer, p buffer.Pos, extend bool) {
	prev := buf.Clamp(m.head)
	next := buf.Clamp(p)
	m.sticky = -1
	m.applySelection(prev, next, extend)
	m.head = next
}

// SelectAll anchors at the document origin and moves the caret to the end.
func (m *Model) SelectAll(buf *buffer.Buffer) {
	m.sticky = -1
	m.head = buf.End()
	m.sel = selection{}
	if m.head != (buffer.Pos{}) {
		m.sel = selection{active: true, anchor: buffer.Pos{}}
	}
}

func (m *Model) applySelection(prev, next buffer.Pos, extend bool) {
	if !extend {
		m.sel = selection{}
		return
	}
	anchor := prev
	if m.sel.active && m.sel.anchor != prev {
		anchor = m.sel.anchor
	}
	if anchor == next {
		m.sel = selection{}
		return
	}
	m.sel = selection{active: true, anchor: anchor}
}

// target computes the caret destination and maintains the sticky column:
// vertical moves reuse it, everything else resets it.
func (m *Model) target(buf *buffer.Buffer, p buffer.Pos, mv Move) buffer.Pos {
	if mv.Unit == UnitLine && (mv.Dir == DirUp || mv.Dir == DirDown) {
		return m.vertical(buf, p, mv.Dir)
	}
	m.sticky = -1
	switch mv.Unit {
	case UnitChar:
		return charMove(buf, p, mv.Dir)
	case UnitWord:
		return wordMove(buf, p, mv.Dir)
	case UnitLine:
		return lineEdge(buf, p, mv.Dir)
	case UnitDoc:
		return docEdge(buf, p, mv.Dir)
	}
	return p
}

func (m *Model) vertical(buf *buffer.Buffer, p buffer.Pos, d Dir) buffer.Pos {
	target := m.sticky
	if target < 0 {
		target = p.Col
	}
	m.sticky = target

	line := p.Line
	if d == DirUp {
		line--
	} else {
		line++
	}
	if line < 0 || line >= buf.LineCount() {
		return p
	}
	return buffer.Pos{Line: line, Col: minInt(target, lineLen(buf, line))}
}

func charMove(buf *buffer.Buffer, p buffer.Pos, d Dir) buffer.Pos {
	switch d {
	case DirLeft:
		if p.Col > 0 {
			return buffer.Pos{Line: p.Line, Col: p.Col - 1}
		}
		if p.Line > 0 {
			return buffer.Pos{Line: p.Line - 1, Col: lineLen(buf, p.Line-1)}
		}
	case DirRight:
		if p.Col < lineLen(buf, p.Line) {
			return buffer.Pos{Line: p.Line, Col: p.Col + 1}
		}
		if p.Line+1 < buf.LineCount() {
			return buffer.Pos{Line: p.Line + 1}
		}
	}
	return p
}

func lineEdge(buf *buffer.Buffer, p buffer.Pos, d Dir) buffer.Pos {
	switch d {
	case DirHome:
		return buffer.Pos{Line: p.Line}
	case DirEnd:
		return buffer.Pos{Line: p.Line, Col: lineLen(buf, p.Line)}
	}
	return p
}

func docEdge(buf *buffer.Buffer, p buffer.Pos, d Dir) buffer.Pos {
	switch d {
	case DirHome:
		return buffer.Pos{}
	case DirEnd:
		return buf.End()
	}
	return p
}

func lineLen(buf *buffer.Buffer, i int) int {
	n, _ := buf.LineLen(i)
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
