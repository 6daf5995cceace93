// Package undo records edits as invertible steps and replays them. Runs of
// typing and deleting coalesce into single steps under the chunking rules;
// structural operations are always their own atomic step.
package undo

import (
	"time"

	"github.com/avasker/scrawl/buffer"
	"github.com/avasker/scrawl/cursor"
)

type opKind int

const (
	opInsert opKind = iota
	opDelete
)

// Op is one primitive, invertible edit: text inserted at a position, or text
// removed starting at a position. Steps hold one or more Ops and invert them
// in reverse order.
type Op struct {
	kind opKind
	at   buffer.Pos
	text string
}

// InsertOp describes text inserted at at.
func InsertOp(at buffer.Pos, text string) Op {
	return Op{kind: opInsert, at: at, text: text}
}

// DeleteOp describes text that was removed starting at at.
func DeleteOp(at buffer.Pos, text string) Op {
	return Op{kind: opDelete, at: at, text: text}
}

func (o Op) invert() Op {
	switch o.kind {
	case opInsert:
		return Op{kind: opDelete, at: o.at, text: o.text}
	default:
		return Op{kind: opInsert, at: o.at, text: o.text}
	}
}

func (o Op) apply(buf *buffer.Buffer) {
	switch o.kind {
	case opInsert:
		buf.Insert(o.at, o.text)
	case opDelete:
		buf.Delete(buffer.Range{Start: o.at, End: endPos(o.at, o.text)})
	}
}

// endPos returns the position just past text laid down starting at at.
func endPos(at buffer.Pos, text string) buffer.Pos {
	line, col := at.Line, at.Col
	for _, r := range text {
		if r == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return buffer.Pos{Line: line, Col: col}
}

// Kind classifies steps. Only like kinds coalesce.
type Kind int

const (
	KindInsert Kind = iota
	KindDelete
	KindReplace
	KindLine
)

// step is one undoable unit: the ops to invert, the cursor on both sides,
// and the time of the last extension for the coalescing window. Atomic steps
// (line breaks, pastes, replaces, structural ops) never extend.
type step struct {
	kind     Kind
	ops      []Op
	atomic   bool
	before   cursor.State
	after    cursor.State
	extended time.Time
}

// Span is the range of lines a step touches, inclusive. Structural is true
// when the step adds or removes line breaks, in which case everything below
// First shifts.
type Span struct {
	First      int
	Last       int
	Structural bool
}

func (s *step) span() Span {
	sp := Span{First: s.ops[0].at.Line, Last: s.ops[0].at.Line}
	for _, o := range s.ops {
		if o.at.Line < sp.First {
			sp.First = o.at.Line
		}
		last := endPos(o.at, o.text).Line
		if last > sp.Last {
			sp.Last = last
		}
		if last != o.at.Line {
			sp.Structural = true
		}
	}
	return sp
}
