package undo

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/avasker/scrawl/buffer"
	"github.com/avasker/scrawl/cursor"
)

const (
	// DefaultCoalesceWindow is the pause that closes a typing run. Tunable
	// via Config; anywhere in the 300–700ms band reads naturally.
	DefaultCoalesceWindow = 500 * time.Millisecond
	// DefaultMaxDepth bounds history memory; the oldest steps fall off.
	DefaultMaxDepth = 200
)

// Config tunes an Engine. Zero values select the defaults; Now is the clock
// used for the coalescing window and exists so tests can drive time.
type Config struct {
	CoalesceWindow time.Duration
	MaxDepth       int
	Now            func() time.Time
}

// Engine is the undo/redo history. Edits are recorded after they are applied
// to the buffer; the engine decides whether each one extends the open step
// or starts a new one.
//
// An Engine is bound to the single writer that owns the buffer and is not
// safe for concurrent use.
type Engine struct {
	window time.Duration
	depth  int
	now    func() time.Time

	open *step
	undo []*step
	redo []*step
}

func NewEngine(cfg Config) *Engine {
	e := &Engine{
		window: cfg.CoalesceWindow,
		depth:  cfg.MaxDepth,
		now:    cfg.Now,
	}
	if e.window <= 0 {
		e.window = DefaultCoalesceWindow
	}
	if e.depth <= 0 {
		e.depth = DefaultMaxDepth
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// CanUndo reports whether Undo would apply a step.
func (e *Engine) CanUndo() bool {
	return e.open != nil || len(e.undo) > 0
}

// CanRedo reports whether Redo would apply a step.
func (e *Engine) CanRedo() bool {
	return len(e.redo) > 0
}

// RecordInsert records text inserted at at. Single-rune inserts extend the
// open insert step when contiguous, inside the coalescing window, and not
// starting whitespace right after a word. A newline or multi-rune insert
// (paste) is atomic: it neither extends a step nor accepts extensions.
func (e *Engine) RecordInsert(at buffer.Pos, text string, before, after cursor.State) {
	if text == "" {
		return
	}
	now := e.now()
	if e.tryExtendInsert(at, text, after, now) {
		return
	}
	e.push(&step{
		kind:     KindInsert,
		ops:      []Op{InsertOp(at, text)},
		atomic:   atomicText(text),
		before:   before,
		after:    after,
		extended: now,
	})
}

func (e *Engine) tryExtendInsert(at buffer.Pos, text string, after cursor.State, now time.Time) bool {
	s := e.open
	if s == nil || s.kind != KindInsert || s.atomic {
		return false
	}
	if now.Sub(s.extended) >= e.window {
		return false
	}
	if atomicText(text) {
		return false
	}
	o := &s.ops[0]
	if at != endPos(o.at, o.text) {
		return false
	}
	// Word-granularity rule: finishing a word and typing the space after it
	// starts a new step.
	r, _ := utf8.DecodeRuneInString(text)
	if unicode.IsSpace(r) && !endsInSpace(o.text) {
		return false
	}
	o.text += text
	s.after = after
	s.extended = now
	return true
}

// RecordDelete records text removed with its start at at. Single-rune
// deletes extend the open delete step when they continue forward at the same
// position or backspace into its start, inside the coalescing window. A
// newline or multi-rune delete is atomic.
func (e *Engine) RecordDelete(at buffer.Pos, text string, before, after cursor.State) {
	if text == "" {
		return
	}
	now := e.now()
	if e.tryExtendDelete(at, text, after, now) {
		return
	}
	e.push(&step{
		kind:     KindDelete,
		ops:      []Op{DeleteOp(at, text)},
		atomic:   atomicText(text),
		before:   before,
		after:    after,
		extended: now,
	})
}

func (e *Engine) tryExtendDelete(at buffer.Pos, text string, after cursor.State, now time.Time) bool {
	s := e.open
	if s == nil || s.kind != KindDelete || s.atomic {
		return false
	}
	if now.Sub(s.extended) >= e.window {
		return false
	}
	if atomicText(text) {
		return false
	}
	o := &s.ops[0]
	switch {
	case at == o.at: // forward deleting in place
		o.text += text
	case endPos(at, text) == o.at: // backspacing into the step
		o.at = at
		o.text = text + o.text
	default:
		return false
	}
	s.after = after
	s.extended = now
	return true
}

// RecordReplace records a selection replaced by inserted text. Always one
// atomic step. An empty inserted string records a plain selection delete.
func (e *Engine) RecordReplace(at buffer.Pos, deleted, inserted string, before, after cursor.State) {
	ops := []Op{DeleteOp(at, deleted)}
	if inserted != "" {
		ops = append(ops, InsertOp(at, inserted))
	}
	e.push(&step{
		kind:     KindReplace,
		ops:      ops,
		atomic:   true,
		before:   before,
		after:    after,
		extended: e.now(),
	})
}

// RecordLine records a structural line operation as one atomic step. The ops
// are applied in order on redo and inverted in reverse on undo.
func (e *Engine) RecordLine(ops []Op, before, after cursor.State) {
	if len(ops) == 0 {
		return
	}
	e.push(&step{
		kind:     KindLine,
		ops:      ops,
		atomic:   true,
		before:   before,
		after:    after,
		extended: e.now(),
	})
}

// Break closes the open step so the next edit starts a fresh one, without
// recording anything.
func (e *Engine) Break() {
	e.closeOpen()
}

// Reset drops all history.
func (e *Engine) Reset() {
	e.open = nil
	e.undo = nil
	e.redo = nil
}

// Undo inverts the most recent step against buf and returns the cursor state
// from before that step. ok is false when there is nothing to undo.
func (e *Engine) Undo(buf *buffer.Buffer) (cursor.State, Span, bool) {
	e.closeOpen()
	if len(e.undo) == 0 {
		return cursor.State{}, Span{}, false
	}
	i := len(e.undo) - 1
	s := e.undo[i]
	e.undo = e.undo[:i]

	for j := len(s.ops) - 1; j >= 0; j-- {
		s.ops[j].invert().apply(buf)
	}
	e.redo = append(e.redo, s)
	return s.before, s.span(), true
}

// Redo re-applies the most recently undone step and returns the cursor state
// from after it. ok is false when there is nothing to redo.
func (e *Engine) Redo(buf *buffer.Buffer) (cursor.State, Span, bool) {
	if len(e.redo) == 0 {
		return cursor.State{}, Span{}, false
	}
	i := len(e.redo) - 1
	s := e.redo[i]
	e.redo = e.redo[:i]

	for _, o := range s.ops {
		o.apply(buf)
	}
	e.undo = append(e.undo, s)
	e.trim()
	return s.after, s.span(), true
}

// push closes the open step, installs s as the new open step, and clears
// redo: a fresh edit forks history.
func (e *Engine) push(s *step) {
	e.closeOpen()
	e.open = s
	e.redo = nil
}

func (e *Engine) closeOpen() {
	if e.open == nil {
		return
	}
	e.undo = append(e.undo, e.open)
	e.open = nil
	e.trim()
}

func (e *Engine) trim() {
	if len(e.undo) > e.depth {
		e.undo = e.undo[len(e.undo)-e.depth:]
	}
}

func endsInSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}

// atomicText reports text that always forms its own step: a line break or
// anything longer than one codepoint.
func atomicText(s string) bool {
	return utf8.RuneCountInString(s) != 1 || strings.ContainsRune(s, '\n')
}
