package session

import "github.com/avasker/scrawl/cursor"

// Undo reverts the most recent step and restores the caret and selection
// from before it. It reports false when there is nothing to undo.
func (s *Session) Undo() bool {
	st, sp, ok := s.hist.Undo(s.buf)
	if !ok {
		return false
	}
	s.restore(st)
	s.emitSpan(sp)
	return true
}

// Redo re-applies the most recently undone step and restores the caret and
// selection from after it. It reports false when there is nothing to redo.
func (s *Session) Redo() bool {
	st, sp, ok := s.hist.Redo(s.buf)
	if !ok {
		return false
	}
	s.restore(st)
	s.emitSpan(sp)
	return true
}

// CanUndo reports whether Undo would apply a step.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether Redo would apply a step.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

func (s *Session) restore(st cursor.State) {
	st.Head = s.buf.Clamp(st.Head)
	st.Anchor = s.buf.Clamp(st.Anchor)
	if st.Anchored && st.Anchor == st.Head {
		st.Anchored = false
	}
	s.cur.Restore(st)
}
