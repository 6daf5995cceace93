package session

import "github.com/avasker/scrawl/undo"

// Change describes one accepted mutation: the buffer version it produced and
// the inclusive line range a host must repaint. When a mutation adds or
// removes line breaks, LastLine extends to the final line because everything
// below the edit shifted.
type Change struct {
	Version   uint64
	FirstLine int
	LastLine  int
}

// Subscribe registers fn to run synchronously after every effective
// mutation, in registration order. Subscribers must not mutate the session
// reentrantly.
func (s *Session) Subscribe(fn func(Change)) {
	s.subs = append(s.subs, fn)
}

func (s *Session) emit(first, last int) {
	if first < 0 {
		first = 0
	}
	if n := s.buf.LineCount(); last >= n {
		last = n - 1
	}
	ev := Change{Version: s.buf.Version(), FirstLine: first, LastLine: last}
	for _, fn := range s.subs {
		fn(ev)
	}
}

func (s *Session) emitStructural(first int) {
	s.emit(first, s.buf.LineCount()-1)
}

func (s *Session) emitSpan(sp undo.Span) {
	if sp.Structural {
		s.emitStructural(sp.First)
		return
	}
	s.emit(sp.First, sp.Last)
}
