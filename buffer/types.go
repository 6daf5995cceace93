package buffer

import (
	"errors"
	"fmt"
)

// ErrOutOfRange reports a position that names a line the buffer does not
// have, or a column past the end of its line. Wrap-aware: test with
// errors.Is.
var ErrOutOfRange = errors.New("position out of range")

// Pos addresses a point in the buffer. Line is a zero-based line index and
// Col a zero-based codepoint offset within that line. Col == line length
// addresses the end of the line, before the implicit newline.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Before reports whether p orders strictly before q in document order.
func (p Pos) Before(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// Range is a half-open span [Start, End) in document order.
type Range struct {
	Start Pos
	End   Pos
}

// Normalized returns r with Start and End swapped if they are reversed.
func (r Range) Normalized() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Empty reports whether the range spans no content.
func (r Range) Empty() bool {
	return r.Start == r.End
}

func outOfRange(op string, p Pos) error {
	return fmt.Errorf("%s at %s: %w", op, p, ErrOutOfRange)
}
