package buffer

import "strings"

// Buffer holds the document as lines of codepoints. The zero value is not
// usable; construct with New.
//
// Buffer is not safe for concurrent use. Callers serialize access; for the
// editing core that caller is the session.
type Buffer struct {
	lines   [][]rune
	stamps  []uint64
	version uint64
}

// New returns a buffer holding text. Empty text yields a single empty line.
func New(text string) *Buffer {
	b := &Buffer{}
	b.reset(text)
	return b
}

func (b *Buffer) reset(text string) {
	parts := strings.Split(text, "\n")
	b.lines = make([][]rune, len(parts))
	b.stamps = make([]uint64, len(parts))
	for i, p := range parts {
		b.lines[i] = []rune(p)
		b.stamps[i] = b.version
	}
}

// Version returns the document version. It starts at zero and increases by
// one for every successful mutation.
func (b *Buffer) Version() uint64 {
	return b.version
}

// LineCount returns the number of lines. It is always at least one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineText returns the content of line i without a trailing newline.
func (b *Buffer) LineText(i int) (string, error) {
	if i < 0 || i >= len(b.lines) {
		return "", outOfRange("line", Pos{Line: i})
	}
	return string(b.lines[i]), nil
}

// LineLen returns the length of line i in codepoints.
func (b *Buffer) LineLen(i int) (int, error) {
	if i < 0 || i >= len(b.lines) {
		return 0, outOfRange("line", Pos{Line: i})
	}
	return len(b.lines[i]), nil
}

// LineVersion returns the version of the mutation that last touched line i.
// Structural mutations (line splits, joins, reorders) touch every line from
// the first affected one onward, because those lines' indices shift.
func (b *Buffer) LineVersion(i int) (uint64, error) {
	if i < 0 || i >= len(b.stamps) {
		return 0, outOfRange("line", Pos{Line: i})
	}
	return b.stamps[i], nil
}

// TotalLength returns the document length in codepoints, counting the
// implicit newline between adjacent lines once each.
func (b *Buffer) TotalLength() int {
	n := len(b.lines) - 1
	for _, ln := range b.lines {
		n += len(ln)
	}
	return n
}

// Text returns the whole document with lines joined by "\n".
func (b *Buffer) Text() string {
	var sb strings.Builder
	sb.Grow(b.TotalLength())
	for i, ln := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(ln))
	}
	return sb.String()
}

// TextRange returns the content covered by r without mutating the buffer,
// with implicit newlines rendered as "\n". Reversed ranges are normalized.
func (b *Buffer) TextRange(r Range) (string, error) {
	r = r.Normalized()
	start, err := b.check("read", r.Start)
	if err != nil {
		return "", err
	}
	end, err := b.check("read", r.End)
	if err != nil {
		return "", err
	}
	if start.Line == end.Line {
		return string(b.lines[start.Line][start.Col:end.Col]), nil
	}
	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Line][start.Col:]))
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[i]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[end.Line][:end.Col]))
	return sb.String(), nil
}

// SetText replaces the entire document. The version advances once and every
// line is restamped.
func (b *Buffer) SetText(text string) {
	b.version++
	b.reset(text)
}

// End returns the position after the last codepoint of the last line.
func (b *Buffer) End() Pos {
	last := len(b.lines) - 1
	return Pos{Line: last, Col: len(b.lines[last])}
}

// Clamp returns the position nearest p that addresses valid content.
func (b *Buffer) Clamp(p Pos) Pos {
	if p.Line < 0 {
		return Pos{}
	}
	if p.Line >= len(b.lines) {
		return b.End()
	}
	if p.Col < 0 {
		p.Col = 0
	} else if n := len(b.lines[p.Line]); p.Col > n {
		p.Col = n
	}
	return p
}

// check validates p for use as an edit endpoint and returns its effective
// column. Columns up to one past the line length are tolerated and treated
// as end of line; anything further out is an error.
func (b *Buffer) check(op string, p Pos) (Pos, error) {
	if p.Line < 0 || p.Line >= len(b.lines) || p.Col < 0 {
		return Pos{}, outOfRange(op, p)
	}
	n := len(b.lines[p.Line])
	if p.Col > n+1 {
		return Pos{}, outOfRange(op, p)
	}
	if p.Col > n {
		p.Col = n
	}
	return p, nil
}

// stamp records that lines[i] was touched by the current version.
func (b *Buffer) stamp(i int) {
	b.stamps[i] = b.version
}

// stampFrom restamps every line from i to the end of the buffer.
func (b *Buffer) stampFrom(i int) {
	for ; i < len(b.stamps); i++ {
		b.stamps[i] = b.version
	}
}
