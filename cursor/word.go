package cursor

import (
	"unicode"

	"github.com/avasker/scrawl/buffer"
)

// Word movement classifies codepoints as whitespace, word (letter, digit,
// underscore), or punctuation, and stops at class transitions. The implicit
// newline at each line end classifies as whitespace, so word moves cross
// line boundaries without treating them specially.

type charClass int

const (
	classSpace charClass = iota
	classWord
	classPunct
)

func classify(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

// lineScan reads codepoint classes from buffer positions, caching the runes
// of the line it last touched.
type lineScan struct {
	buf   *buffer.Buffer
	line  int
	runes []rune
}

func newLineScan(buf *buffer.Buffer) *lineScan {
	return &lineScan{buf: buf, line: -1}
}

func (s *lineScan) classAt(p buffer.Pos) charClass {
	if p.Line != s.line {
		text, _ := s.buf.LineText(p.Line)
		s.line, s.runes = p.Line, []rune(text)
	}
	if p.Col >= len(s.runes) {
		return classSpace
	}
	return classify(s.runes[p.Col])
}

func prevPos(buf *buffer.Buffer, p buffer.Pos) buffer.Pos {
	if p.Col > 0 {
		return buffer.Pos{Line: p.Line, Col: p.Col - 1}
	}
	if p.Line > 0 {
		return buffer.Pos{Line: p.Line - 1, Col: lineLen(buf, p.Line-1)}
	}
	return p
}

func nextPos(buf *buffer.Buffer, p buffer.Pos) buffer.Pos {
	if p.Col < lineLen(buf, p.Line) {
		return buffer.Pos{Line: p.Line, Col: p.Col + 1}
	}
	if p.Line+1 < buf.LineCount() {
		return buffer.Pos{Line: p.Line + 1}
	}
	return p
}

// wordMove returns the start of the previous word run (DirLeft) or the end
// of the current or next word run (DirRight). Whitespace, including implicit
// newlines, is skipped first; the run then extends while the class stays the
// same. At the buffer edges the move is a no-op.
func wordMove(buf *buffer.Buffer, p buffer.Pos, d Dir) buffer.Pos {
	s := newLineScan(buf)
	switch d {
	case DirLeft:
		origin := buffer.Pos{}
		if p == origin {
			return p
		}
		p = prevPos(buf, p)
		for p != origin && s.classAt(p) == classSpace {
			p = prevPos(buf, p)
		}
		if p != origin {
			cls := s.classAt(p)
			for p != origin {
				q := prevPos(buf, p)
				if s.classAt(q) != cls {
					break
				}
				p = q
			}
		}
		return p
	case DirRight:
		end := buf.End()
		if p == end {
			return p
		}
		for p != end && s.classAt(p) == classSpace {
			p = nextPos(buf, p)
		}
		if p != end {
			cls := s.classAt(p)
			for p != end && s.classAt(p) == cls {
				p = nextPos(buf, p)
			}
		}
		return p
	}
	return p
}
