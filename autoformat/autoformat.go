// Package autoformat computes the text to insert right after a line break:
// Markdown-style list continuation and plain auto-indent.
package autoformat

import (
	"strconv"
	"strings"
)

// Continuation returns what to insert after a newline typed at the end of a
// line reading prev.
//
// A line carrying an unordered marker ("- ", "* ", "+ ", optionally
// indented) continues with the same indent and marker; an ordered marker
// ("N. ") continues with the number incremented. A marker with no content
// after it is an empty item and terminates the list: the continuation is
// empty. Anything else continues with the line's leading whitespace.
func Continuation(prev string) string {
	ws := leadingWhitespace(prev)
	rest := prev[len(ws):]

	if marker, body, ok := unorderedMarker(rest); ok {
		if strings.TrimSpace(body) == "" {
			return ""
		}
		return ws + marker
	}
	if n, body, ok := orderedMarker(rest); ok {
		if strings.TrimSpace(body) == "" {
			return ""
		}
		return ws + strconv.Itoa(n+1) + ". "
	}
	return ws
}

func leadingWhitespace(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return s[:i]
		}
	}
	return s
}

func unorderedMarker(s string) (marker, body string, ok bool) {
	if len(s) >= 2 && (s[0] == '-' || s[0] == '*' || s[0] == '+') && s[1] == ' ' {
		return s[:2], s[2:], true
	}
	return "", "", false
}

func orderedMarker(s string) (n int, body string, ok bool) {
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits+2 > len(s) || s[digits] != '.' || s[digits+1] != ' ' {
		return 0, "", false
	}
	n, err := strconv.Atoi(s[:digits])
	if err != nil {
		// Digit run too long to be a list index.
		return 0, "", false
	}
	return n, s[digits+2:], true
}
