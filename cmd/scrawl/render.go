package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/avasker/scrawl"
	"github.com/avasker/scrawl/buffer"
)

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	rows := make([]string, 0, m.height)
	for row := 0; row < m.textHeight(); row++ {
		i := m.top + row
		if i >= m.sess.LineCount() {
			rows = append(rows, "")
			continue
		}
		rows = append(rows, m.renderLine(i))
	}
	rows = append(rows, m.statusLine())
	return strings.Join(rows, "\n")
}

// renderLine paints one document line as styled cells. The caret cell wins
// over the selection so it stays visible while dragging, and a caret at end
// of line is shown on a synthetic trailing space.
func (m model) renderLine(i int) string {
	line, _ := m.sess.LineText(i)
	runes := []rune(line)
	head := m.sess.Head()
	sel, selected := m.sess.Selection()

	var b strings.Builder
	for c, r := range runes {
		pos := buffer.Pos{Line: i, Col: c}
		switch {
		case pos == head:
			b.WriteString(m.styles.Cursor.Render(string(r)))
		case selected && !pos.Before(sel.Start) && pos.Before(sel.End):
			b.WriteString(m.styles.Selection.Render(string(r)))
		default:
			b.WriteString(m.styles.Text.Render(string(r)))
		}
	}
	if head.Line == i && head.Col == len(runes) {
		b.WriteString(m.styles.Cursor.Render(" "))
	}
	return b.String()
}

func (m model) statusLine() string {
	head := m.sess.Head()
	path := "scratch"
	if m.store != nil {
		path = m.store.Path()
	}
	info := fmt.Sprintf("scrawl %s  %s  %d:%d  %.0fpt",
		scrawl.Version(), path, head.Line+1, head.Col+1, m.sess.FontConfig().Size)
	return m.styles.Status.Render(runewidth.Truncate(info, m.width, "…"))
}
