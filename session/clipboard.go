package session

import "strings"

// Clipboard provides session-level clipboard integration.
//
// Failures must not crash the host; Copy, Cut, and Paste ignore them.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// MemoryClipboard is an in-process Clipboard for hosts without a system one.
// The zero value is ready to use.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) ReadText() (string, error) { return c.text, nil }

func (c *MemoryClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

// Copy writes the selected text to the clipboard. Without a selection it
// does nothing.
func (s *Session) Copy() {
	r, ok := s.cur.Selection()
	if !ok {
		return
	}
	text, _ := s.buf.TextRange(r)
	if text == "" {
		return
	}
	_ = s.clip.WriteText(text)
}

// Cut copies the selected text and deletes it as one atomic step.
func (s *Session) Cut() {
	r, ok := s.cur.Selection()
	if !ok {
		return
	}
	text, _ := s.buf.TextRange(r)
	if text != "" {
		_ = s.clip.WriteText(text)
	}
	s.replaceSelection(r, "")
}

// Paste inserts the clipboard text at the caret, replacing the selection if
// one is active. Newlines from external sources are normalized.
func (s *Session) Paste() {
	text, err := s.clip.ReadText()
	if err != nil || text == "" {
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	s.InsertText(text)
}
