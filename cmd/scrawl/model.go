package main

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avasker/scrawl/cursor"
	"github.com/avasker/scrawl/layout"
	"github.com/avasker/scrawl/persist"
	"github.com/avasker/scrawl/session"
)

const (
	reloadInterval = time.Second
	wheelStep      = 3
)

// reloadMsg asks the model to poll the store for external edits.
type reloadMsg struct{}

func reloadTick() tea.Cmd {
	return tea.Tick(reloadInterval, func(time.Time) tea.Msg { return reloadMsg{} })
}

type model struct {
	sess   *session.Session
	store  *persist.Store
	keys   KeyMap
	styles Style

	width    int
	height   int
	top      int
	dragging bool
}

// newModel wires a session and an optional store. A nil store runs the
// scratchpad without persistence.
func newModel(sess *session.Session, store *persist.Store) model {
	return model{
		sess:   sess,
		store:  store,
		keys:   DefaultKeyMap(),
		styles: DefaultStyle(),
	}
}

func (m model) Init() tea.Cmd { return reloadTick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.follow(), nil
	case reloadMsg:
		return m.checkReload(), reloadTick()
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Bracketed paste inserts literal text and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.sess.InsertText(string(msg.Runes))
		return m.follow(), nil
	}

	km := m.keys
	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit

	case key.Matches(msg, km.Left):
		m.sess.Move(cursor.Move{Unit: cursor.UnitChar, Dir: cursor.DirLeft})
	case key.Matches(msg, km.Right):
		m.sess.Move(cursor.Move{Unit: cursor.UnitChar, Dir: cursor.DirRight})
	case key.Matches(msg, km.Up):
		m.sess.Move(cursor.Move{Unit: cursor.UnitLine, Dir: cursor.DirUp})
	case key.Matches(msg, km.Down):
		m.sess.Move(cursor.Move{Unit: cursor.UnitLine, Dir: cursor.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.sess.Move(cursor.Move{Unit: cursor.UnitChar, Dir: cursor.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.sess.Move(cursor.Move{Unit: cursor.UnitChar, Dir: cursor.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.sess.Move(cursor.Move{Unit: cursor.UnitLine, Dir: cursor.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.sess.Move(cursor.Move{Unit: cursor.UnitLine, Dir: cursor.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.sess.Move(cursor.Move{Unit: cursor.UnitWord, Dir: cursor.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.sess.Move(cursor.Move{Unit: cursor.UnitWord, Dir: cursor.DirRight})

	case key.Matches(msg, km.Home):
		m.sess.Move(cursor.Move{Unit: cursor.UnitLine, Dir: cursor.DirHome})
	case key.Matches(msg, km.End):
		m.sess.Move(cursor.Move{Unit: cursor.UnitLine, Dir: cursor.DirEnd})
	case key.Matches(msg, km.ShiftHome):
		m.sess.Move(cursor.Move{Unit: cursor.UnitLine, Dir: cursor.DirHome, Extend: true})
	case key.Matches(msg, km.ShiftEnd):
		m.sess.Move(cursor.Move{Unit: cursor.UnitLine, Dir: cursor.DirEnd, Extend: true})
	case key.Matches(msg, km.DocHome):
		m.sess.Move(cursor.Move{Unit: cursor.UnitDoc, Dir: cursor.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.sess.Move(cursor.Move{Unit: cursor.UnitDoc, Dir: cursor.DirEnd})

	case key.Matches(msg, km.Backspace):
		m.sess.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.sess.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.sess.InsertNewline()
	case key.Matches(msg, km.Indent):
		m.sess.Indent()
	case key.Matches(msg, km.Outdent):
		m.sess.Outdent()

	case key.Matches(msg, km.DeleteToStart):
		m.sess.DeleteToLineStart()
	case key.Matches(msg, km.DeleteToEnd):
		m.sess.DeleteToLineEnd()
	case key.Matches(msg, km.DeleteLine):
		m.sess.DeleteLine()
	case key.Matches(msg, km.MoveLineUp):
		m.sess.MoveLineUp()
	case key.Matches(msg, km.MoveLineDown):
		m.sess.MoveLineDown()

	case key.Matches(msg, km.Undo):
		m.sess.Undo()
	case key.Matches(msg, km.Redo):
		m.sess.Redo()

	case key.Matches(msg, km.Copy):
		m.sess.Copy()
	case key.Matches(msg, km.Cut):
		m.sess.Cut()
	case key.Matches(msg, km.Paste):
		m.sess.Paste()
	case key.Matches(msg, km.SelectAll):
		m.sess.SelectAll()

	case key.Matches(msg, km.FontUp):
		m.sess.IncreaseFontSize()
	case key.Matches(msg, km.FontDown):
		m.sess.DecreaseFontSize()
	case key.Matches(msg, km.FontReset):
		m.sess.ResetFontSize()

	default:
		if msg.Type == tea.KeySpace {
			m.sess.InsertText(" ")
		} else if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.sess.InsertText(string(msg.Runes))
		}
	}
	return m.follow(), nil
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp:
			m.top -= wheelStep
			return m.clampScroll(), nil
		case tea.MouseButtonWheelDown:
			m.top += wheelStep
			return m.clampScroll(), nil
		case tea.MouseButtonLeft:
			if !m.inText(msg.X, msg.Y) {
				return m, nil
			}
			pt := m.hitPoint(msg.X, msg.Y)
			if msg.Shift {
				m.sess.PointerDrag(pt)
			} else {
				m.sess.PointerDown(pt)
			}
			m.dragging = true
		}

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		x, y := m.clampToText(msg.X, msg.Y)
		m.sess.PointerDrag(m.hitPoint(x, y))

	case tea.MouseActionRelease:
		if m.dragging {
			m.sess.PointerUp()
			m.dragging = false
		}
	}
	return m, nil
}

func (m model) checkReload() model {
	if m.store == nil {
		return m
	}
	text, ok, err := m.store.ReloadIfChanged()
	if err != nil || !ok {
		return m
	}
	m.sess.SetText(text)
	return m.follow()
}

// hitPoint maps viewport-local cell coordinates to document geometry. The
// cell provider makes one row one unit tall, so only the scroll offset
// shifts Y.
func (m model) hitPoint(x, y int) layout.Point {
	return layout.Point{X: float64(x), Y: float64(m.top + y)}
}

func (m model) textHeight() int {
	if m.height <= 1 {
		return 0
	}
	return m.height - 1
}

func (m model) inText(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.textHeight()
}

func (m model) clampToText(x, y int) (int, int) {
	if x < 0 {
		x = 0
	}
	if x >= m.width && m.width > 0 {
		x = m.width - 1
	}
	if y < 0 {
		y = 0
	}
	if h := m.textHeight(); y >= h && h > 0 {
		y = h - 1
	}
	return x, y
}

// follow scrolls the view so the caret stays visible.
func (m model) follow() model {
	h := m.textHeight()
	if h <= 0 {
		return m
	}
	head := m.sess.Head()
	if head.Line < m.top {
		m.top = head.Line
	}
	if head.Line >= m.top+h {
		m.top = head.Line - h + 1
	}
	return m.clampScroll()
}

func (m model) clampScroll() model {
	if max := m.sess.LineCount() - 1; m.top > max {
		m.top = max
	}
	if m.top < 0 {
		m.top = 0
	}
	return m
}
