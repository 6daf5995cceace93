package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the scratchpad key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	ShiftHome, ShiftEnd                       key.Binding
	DocHome, DocEnd                           key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Indent, Outdent   key.Binding

	DeleteToStart, DeleteToEnd key.Binding
	DeleteLine                 key.Binding
	MoveLineUp, MoveLineDown   key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
	SelectAll        key.Binding

	FontUp, FontDown, FontReset key.Binding

	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to line start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to line end")),
		DocHome:   key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:    key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Indent:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Outdent:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "outdent")),

		DeleteToStart: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "delete to line start")),
		DeleteToEnd:   key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "delete to line end")),
		DeleteLine:    key.NewBinding(key.WithKeys("ctrl+shift+k", "ctrl+d"), key.WithHelp("ctrl+d", "delete line")),
		MoveLineUp:    key.NewBinding(key.WithKeys("alt+up"), key.WithHelp("alt+↑", "move line up")),
		MoveLineDown:  key.NewBinding(key.WithKeys("alt+down"), key.WithHelp("alt+↓", "move line down")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		FontUp:    key.NewBinding(key.WithKeys("ctrl+=", "ctrl++"), key.WithHelp("ctrl+=", "larger font")),
		FontDown:  key.NewBinding(key.WithKeys("ctrl+-", "ctrl+_"), key.WithHelp("ctrl+-", "smaller font")),
		FontReset: key.NewBinding(key.WithKeys("ctrl+0"), key.WithHelp("ctrl+0", "reset font")),

		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}
