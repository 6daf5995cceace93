package main

import "github.com/charmbracelet/lipgloss"

// Style controls the scratchpad's rendering.
type Style struct {
	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
	Status    lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:      lipgloss.NewStyle(),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
