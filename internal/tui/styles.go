package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles the preview renders with.
type Styles struct {
	Title  lipgloss.Style
	Normal lipgloss.Style
	Subtle lipgloss.Style
	Name   lipgloss.Style
	Hex    lipgloss.Style
	Cursor lipgloss.Style
	Swatch lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Normal: lipgloss.NewStyle(),
		Subtle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Name:   lipgloss.NewStyle().Width(24),
		Hex:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Cursor: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Swatch: lipgloss.NewStyle(),
	}
}
