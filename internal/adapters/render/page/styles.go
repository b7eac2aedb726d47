package page

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	button lipgloss.Style
	busy   lipgloss.Style
	help   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		button: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
		busy:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		help:   lipgloss.NewStyle().Faint(true),
	}
}
