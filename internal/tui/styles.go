package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	newStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	deletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
