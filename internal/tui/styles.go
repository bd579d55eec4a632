package tui

import "github.com/charmbracelet/lipgloss"

const maxFormWidth = 72

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	resultTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230"))

	resultStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("30")).
			Foreground(lipgloss.Color("255")).
			Padding(1, 2).
			MarginTop(1)

	patternStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)
