package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Date Formatter options:"),
		m.form.View(),
		m.viewResult(),
		m.help.View(m),
	)
	return docStyle.Render(ui)
}

func (m Model) viewResult() string {
	result := m.result
	if result == "" {
		result = " "
	}

	lines := []string{
		resultTitleStyle.Render("Result:"),
		result,
	}
	if m.pattern != "" {
		lines = append(lines, patternStyle.Render(m.pattern))
	}
	if m.warning != "" {
		lines = append(lines, warningStyle.Render(m.warning))
	}
	return resultStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
