package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.form = m.form.WithWidth(formWidth(msg.Width))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			return m, m.reset()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		// Submitting the last field starts another editing pass over the same values
		m.form = newForm(m.fields, m.opts.Date.Location()).WithWidth(formWidth(m.width))
		cmds = append(cmds, m.form.Init())
	case huh.StateAborted:
		m.quitting = true
		return m, tea.Quit
	}

	m.recompute()
	return m, tea.Batch(cmds...)
}

func formWidth(total int) int {
	if total <= 0 {
		return 0
	}
	if total > maxFormWidth {
		return maxFormWidth
	}
	return total
}
