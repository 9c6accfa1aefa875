package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if h := msg.Height - 14; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case SimulationDoneMsg:
		m.result = msg.Result
		m.loading = false
		m.err = nil
		m.refreshTable()
		return m, nil

	case SimulationErrMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.RealTerms):
		m.realTerms = !m.realTerms
		m.loading = true
		return m, m.simulateCmd()

	case key.Matches(msg, m.keys.Toggle):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(reformOrder) {
			m.enabled[reformOrder[idx]] = !m.enabled[reformOrder[idx]]
			m.loading = true
			return m, m.simulateCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Rerun):
		m.loading = true
		return m, m.simulateCmd()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}
