package tui

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// handleKeyPress edits the query line and quits on ctrl+c/esc.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.Query) > 0 {
			_, size := utf8.DecodeLastRuneInString(m.Query)
			m.Query = m.Query[:len(m.Query)-size]
		}
		return m.runSearch(), nil
	case tea.KeySpace:
		m.Query += " "
		return m.runSearch(), nil
	case tea.KeyRunes:
		m.Query += string(msg.Runes)
		return m.runSearch(), nil
	}
	return m, nil
}
