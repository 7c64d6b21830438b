package tui

import (
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

func typeRunes(m Model, s string) Model {
	next, _ := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func backspace(m Model) Model {
	next, _ := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyBackspace})
	return next.(Model)
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	m := typeRunes(NewModel(), "café")

	m = backspace(m)
	if m.Query != "caf" {
		t.Errorf("query = %q; want %q", m.Query, "caf")
	}
	if !utf8.ValidString(m.Query) {
		t.Errorf("query %q is not valid UTF-8", m.Query)
	}

	m = backspace(backspace(backspace(m)))
	if m.Query != "" {
		t.Errorf("query = %q; want empty", m.Query)
	}
	m = backspace(m)
	if m.Query != "" {
		t.Errorf("backspace on empty query changed it to %q", m.Query)
	}
}

func TestTypingUpdatesResults(t *testing.T) {
	m := typeRunes(NewModel(), "embeddings")
	if len(m.Results) == 0 {
		t.Error("no results after typing a corpus term")
	}

	for m.Query != "" {
		m = backspace(m)
	}
	if len(m.Results) != 0 {
		t.Errorf("results = %d after clearing the query; want 0", len(m.Results))
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewModel()
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := m.handleKeyPress(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Errorf("key %v: no quit command", key)
		}
	}
}
