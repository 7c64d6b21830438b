package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"articlesearch/config"
	"articlesearch/search"
	"articlesearch/types"
)

// Model is the interactive search demo: a query line edited by the user and
// the ranked results from the lexical fallback engine, recomputed on every
// keystroke. Everything runs locally; no credentials required.
type Model struct {
	engine *search.LexicalEngine

	Query   string
	Results []types.SearchResult
	Err     error
}

// NewModel creates a TUI model over the built-in demo corpus.
func NewModel() Model {
	return Model{
		engine:  search.NewLexicalEngine(search.DemoCorpus()),
		Results: nil,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// runSearch recomputes results for the current query. An empty query just
// clears the list.
func (m Model) runSearch() Model {
	if m.Query == "" {
		m.Results = nil
		m.Err = nil
		return m
	}

	results, err := m.engine.Search(context.Background(), m.Query, config.DefaultSearchLimit)
	m.Results = results
	m.Err = err
	return m
}
