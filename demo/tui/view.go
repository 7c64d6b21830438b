package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("🔎 Article Search Demo (lexical fallback)"))
	b.WriteString("\n\n")

	b.WriteString(QueryStyle.Render("search: " + m.Query + "▌"))
	b.WriteString("\n\n")

	switch {
	case m.Err != nil:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.Err)))
		b.WriteString("\n")
	case m.Query == "":
		b.WriteString(InfoStyle.Render("Type a query to search the demo corpus"))
		b.WriteString("\n")
	case len(m.Results) == 0:
		b.WriteString(InfoStyle.Render("No matches"))
		b.WriteString("\n")
	default:
		for i, r := range m.Results {
			card := fmt.Sprintf("%d. %s  %s\n%s",
				i+1,
				r.Article.Title,
				ScoreStyle.Render(fmt.Sprintf("(%.2f)", r.Score)),
				InfoStyle.Render(r.Article.Summary))
			b.WriteString(ResultBoxStyle.Render(card))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("Esc or Ctrl+C to quit"))
	b.WriteString("\n")

	return b.String()
}
