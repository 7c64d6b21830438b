package search

import (
	"context"
	"sort"
	"strings"

	"articlesearch/types"
)

// Scoring constants; preserved exactly for compatibility with existing
// clients that display the score values.
const (
	phraseBonus = 0.5
	tokenBonus  = 0.1
	titleBonus  = 0.2
	maxScore    = 1.0

	// Tokens this short are treated as stop-word noise and discarded.
	minTokenLen = 3
)

// LexicalEngine is the in-process fallback relevance engine. It scores a
// fixed article corpus by token and phrase matching, deterministically and
// without network calls, returning the same result shape as the vector path.
type LexicalEngine struct {
	corpus []types.Article
}

// NewLexicalEngine builds a lexical engine over the given corpus. The corpus
// order is the tie-break order for equal scores.
func NewLexicalEngine(corpus []types.Article) *LexicalEngine {
	return &LexicalEngine{corpus: corpus}
}

// Search scores every corpus article against the query and returns the top
// limit matches sorted by descending score. Articles with no match at all
// are dropped.
func (e *LexicalEngine) Search(_ context.Context, query string, limit int) ([]types.SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	tokens := make([]string, 0)
	for _, tok := range strings.Fields(q) {
		if len(tok) >= minTokenLen {
			tokens = append(tokens, tok)
		}
	}

	results := make([]types.SearchResult, 0)
	for _, article := range e.corpus {
		score := scoreArticle(article, q, tokens)
		if score <= 0 {
			continue
		}
		results = append(results, types.SearchResult{
			ID:      article.ID,
			Score:   score,
			Article: article,
		})
	}

	// Stable sort keeps original corpus order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// scoreArticle accumulates the match score for one article: a phrase bonus
// when a multi-token query appears verbatim, a bonus per matching token, and
// a further bonus when the token also appears in the title. Capped at 1.
func scoreArticle(article types.Article, query string, tokens []string) float64 {
	text := searchableText(article)
	title := strings.ToLower(article.Title)

	score := 0.0
	if len(tokens) > 1 && strings.Contains(text, query) {
		score += phraseBonus
	}

	for _, tok := range tokens {
		if !strings.Contains(text, tok) {
			continue
		}
		score += tokenBonus
		if strings.Contains(title, tok) {
			score += titleBonus
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

// searchableText is the lowercased concatenation of every matchable field.
func searchableText(a types.Article) string {
	parts := []string{a.Title, a.Summary, a.Body, a.Category, strings.Join(a.Tags, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}
