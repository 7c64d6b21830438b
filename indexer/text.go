package indexer

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"articlesearch/config"
	"articlesearch/types"
)

// Pre-compiled patterns for HTML-to-text conversion.
var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// stripHTML reduces rendered HTML to plain text: tags become spaces,
// entities are unescaped, whitespace collapses to single spaces.
func stripHTML(s string) string {
	s = tagPattern.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// buildEmbeddingInput assembles the text embedded for an article: title,
// summary, and the plain-text body, bounded to keep the provider payload
// under its size limit.
func buildEmbeddingInput(a types.Article) string {
	input := a.Title + "\n\n" + a.Summary + "\n\n" + stripHTML(a.Body)
	return truncateUTF8(input, config.MaxEmbedInputChars)
}

// truncateUTF8 cuts s to at most max bytes without splitting a rune.
func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
