package extractor

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nguyentantai21042004/transcript-flow/internal/models"
)

// Extract returns, in order, the text of every sentence containing any keyword.
// Matching is a case-insensitive substring test, so "asap" also matches inside longer tokens.
// A sentence appears once however many keywords it holds; repeated sentences are kept.
func (e *implExtractor) Extract(sentences []models.Sentence) []string {
	lower := cases.Lower(language.Und)
	actions := make([]string, 0)
	for _, s := range sentences {
		if e.matches(lower.String(s.Text)) {
			actions = append(actions, strings.TrimSpace(s.Text))
		}
	}
	return actions
}

func (e *implExtractor) matches(text string) bool {
	for _, kw := range e.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
