package extractor

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type implExtractor struct {
	keywords []string
}

// New creates an Extractor over the given lexicon. Keywords are lower-cased and deduplicated.
func New(keywords []string) (Extractor, error) {
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(keywords))
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = lower.String(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		normalized = append(normalized, kw)
	}
	if len(normalized) == 0 {
		return nil, errors.New("keyword lexicon is empty")
	}

	// Shorter keywords first; they are the likeliest to match early.
	sort.SliceStable(normalized, func(i, j int) bool {
		return len(normalized[i]) < len(normalized[j])
	})

	return &implExtractor{keywords: normalized}, nil
}
