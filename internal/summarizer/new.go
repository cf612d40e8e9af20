package summarizer

import "fmt"

// DefaultMaxSentences is the summary length used when none is configured
const DefaultMaxSentences = 5

type implSummarizer struct {
	maxSentences int
}

// New creates a Summarizer keeping at most maxSentences leading sentences.
func New(maxSentences int) (Summarizer, error) {
	if maxSentences <= 0 {
		return nil, fmt.Errorf("max sentences must be positive, got %d", maxSentences)
	}
	return &implSummarizer{maxSentences: maxSentences}, nil
}
