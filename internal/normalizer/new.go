package normalizer

import "github.com/nguyentantai21042004/transcript-flow/internal/config"

type implNormalizer struct {
	joiner string
}

// New creates a Normalizer for the given whitespace mode.
// config.WhitespaceStrip removes whitespace entirely, concatenating words.
// Any other mode collapses whitespace runs to a single space.
func New(whitespace string) Normalizer {
	joiner := " "
	if whitespace == config.WhitespaceStrip {
		joiner = ""
	}
	return &implNormalizer{joiner: joiner}
}
