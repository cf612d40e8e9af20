package extractor

import "github.com/nguyentantai21042004/transcript-flow/internal/models"

// Extractor flags sentences that look like tasks, commitments or deadlines.
type Extractor interface {
	Extract(sentences []models.Sentence) []string
}
