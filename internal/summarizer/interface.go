package summarizer

import "github.com/nguyentantai21042004/transcript-flow/internal/models"

// Summarizer selects an extractive summary from segmented sentences.
type Summarizer interface {
	Summarize(sentences []models.Sentence) []models.Sentence
}
