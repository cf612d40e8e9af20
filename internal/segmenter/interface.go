package segmenter

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/models"
)

// Segmenter splits normalized text into ordered sentences.
// Empty input yields no sentences; text without terminal punctuation yields one.
type Segmenter interface {
	Segment(ctx context.Context, text string) ([]models.Sentence, error)
}
