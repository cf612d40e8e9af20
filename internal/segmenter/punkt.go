package segmenter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/nguyentantai21042004/transcript-flow/internal/models"
)

type punktSegmenter struct {
	mu        sync.Mutex
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunkt loads the English punkt model once; the result is shared read-only across pipeline runs.
func NewPunkt() (Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &punktSegmenter{tokenizer: tokenizer}, nil
}

func (p *punktSegmenter) Segment(ctx context.Context, text string) ([]models.Sentence, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	p.mu.Lock()
	tokens := p.tokenizer.Tokenize(text)
	p.mu.Unlock()

	raw := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		raw = append(raw, tok.Text)
	}
	return indexed(raw), nil
}

// indexed trims each piece, drops empties and numbers the rest in order
func indexed(raw []string) []models.Sentence {
	out := make([]models.Sentence, 0, len(raw))
	for _, r := range raw {
		text := strings.TrimSpace(r)
		if text == "" {
			continue
		}
		out = append(out, models.Sentence{Index: len(out), Text: text})
	}
	return out
}
