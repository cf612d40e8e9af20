package summarizer

import "github.com/nguyentantai21042004/transcript-flow/internal/models"

// Summarize returns the first maxSentences sentences in their original order.
// The result never aliases the input slice.
func (s *implSummarizer) Summarize(sentences []models.Sentence) []models.Sentence {
	n := len(sentences)
	if n > s.maxSentences {
		n = s.maxSentences
	}

	out := make([]models.Sentence, n)
	copy(out, sentences[:n])
	return out
}
