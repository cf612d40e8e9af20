// Package models holds the records that flow through the transcript pipeline.
package models

import "time"

// Transcript is the raw content of one input file
type Transcript struct {
	Source string
	Text   string
}

// Sentence is one segmented unit of normalized text. Index is its position in the transcript.
type Sentence struct {
	Index int
	Text  string
}

// OutputRecord is the persisted result for one transcript. The JSON field names are a compatibility surface.
type OutputRecord struct {
	GeneratedAt   time.Time `json:"generated_at"`
	SummaryPoints []string  `json:"summary_points"`
	ActionsList   []string  `json:"actions_list"`
}

// Texts returns the surface text of each sentence, in order
func Texts(sentences []Sentence) []string {
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, s.Text)
	}
	return out
}
