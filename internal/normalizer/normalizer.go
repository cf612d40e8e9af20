package normalizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	reTimestamp    = regexp.MustCompile(`\d{1,2}:\d{2}:\d{2}`)
	reSpeakerLabel = regexp.MustCompile(`\b[A-Z][a-z]+:`)
)

// Normalize strips HH:MM:SS timestamps and single-word speaker labels, then collapses whitespace.
// Whitespace is anything unicode.IsSpace accepts, including \v, NBSP and em spaces.
// Only "Capitalized:" labels are removed; "Mary Jane:" loses "Jane:" and "ALICE:" is kept.
func (n *implNormalizer) Normalize(raw string) string {
	text := norm.NFC.String(raw)
	text = reTimestamp.ReplaceAllString(text, "")
	text = reSpeakerLabel.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), n.joiner)
}
