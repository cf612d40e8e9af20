package normalizer

import (
	"testing"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \n\t ", ""},
		{"timestamp", "10:15:30 Hello there.", "Hello there."},
		{"short hour timestamp", "9:05:01 Hello.", "Hello."},
		{"speaker label", "Alice: We should ship.", "We should ship."},
		{"timestamp and label", "09:01:05 Alice: We should review the budget.", "We should review the budget."},
		{"collapses runs", "one   two\n\nthree\tfour", "one two three four"},
		{"multi-word name keeps first word", "Mary Jane: Hi.", "Mary Hi."},
		{"all caps label kept", "ALICE: Hi.", "ALICE: Hi."},
		{"label mid text", "We discussed Budget: numbers.", "We discussed numbers."},
		{"no-break spaces", "We\u00a0\u00a0should review.", "We should review."},
		{"vertical tab", "We\vshould review.", "We should review."},
		{"em space run", "We\u2003 should review.", "We should review."},
		{"unicode padding trimmed", "\u00a0Hello.\u2003", "Hello."},
		{"composed unicode", "Café talk.", "Café talk."},
	}

	n := New(config.WhitespaceSingle)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeStripMode(t *testing.T) {
	n := New(config.WhitespaceStrip)
	got := n.Normalize("09:01:05 Alice: We should review.  Bob: Ok.")
	want := "Weshouldreview.Ok."
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeStripModeUnicodeSpaces(t *testing.T) {
	n := New(config.WhitespaceStrip)
	for _, in := range []string{"We\u00a0\u00a0should review.", "We\vshould review.", "We\u2003 should review."} {
		if got := n.Normalize(in); got != "Weshouldreview." {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, "Weshouldreview.")
		}
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	inputs := []string{
		"09:01:05 Alice: We should review the budget. 09:01:10 Bob: I will follow up.",
		"  spaced\n\nout  ",
		"no changes needed.",
	}

	for _, mode := range []string{config.WhitespaceSingle, config.WhitespaceStrip} {
		n := New(mode)
		for _, in := range inputs {
			first := n.Normalize(in)
			second := n.Normalize(in)
			if first != second {
				t.Errorf("mode %s: Normalize(%q) not deterministic: %q vs %q", mode, in, first, second)
			}
		}
	}
}
