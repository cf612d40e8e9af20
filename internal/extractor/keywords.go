package extractor

// DefaultKeywords is the built-in action lexicon: modal verbs, commitments, deadline phrases and requests.
var DefaultKeywords = []string{
	"will", "should", "need to", "must", "assign", "follow up", "deadline", "complete",
	"review", "going to", "plan to", "intend to", "promise", "commit to", "schedule", "arrange",
	"organize", "prepare", "set up", "have to", "required to", "expected to", "responsible for", "accountable for",
	"mandated", "obligated", "due by", "pending", "asap", "implement",
	"execute", "submit", "deliver", "update", "fix", "resolve", "create", "build", "deploy",
	"check with", "get back to", "reach out", "coordinate", "discuss", "confirm", "notify",
	"inform", "clarify", "sync", "by tomorrow", "by next week", "end of day", "eod", "by friday",
	"before", "after", "within", "no later than", "let's", "can you", "could you", "please",
	"remind", "ensure", "make sure", "double check",
}
