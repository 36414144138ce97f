package domain

// SpellCheck is the outcome of checking one candidate word.
// Suggestion is set only when the word was rejected and a correction was
// found; an empty Suggestion on an invalid word means "reject, no fix".
type SpellCheck struct {
	Valid      bool
	Original   string
	Suggestion string
}

// Validation is the quality verdict for a generated card. Score is the
// share of the 10-point quality budget the card earned; Issues and
// Suggestions are ordered and human-readable.
type Validation struct {
	Valid       bool
	Issues      []string
	Score       float64
	Suggestions []string
}
