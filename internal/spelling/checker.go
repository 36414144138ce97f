package spelling

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"ankibot/internal/domain"
	"ankibot/internal/llm"
)

const spellPrompt = `Check if the English word "%s" is spelled correctly.

If it's correct, respond with: CORRECT
If it's misspelled, respond with: CORRECTION: [correct spelling]

Only correct obvious misspellings. Examples:
- "recieve" -> CORRECTION: receive
- "necessary" -> CORRECT
- "definately" -> CORRECTION: definitely`

// extraVocabulary covers modern terms the base word list predates.
var extraVocabulary = []string{
	"covid", "blockchain", "cryptocurrency", "metadata",
	"smartphone", "email", "online", "website",
}

// Checker resolves whether a candidate word is correctly spelled. The
// dictionary decides confident cases on its own; ambiguous corrections
// are escalated to the text backend for a second opinion.
type Checker struct {
	dict    *Dictionary
	backend llm.Provider
	timeout time.Duration
	logger  *zap.Logger
}

// NewChecker creates a spelling checker around dict. The backend may be
// nil, in which case ambiguous corrections fall back to the dictionary's
// best candidate.
func NewChecker(dict *Dictionary, backend llm.Provider, timeout time.Duration, logger *zap.Logger) *Checker {
	dict.AddWords(extraVocabulary)
	return &Checker{dict: dict, backend: backend, timeout: timeout, logger: logger}
}

// Check runs the format gate, the dictionary lookup, and, for ambiguous
// corrections, the text backend. Backend failures never surface: the
// dictionary suggestion stands in. Unknown words with no candidate within
// two edits are accepted as-is, since the dictionary cannot tell rare
// vocabulary from noise.
func (c *Checker) Check(ctx context.Context, word string) domain.SpellCheck {
	if err := ValidateFormat(word); err != nil {
		return domain.SpellCheck{Valid: false, Original: word}
	}

	if c.dict.Known(word) {
		return domain.SpellCheck{Valid: true, Original: word}
	}

	best, ambiguous := c.dict.Suggest(word)
	if best == "" {
		return domain.SpellCheck{Valid: true, Original: word}
	}

	if ambiguous && c.backend != nil {
		if result, ok := c.checkWithBackend(ctx, word); ok {
			return result
		}
	}

	return domain.SpellCheck{Valid: false, Original: word, Suggestion: matchCase(word, best)}
}

var (
	correctionMarker = regexp.MustCompile(`(?i)CORRECTION:`)
	wordToken        = regexp.MustCompile(`[a-zA-Z\-']+`)
)

// checkWithBackend asks the text backend for a binary verdict. The second
// return value is false when the call fails or the reply is unusable, so
// the caller can fall back to the dictionary.
func (c *Checker) checkWithBackend(ctx context.Context, word string) (domain.SpellCheck, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reply, err := c.backend.Complete(ctx, fmt.Sprintf(spellPrompt, word))
	if err != nil {
		c.logger.Warn("Backend spell check failed, using dictionary suggestion",
			zap.String("word", word),
			zap.Error(err),
		)
		return domain.SpellCheck{}, false
	}

	// CORRECTION must be tested first: a CORRECTION reply contains
	// CORRECT as a substring.
	if loc := correctionMarker.FindStringIndex(reply); loc != nil {
		suggestion := wordToken.FindString(reply[loc[1]:])
		if suggestion == "" {
			return domain.SpellCheck{}, false
		}
		return domain.SpellCheck{
			Valid:      false,
			Original:   word,
			Suggestion: matchCase(word, suggestion),
		}, true
	}
	if strings.Contains(strings.ToUpper(reply), "CORRECT") {
		return domain.SpellCheck{Valid: true, Original: word}, true
	}

	c.logger.Warn("Backend spell check returned unusable reply",
		zap.String("word", word),
		zap.String("reply", reply),
	)
	return domain.SpellCheck{}, false
}

// matchCase copies the input's first-letter capitalization onto the
// suggestion.
func matchCase(original, suggestion string) string {
	if original == "" || suggestion == "" {
		return suggestion
	}
	if original[0] >= 'A' && original[0] <= 'Z' {
		return strings.ToUpper(suggestion[:1]) + suggestion[1:]
	}
	return strings.ToLower(suggestion[:1]) + suggestion[1:]
}
