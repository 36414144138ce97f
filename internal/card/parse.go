package card

import (
	"strings"

	"ankibot/internal/domain"
)

// Parse extracts card fields from a backend response. Only lines starting
// with a known label are read; everything else is ignored. When a label
// repeats, the last occurrence wins. Absent and "N/A" values both map to
// an invalid field, so downstream code never sees the sentinel text.
func Parse(response, word string) domain.Card {
	c := domain.EmptyCard(word)

	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "TRANSLATION:"):
			c.Translation = domain.NewField(strings.TrimPrefix(line, "TRANSLATION:"))
		case strings.HasPrefix(line, "PART_OF_SPEECH:"):
			c.PartOfSpeech = domain.NewField(strings.TrimPrefix(line, "PART_OF_SPEECH:"))
		case strings.HasPrefix(line, "PRONUNCIATION:"):
			c.Pronunciation = domain.NewField(strings.TrimPrefix(line, "PRONUNCIATION:"))
		case strings.HasPrefix(line, "EXPLANATION_NOUN:"):
			c.ExplanationNoun = domain.NewField(strings.TrimPrefix(line, "EXPLANATION_NOUN:"))
		case strings.HasPrefix(line, "EXPLANATION_VERB:"):
			c.ExplanationVerb = domain.NewField(strings.TrimPrefix(line, "EXPLANATION_VERB:"))
		case strings.HasPrefix(line, "EXAMPLE_NOUN:"):
			c.ExampleNoun = domain.NewField(strings.TrimPrefix(line, "EXAMPLE_NOUN:"))
		case strings.HasPrefix(line, "EXAMPLE_VERB:"):
			c.ExampleVerb = domain.NewField(strings.TrimPrefix(line, "EXAMPLE_VERB:"))
		}
	}

	return c
}
