package card

import (
	"strings"
	"unicode/utf8"

	"ankibot/internal/domain"
)

// Merge synthesizes one card from the attempt history, field by field.
// Candidates are the non-absent values across attempts, with two filters:
// pronunciations must contain a phonetic delimiter, and examples must
// contain the target word. Pronunciation takes the first surviving
// candidate since its format is rigid and length says nothing about
// quality; every other field takes the best candidate by selectBest. The
// result may combine content from different attempts and is trusted as
// the best achievable outcome.
func Merge(word string, attempts []domain.Card) domain.Card {
	var (
		translations     []string
		parts            []string
		pronunciations   []string
		explanationsNoun []string
		explanationsVerb []string
		examplesNoun     []string
		examplesVerb     []string
	)
	lowerWord := strings.ToLower(word)

	for _, a := range attempts {
		if a.Translation.Valid {
			translations = append(translations, a.Translation.Text)
		}
		if a.PartOfSpeech.Valid {
			parts = append(parts, a.PartOfSpeech.Text)
		}
		if a.Pronunciation.Valid && strings.Contains(a.Pronunciation.Text, "/") {
			pronunciations = append(pronunciations, a.Pronunciation.Text)
		}
		if a.ExplanationNoun.Valid {
			explanationsNoun = append(explanationsNoun, a.ExplanationNoun.Text)
		}
		if a.ExplanationVerb.Valid {
			explanationsVerb = append(explanationsVerb, a.ExplanationVerb.Text)
		}
		if a.ExampleNoun.Valid && strings.Contains(strings.ToLower(a.ExampleNoun.Text), lowerWord) {
			examplesNoun = append(examplesNoun, a.ExampleNoun.Text)
		}
		if a.ExampleVerb.Valid && strings.Contains(strings.ToLower(a.ExampleVerb.Text), lowerWord) {
			examplesVerb = append(examplesVerb, a.ExampleVerb.Text)
		}
	}

	merged := domain.EmptyCard(word)
	merged.Translation = selectBest(translations)
	merged.PartOfSpeech = selectBest(parts)
	if len(pronunciations) > 0 {
		merged.Pronunciation = domain.NewField(pronunciations[0])
	}
	merged.ExplanationNoun = selectBest(explanationsNoun)
	merged.ExplanationVerb = selectBest(explanationsVerb)
	merged.ExampleNoun = selectBest(examplesNoun)
	merged.ExampleVerb = selectBest(examplesVerb)
	return merged
}

// selectBest picks the longest candidate that contains Cyrillic text, or
// the longest overall when none does. Length is measured in runes. Ties
// keep the earlier candidate, so the choice is deterministic.
func selectBest(values []string) domain.Field {
	if len(values) == 0 {
		return domain.Field{}
	}

	best := values[0]
	bestCyrillic := containsCyrillic(best)
	for _, v := range values[1:] {
		cyrillic := containsCyrillic(v)
		switch {
		case cyrillic && !bestCyrillic:
			best, bestCyrillic = v, true
		case cyrillic == bestCyrillic && utf8.RuneCountInString(v) > utf8.RuneCountInString(best):
			best = v
		}
	}
	return domain.NewField(best)
}
