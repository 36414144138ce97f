package card

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ankibot/internal/domain"
)

const (
	maxQualityPoints = 10

	// A card need not be perfect to pass, only mostly good: either no
	// issues at all, or a score at or above this threshold with at most
	// maxAcceptedIssues of them.
	acceptScore       = 0.6
	maxAcceptedIssues = 2
)

// Validate scores a cleaned card against the ten-point quality budget and
// reports the issues found, with one improvement suggestion per failed
// category. Pure function; the caller decides what to do with a rejected
// card.
func Validate(word string, c domain.Card) domain.Validation {
	var issues, suggestions []string
	points := 0

	if hasMarkdown(c) {
		issues = append(issues, "Contains markdown formatting")
		suggestions = append(suggestions, "Remove all ** and * characters from the content")
	} else {
		points++
	}

	if ok, issue := checkTranslation(c.Translation); !ok {
		issues = append(issues, issue)
		suggestions = append(suggestions, "Ensure Ukrainian translation is provided with Cyrillic characters")
	} else {
		points += 2
	}

	if !c.PartOfSpeech.Valid {
		issues = append(issues, "Missing part of speech")
		suggestions = append(suggestions, "Specify whether the word is a noun, verb, adjective, etc.")
	} else {
		points++
	}

	if ok, issue := checkPronunciation(c.Pronunciation); !ok {
		issues = append(issues, issue)
		suggestions = append(suggestions, "Provide IPA pronunciation for both British and American English")
	} else {
		points += 2
	}

	if !c.ExplanationNoun.Valid && !c.ExplanationVerb.Valid {
		issues = append(issues, "No explanations provided")
		suggestions = append(suggestions, "Provide at least one explanation for the word's meaning")
	} else {
		points += 2
	}

	if exampleIssues := checkExamples(word, c.ExampleNoun, c.ExampleVerb); len(exampleIssues) > 0 {
		issues = append(issues, exampleIssues...)
		suggestions = append(suggestions, "Ensure examples contain the word and include Ukrainian translations")
	} else {
		points += 2
	}

	score := float64(points) / maxQualityPoints
	valid := len(issues) == 0 || (score >= acceptScore && len(issues) <= maxAcceptedIssues)

	return domain.Validation{
		Valid:       valid,
		Issues:      issues,
		Score:       score,
		Suggestions: suggestions,
	}
}

func hasMarkdown(c domain.Card) bool {
	for _, f := range c.ContentFields() {
		if f.Valid && strings.Contains(f.Text, "*") {
			return true
		}
	}
	return false
}

func checkTranslation(f domain.Field) (bool, string) {
	if !f.Valid || utf8.RuneCountInString(f.Text) < 5 {
		return false, "Missing or too short translation"
	}
	if !containsCyrillic(f.Text) {
		return false, "Missing Ukrainian (Cyrillic) characters in translation"
	}
	return true, ""
}

func checkPronunciation(f domain.Field) (bool, string) {
	if !f.Valid {
		return false, "Missing pronunciation"
	}
	if !strings.ContainsAny(f.Text, "/[") {
		return false, "Invalid IPA format (missing / or [ markers)"
	}
	if !strings.Contains(f.Text, "BrE") || !strings.Contains(f.Text, "AmE") {
		return false, "Missing British or American pronunciation"
	}
	return true, ""
}

// checkExamples validates whichever example fields are present: each must
// contain an inflected form of the word and Ukrainian text, so one card
// can accumulate several example issues.
func checkExamples(word string, noun, verb domain.Field) []string {
	if !noun.Valid && !verb.Valid {
		return []string{"No examples provided"}
	}

	var issues []string
	forms := wordForms(word)

	if noun.Valid && !containsAnyForm(noun.Text, forms) {
		issues = append(issues, fmt.Sprintf("Word '%s' not found in noun example", word))
	}
	if verb.Valid && !containsAnyForm(verb.Text, forms) {
		issues = append(issues, fmt.Sprintf("Word '%s' not found in verb example", word))
	}

	if noun.Valid && !containsCyrillic(noun.Text) {
		issues = append(issues, "Missing Ukrainian translation in noun example")
	}
	if verb.Valid && !containsCyrillic(verb.Text) {
		issues = append(issues, "Missing Ukrainian translation in verb example")
	}

	return issues
}

// wordForms lists naive inflections of the word: bare, plural, past,
// progressive, and the y-to-ied substitution.
func wordForms(word string) []string {
	w := strings.ToLower(word)
	return []string{w, w + "s", w + "ed", w + "ing", w[:len(w)-1] + "ied"}
}

func containsAnyForm(text string, forms []string) bool {
	lower := strings.ToLower(text)
	for _, form := range forms {
		if strings.Contains(lower, form) {
			return true
		}
	}
	return false
}

func containsCyrillic(s string) bool {
	for _, r := range s {
		if r >= 0x0400 && r <= 0x04FF {
			return true
		}
	}
	return false
}
