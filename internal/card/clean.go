package card

import (
	"regexp"
	"strings"

	"ankibot/internal/domain"
)

var (
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\([^\)]+\)`)
	headerPattern     = regexp.MustCompile(`(?m)^#+\s+`)
	codeBlockPattern  = regexp.MustCompile("```[^`]*```")
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
)

// CleanMarkdown strips markdown formatting the backend emits despite the
// plain-text instruction: emphasis markers, links, headers, and code
// spans.
func CleanMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "*", "")
	text = linkPattern.ReplaceAllString(text, "$1")
	text = headerPattern.ReplaceAllString(text, "")
	text = codeBlockPattern.ReplaceAllString(text, "")
	text = inlineCodePattern.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}

// CleanCard applies CleanMarkdown to every content field. A field whose
// text is nothing but markup ends up absent.
func CleanCard(c domain.Card) domain.Card {
	c.Translation = cleanField(c.Translation)
	c.PartOfSpeech = cleanField(c.PartOfSpeech)
	c.Pronunciation = cleanField(c.Pronunciation)
	c.ExplanationNoun = cleanField(c.ExplanationNoun)
	c.ExplanationVerb = cleanField(c.ExplanationVerb)
	c.ExampleNoun = cleanField(c.ExampleNoun)
	c.ExampleVerb = cleanField(c.ExampleVerb)
	return c
}

func cleanField(f domain.Field) domain.Field {
	if !f.Valid {
		return f
	}
	return domain.NewField(CleanMarkdown(f.Text))
}
