package domain

import "strings"

// AbsentMarker is the placeholder the model prompt and the Anki markup use
// for a field that was not produced.
const AbsentMarker = "N/A"

// Field is one piece of card content. The zero value means the field is
// absent, in the mold of sql.NullString.
type Field struct {
	Text  string
	Valid bool
}

// NewField builds a Field from raw model output. Empty strings and the
// literal absence marker (any case) count as absent.
func NewField(s string) Field {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, AbsentMarker) {
		return Field{}
	}
	return Field{Text: s, Valid: true}
}

// OrNA returns the field text, or the absence marker for an absent field.
// Absence is serialized only at the prompt/markup boundary.
func (f Field) OrNA() string {
	if !f.Valid {
		return AbsentMarker
	}
	return f.Text
}

// Card is the structured content of one flashcard.
type Card struct {
	Word            string
	Translation     Field
	PartOfSpeech    Field
	Pronunciation   Field
	ExplanationNoun Field
	ExplanationVerb Field
	ExampleNoun     Field
	ExampleVerb     Field
}

// EmptyCard returns a card for word with every content field absent.
func EmptyCard(word string) Card {
	return Card{Word: word}
}

// ContentFields returns the seven content fields in schema order.
func (c Card) ContentFields() []Field {
	return []Field{
		c.Translation,
		c.PartOfSpeech,
		c.Pronunciation,
		c.ExplanationNoun,
		c.ExplanationVerb,
		c.ExampleNoun,
		c.ExampleVerb,
	}
}

// IsEmpty reports whether no content field is set.
func (c Card) IsEmpty() bool {
	for _, f := range c.ContentFields() {
		if f.Valid {
			return false
		}
	}
	return true
}
