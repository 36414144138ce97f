package card

import (
	"fmt"

	"ankibot/internal/domain"
)

// FormatAnki renders a card as the HTML back side of an Anki note: five
// numbered bilingual sections. Explanation and example sections list only
// the word classes that are present, with a placeholder line when neither
// is. Scalar fields fall back to the absent marker so the note layout
// stays stable.
func FormatAnki(c domain.Card) string {
	examples := ""
	if c.ExampleNoun.Valid {
		examples += fmt.Sprintf("• <b>Noun:</b> %s<br>", c.ExampleNoun.Text)
	}
	if c.ExampleVerb.Valid {
		examples += fmt.Sprintf("• <b>Verb:</b> %s<br>", c.ExampleVerb.Text)
	}
	if examples == "" {
		examples = "<i>No examples available</i><br>"
	}

	explanation := ""
	if c.ExplanationNoun.Valid {
		explanation += fmt.Sprintf("🔹 As a <b>noun</b>: %s<br>", c.ExplanationNoun.Text)
	}
	if c.ExplanationVerb.Valid {
		explanation += fmt.Sprintf("🔹 As a <b>verb</b>: %s<br>", c.ExplanationVerb.Text)
	}
	if explanation == "" {
		explanation = "<i>No explanation available</i><br>"
	}

	return fmt.Sprintf(`<b>1. Translation (Переклад):</b><br>
%s<br><br>

<b>2. Part of Speech (Частина мови):</b><br>
%s<br><br>

<b>3. Pronunciation (Вимова):</b><br>
%s<br><br>

<b>4. Explanation (Пояснення):</b><br>
%s<br>

<b>5. Examples (Приклади):</b><br>
%s`,
		c.Translation.OrNA(),
		c.PartOfSpeech.OrNA(),
		c.Pronunciation.OrNA(),
		explanation,
		examples,
	)
}
