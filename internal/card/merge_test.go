package card

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ankibot/internal/domain"
)

func TestMerge_SingletonKeepsOwnFields(t *testing.T) {
	c := domain.EmptyCard("run")
	c.Translation = domain.NewField("verb — бігти")
	c.Pronunciation = domain.NewField("/rʌn/ (BrE), /rʌn/ (AmE)")
	c.ExampleVerb = domain.NewField("She likes to run. (Вона любить бігати.)")

	merged := Merge("run", []domain.Card{c})

	assert.Equal(t, "verb — бігти", merged.Translation.Text)
	assert.Equal(t, "/rʌn/ (BrE), /rʌn/ (AmE)", merged.Pronunciation.Text)
	assert.Equal(t, "She likes to run. (Вона любить бігати.)", merged.ExampleVerb.Text)
	assert.False(t, merged.ExplanationNoun.Valid)
}

func TestMerge_SingletonDropsExampleWithoutWord(t *testing.T) {
	c := domain.EmptyCard("run")
	c.ExampleNoun = domain.NewField("A nice sentence without the target. (Гарне речення.)")

	merged := Merge("run", []domain.Card{c})

	assert.False(t, merged.ExampleNoun.Valid)
}

func TestMerge_PrefersCyrillicOverLonger(t *testing.T) {
	a := domain.EmptyCard("run")
	a.Translation = domain.NewField("a much longer english-only translation value")
	b := domain.EmptyCard("run")
	b.Translation = domain.NewField("біг")

	merged := Merge("run", []domain.Card{a, b})

	assert.Equal(t, "біг", merged.Translation.Text)
}

func TestMerge_PrefersLongestAmongCyrillic(t *testing.T) {
	a := domain.EmptyCard("run")
	a.Translation = domain.NewField("біг")
	b := domain.EmptyCard("run")
	b.Translation = domain.NewField("бігти або бігати")

	merged := Merge("run", []domain.Card{a, b})

	assert.Equal(t, "бігти або бігати", merged.Translation.Text)
}

func TestMerge_PronunciationTakesFirstSurvivor(t *testing.T) {
	a := domain.EmptyCard("run")
	a.Pronunciation = domain.NewField("ran (BrE), ran (AmE)")
	b := domain.EmptyCard("run")
	b.Pronunciation = domain.NewField("/rʌn/ (BrE)")
	c := domain.EmptyCard("run")
	c.Pronunciation = domain.NewField("/rʌn/ (BrE), /rʌn/ (AmE), with a longer tail")

	merged := Merge("run", []domain.Card{a, b, c})

	// The first value containing a delimiter wins, not the longest.
	assert.Equal(t, "/rʌn/ (BrE)", merged.Pronunciation.Text)
}

func TestMerge_ExampleFilterIsCaseInsensitive(t *testing.T) {
	a := domain.EmptyCard("run")
	a.ExampleVerb = domain.NewField("Run as fast as you can! (Біжи якнайшвидше!)")

	merged := Merge("run", []domain.Card{a})

	assert.Equal(t, "Run as fast as you can! (Біжи якнайшвидше!)", merged.ExampleVerb.Text)
}

func TestMerge_CombinesFieldsAcrossAttempts(t *testing.T) {
	a := domain.EmptyCard("run")
	a.Translation = domain.NewField("verb — бігти")
	b := domain.EmptyCard("run")
	b.PartOfSpeech = domain.NewField("Verb (дієслово)")
	c := domain.EmptyCard("run")
	c.ExplanationVerb = domain.NewField("To move rapidly (бігти)")

	merged := Merge("run", []domain.Card{a, b, c})

	assert.Equal(t, "verb — бігти", merged.Translation.Text)
	assert.Equal(t, "Verb (дієслово)", merged.PartOfSpeech.Text)
	assert.Equal(t, "To move rapidly (бігти)", merged.ExplanationVerb.Text)
}

func TestMerge_NoAttempts(t *testing.T) {
	merged := Merge("run", nil)

	assert.True(t, merged.IsEmpty())
	assert.Equal(t, "run", merged.Word)
}
