package spelling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictionary_Known(t *testing.T) {
	dict := NewDictionary()

	assert.True(t, dict.Known("the"))
	assert.True(t, dict.Known("receive"))
	assert.True(t, dict.Known("Receive"), "lookup should ignore case")
	assert.False(t, dict.Known("recieve"))
	assert.False(t, dict.Known("xyzzy"))
}

func TestDictionary_AddWords(t *testing.T) {
	dict := NewDictionary()
	assert.False(t, dict.Known("blockchain"))

	dict.AddWords([]string{"blockchain", " Covid ", ""})

	assert.True(t, dict.Known("blockchain"))
	assert.True(t, dict.Known("covid"))
}

func TestDictionary_Suggest(t *testing.T) {
	tests := []struct {
		name              string
		word              string
		expectedBest      string
		expectedAmbiguous bool
	}{
		{
			name:              "one edit with competing candidates",
			word:              "recieve",
			expectedBest:      "receive",
			expectedAmbiguous: true,
		},
		{
			name:              "one edit with a single candidate",
			word:              "definately",
			expectedBest:      "definitely",
			expectedAmbiguous: false,
		},
		{
			name:              "missing double letter",
			word:              "necesary",
			expectedBest:      "necessary",
			expectedAmbiguous: false,
		},
		{
			name:              "transposition picks the more frequent word",
			word:              "wrod",
			expectedBest:      "word",
			expectedAmbiguous: true,
		},
		{
			name:              "uppercase input is normalized",
			word:              "Recieve",
			expectedBest:      "receive",
			expectedAmbiguous: true,
		},
		{
			name:              "nothing within two edits",
			word:              "floccinaucinihilipilification",
			expectedBest:      "",
			expectedAmbiguous: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict := NewDictionary()

			best, ambiguous := dict.Suggest(tt.word)

			assert.Equal(t, tt.expectedBest, best)
			assert.Equal(t, tt.expectedAmbiguous, ambiguous)
		})
	}
}

func TestDictionary_Suggest_TwoEditsIsAmbiguous(t *testing.T) {
	dict := NewDictionary()

	// Two typos away from "necessary"; no dictionary word is one edit
	// away, so the match comes from the second-edit ring.
	best, ambiguous := dict.Suggest("necesarry")

	assert.Equal(t, "necessary", best)
	assert.True(t, ambiguous)
}
