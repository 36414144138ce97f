package card

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ankibot/internal/domain"
)

func TestCleanMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "verb — бігти (to run)",
			expected: "verb — бігти (to run)",
		},
		{
			name:     "bold markers removed",
			input:    "**біг** means run",
			expected: "біг means run",
		},
		{
			name:     "single asterisks removed",
			input:    "*біг* means run",
			expected: "біг means run",
		},
		{
			name:     "link replaced with its text",
			input:    "see [receive](https://example.com/receive) for details",
			expected: "see receive for details",
		},
		{
			name:     "header prefix removed",
			input:    "## Translation",
			expected: "Translation",
		},
		{
			name:     "code block removed",
			input:    "before ```code here``` after",
			expected: "before  after",
		},
		{
			name:     "inline code unwrapped",
			input:    "the word `run` is a verb",
			expected: "the word run is a verb",
		},
		{
			name:     "surrounding whitespace stripped",
			input:    "  біг  ",
			expected: "біг",
		},
		{
			name:     "absent marker untouched",
			input:    "N/A",
			expected: "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanMarkdown(tt.input))
		})
	}
}

func TestCleanCard(t *testing.T) {
	c := domain.EmptyCard("run")
	c.Translation = domain.NewField("**бігти**")
	c.ExplanationVerb = domain.NewField("To *move* rapidly")
	c.ExampleVerb = domain.NewField("She runs daily. (Вона бігає щодня.)")

	cleaned := CleanCard(c)

	assert.Equal(t, "бігти", cleaned.Translation.Text)
	assert.Equal(t, "To move rapidly", cleaned.ExplanationVerb.Text)
	assert.Equal(t, "She runs daily. (Вона бігає щодня.)", cleaned.ExampleVerb.Text)
}

func TestCleanCard_PureMarkupFieldBecomesAbsent(t *testing.T) {
	c := domain.EmptyCard("run")
	c.Translation = domain.NewField("***")

	cleaned := CleanCard(c)

	assert.False(t, cleaned.Translation.Valid)
}

func TestCleanCard_AbsentFieldsStayAbsent(t *testing.T) {
	cleaned := CleanCard(domain.EmptyCard("run"))

	assert.True(t, cleaned.IsEmpty())
}
