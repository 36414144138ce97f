package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain data",
			input:    "day_20260614",
			expected: "day_20260614",
		},
		{
			name:     "form feed prefix from unrouted unique",
			input:    "\fday_20260614",
			expected: "day_20260614",
		},
		{
			name:     "surrounding whitespace",
			input:    "  days_2  ",
			expected: "days_2",
		},
		{
			name:     "embedded newline",
			input:    "days\n_2",
			expected: "days_2",
		},
		{
			name:     "embedded tab",
			input:    "days\t_2",
			expected: "days_2",
		},
		{
			name:     "control characters",
			input:    "use\x00_suggestion\x01",
			expected: "use_suggestion",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
