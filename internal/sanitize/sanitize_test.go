package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "whitespace trimmed",
			input:    "  hello  ",
			expected: "hello",
		},
		{
			name:     "script tag stripped",
			input:    `<script>alert("x")</script>hi`,
			expected: "hi",
		},
		{
			name:     "markup removed, text kept",
			input:    "<b>bold</b> text",
			expected: "bold text",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   \n\t ",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Clean(tc.input))
		})
	}
}
