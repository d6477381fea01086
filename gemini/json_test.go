package gemini_test

import (
	"testing"

	"github.com/awalter/quickwins/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain object",
			input: `{"top_5_quick_wins": []}`,
			want:  `{"top_5_quick_wins": []}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "object surrounded by prose",
			input: "Here you go:\n{\"a\": 1}\nHope that helps!",
			want:  `{"a": 1}`,
		},
		{
			name:  "nested braces",
			input: `prefix {"a": {"b": {"c": 1}}} suffix`,
			want:  `{"a": {"b": {"c": 1}}}`,
		},
		{
			name:  "braces inside string values",
			input: `{"note": "use {curly} braces", "n": 1}`,
			want:  `{"note": "use {curly} braces", "n": 1}`,
		},
		{
			name:  "escaped quotes inside strings",
			input: `{"note": "she said \"hi\"", "n": 1}`,
			want:  `{"note": "she said \"hi\"", "n": 1}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := gemini.ExtractJSON(tt.input)
			require.NotNil(t, raw)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}

func TestExtractJSON_Invalid(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"no json here at all",
		"{unclosed",
		`[1, 2, 3]`, // arrays are not a prioritization object
	}
	for _, input := range inputs {
		assert.Nil(t, gemini.ExtractJSON(input), input)
	}
}
