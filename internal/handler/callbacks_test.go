package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "vocab_colors",
			expected: "vocab_colors",
		},
		{
			name:     "string with whitespace",
			input:    "  vocab_colors  ",
			expected: "vocab_colors",
		},
		{
			name:     "string with newline",
			input:    "quiz_\nnumbers",
			expected: "quiz_numbers",
		},
		{
			name:     "string with tab",
			input:    "quiz_\tnumbers",
			expected: "quiz_numbers",
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
		{
			name:     "callback prefix",
			input:    "\fvocab_greetings",
			expected: "vocab_greetings",
		},
		{
			name:     "string with unprintable characters",
			input:    "vocab_\x00food\x01",
			expected: "vocab_food",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCallbackPayload(t *testing.T) {
	tests := []struct {
		name     string
		callback *tele.Callback
		expected string
	}{
		{
			name:     "unique set",
			callback: &tele.Callback{Unique: "vocab_colors"},
			expected: "vocab_colors",
		},
		{
			name:     "raw data only",
			callback: &tele.Callback{Data: "\fquiz_numbers"},
			expected: "quiz_numbers",
		},
		{
			name:     "empty",
			callback: &tele.Callback{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, callbackPayload(tt.callback))
		})
	}
}
