package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedCmd string
		expectedArg string
		expectedOK  bool
	}{
		{name: "plain command", input: "/start", expectedCmd: "start", expectedOK: true},
		{name: "with argument", input: "/ask come stai?", expectedCmd: "ask", expectedArg: "come stai?", expectedOK: true},
		{name: "bot suffix", input: "/help@italiano_bot", expectedCmd: "help", expectedOK: true},
		{name: "bot suffix and argument", input: "/ask@italiano_bot  ciao ", expectedCmd: "ask", expectedArg: "ciao", expectedOK: true},
		{name: "newline separator", input: "/ask\nwhat is prego", expectedCmd: "ask", expectedArg: "what is prego", expectedOK: true},
		{name: "case kept", input: "/Start", expectedCmd: "Start", expectedOK: true},
		{name: "plain text", input: "ciao", expectedOK: false},
		{name: "slash later", input: "ciao /start", expectedOK: false},
		{name: "empty", input: "", expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, arg, ok := parseCommand(tt.input)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedCmd, cmd)
			assert.Equal(t, tt.expectedArg, arg)
		})
	}
}
