package assistant

import "context"

// Provider is a chat completion backend
type Provider interface {
	// Complete sends the request and returns the generated text.
	Complete(ctx context.Context, req Request) (string, error)

	// ModelID returns the model the provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model
type Request struct {
	// System sets the model's persona and constraints.
	System string

	// Messages is the conversation, oldest first.
	Messages []Message

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0.
	Temperature float64
}

// Message is one conversation entry
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)
