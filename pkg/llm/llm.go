package llm

import "context"

// Prompt is a single chat-completion request. Temperature and MaxTokens
// of zero leave the provider defaults in place.
type Prompt struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, p Prompt) (string, error)
}
