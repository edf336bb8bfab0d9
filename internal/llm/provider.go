package llm

import "context"

// Provider is the abstraction over the text-generation backend that
// phrases student feedback and, best-effort, tops up the question bank.
type Provider interface {
	// Generate sends the conversation and returns the model's text reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send. Single-turn generation is the common
// case here, so Messages usually holds one user message.
type Request struct {
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the generated text.
type Response struct {
	Text  string
	Model string
}
