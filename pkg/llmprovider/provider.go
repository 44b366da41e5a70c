package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// Complete sends a chat-completion request and returns the raw response body.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "qwen", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized chat-completion request
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	// MaxTokens of zero leaves the provider default.
	MaxTokens int
	// JSONMode asks for a JSON object reply where the provider supports it.
	JSONMode bool
}

// Message represents a conversation message
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// Response is a successful (2xx) chat-completion exchange.
// Body is the envelope exactly as received.
type Response struct {
	Body         []byte
	ProviderName string
	ModelName    string
	Usage        Usage
}

// Usage tracks token consumption as reported in the envelope
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
