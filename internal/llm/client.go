package llm

import "context"

// Client is the interface all completion providers implement. The model
// is treated as an opaque text-completion service: one prompt in, raw
// text out.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest carries one prompt to the provider.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float64
}

// Config holds configuration for a completion client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}
