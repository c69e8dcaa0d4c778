package llm

import (
	"fmt"
	"strings"

	"github.com/AlekhyaVemuri/FinClarify/internal/common"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// NewClient creates a completion client based on the provided
// configuration. Groq exposes an OpenAI-compatible API, so it shares the
// OpenAI client with a different base URL.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIClient(cfg)
	case "groq":
		if cfg.BaseURL == "" {
			cfg.BaseURL = groqBaseURL
		}
		if cfg.Model == "" {
			cfg.Model = "openai/gpt-oss-120b"
		}
		return newOpenAIClient(cfg)
	case "anthropic":
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider %q", common.ErrInvalidConfig, cfg.Provider)
	}
}
