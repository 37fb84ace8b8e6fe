package llm

import (
	"context"
	"fmt"
)

// NewProvider builds the configured provider wrapped in retry
// middleware.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var (
		inner Provider
		err   error
	)

	switch cfg.Provider {
	case "anthropic":
		inner, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		inner, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		inner, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		inner = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return WithRetry(inner, cfg.Retry), nil
}
