package gateway

import (
	"context"
	"fmt"

	"github.com/priyankac/axon/internal/store"
)

// NewClient creates a Client from configuration, wrapped with event
// logging when a repo is provided. Retry is not applied here: the
// query pipeline owns the attempt budget.
func NewClient(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Client, error) {
	var base Client
	var err error

	switch cfg.Client {
	case "gateway":
		base, err = NewHTTPClient(cfg.Gateway)
	case "openai":
		base, err = NewOpenAIClient(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicClient(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiClient(ctx, cfg.Gemini)
	case "mock":
		base = NewMockClient()
	default:
		return nil, fmt.Errorf("unknown answering client: %q", cfg.Client)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s client: %w", cfg.Client, err)
	}

	if eventRepo != nil {
		base = WithEventLog(base, eventRepo)
	}

	return base, nil
}
