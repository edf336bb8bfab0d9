package llm

import (
	"context"
	"fmt"

	"github.com/thekasyap/thinkbot/internal/config"
)

// NewProvider creates a Provider from configuration, wrapped with retry.
func NewProvider(ctx context.Context, cfg config.Config) (Provider, error) {
	var base Provider
	var err error

	switch cfg.LLMProvider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.GeminiKey, cfg.GeminiModel)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBase)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.LLMProvider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.LLMProvider, err)
	}
	return WithRetry(base, DefaultRetryConfig()), nil
}
