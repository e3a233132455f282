package llm

import (
	"context"
	"fmt"

	"github.com/ankitn/skillforge/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event-logging middleware (caller → retry → logging → base).
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, eventRepo), cfg.Retry), nil
}

// NewProviderFromEnv discovers provider configuration from the
// environment and builds a Provider, or errors when no API key is set.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg, ok := DiscoverConfig()
	if !ok {
		return nil, fmt.Errorf("no LLM API key found in environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo)
}

// resolveModel maps a friendly model name through the provider's alias
// table, passing unknown names through as direct model IDs.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
