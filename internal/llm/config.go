package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the LLM backend.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single generation call including retries.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific settings.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI-specific settings. BaseURL allows pointing
// at OpenAI-compatible endpoints.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig holds Gemini-specific settings.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig controls backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with stock settings.
func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from SKILLFORGE_* environment variables,
// falling back to standard provider key variables (ANTHROPIC_API_KEY and
// friends) when the selected provider has no explicit key.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("SKILLFORGE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	cfg.Anthropic.APIKey = firstEnv("SKILLFORGE_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	if m := os.Getenv("SKILLFORGE_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	cfg.OpenAI.APIKey = firstEnv("SKILLFORGE_OPENAI_API_KEY", "OPENAI_API_KEY")
	if m := os.Getenv("SKILLFORGE_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("SKILLFORGE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	cfg.Gemini.APIKey = firstEnv("SKILLFORGE_GEMINI_API_KEY", "GEMINI_API_KEY")
	if m := os.Getenv("SKILLFORGE_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

// DiscoverConfig probes provider key env vars in priority order and
// returns a Config for the first one found.
func DiscoverConfig() (Config, bool) {
	cfg := ConfigFromEnv()

	switch {
	case cfg.Anthropic.APIKey != "":
		cfg.Provider = "anthropic"
	case cfg.OpenAI.APIKey != "":
		cfg.Provider = "openai"
	case cfg.Gemini.APIKey != "":
		cfg.Provider = "gemini"
	default:
		return Config{}, false
	}
	return cfg, true
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("an Anthropic API key is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("an OpenAI API key is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("a Gemini API key is required for the gemini provider")
		}
	case "mock":
		// No key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
