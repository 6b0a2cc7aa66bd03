package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures one provider.
type Config struct {
	// Provider is one of the Provider* names. Empty means "discover from
	// the standard API key variables".
	Provider string

	// Model is a friendly name or a raw model ID. Empty selects the
	// provider default.
	Model string

	APIKey string

	// BaseURL overrides the API endpoint (OpenAI-compatible providers).
	BaseURL string

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration

	Retry RetryConfig
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

var defaultModels = map[string]string{
	ProviderAnthropic:  "claude-haiku",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderGemini:     "gemini-flash",
	ProviderOpenRouter: "google/gemini-2.0-flash-001",
	ProviderMock:       "mock",
}

// keyEnv lists the standard API key variable per provider, in discovery
// order.
var keyEnv = []struct {
	provider string
	env      string
}{
	{ProviderAnthropic, "ANTHROPIC_API_KEY"},
	{ProviderOpenAI, "OPENAI_API_KEY"},
	{ProviderGemini, "GEMINI_API_KEY"},
	{ProviderOpenRouter, "OPENROUTER_API_KEY"},
}

// DefaultRetry returns the retry policy used when none is configured.
func DefaultRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}
}

// Resolve fills unset fields: the provider and key from the standard API
// key variables, the model from the provider default, and the retry policy
// and timeout from their defaults. It reports false when no provider could
// be determined.
func (c Config) Resolve() (Config, bool) {
	if c.Provider == "" {
		for _, k := range keyEnv {
			if v := os.Getenv(k.env); v != "" {
				c.Provider = k.provider
				if c.APIKey == "" {
					c.APIKey = v
				}
				break
			}
		}
	}
	if c.Provider == "" {
		return c, false
	}

	if c.APIKey == "" {
		for _, k := range keyEnv {
			if k.provider == c.Provider {
				c.APIKey = os.Getenv(k.env)
			}
		}
	}
	if c.Model == "" {
		c.Model = defaultModels[c.Provider]
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry = DefaultRetry()
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	return c, true
}

// Validate checks that the provider is known and has an API key.
func (c Config) Validate() error {
	if _, ok := defaultModels[c.Provider]; !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Provider != ProviderMock && c.APIKey == "" {
		return fmt.Errorf("an API key is required for the %s provider (set llm.api_key or MAI_LLM_API_KEY)", c.Provider)
	}
	return nil
}

// Providers returns the provider names a user can configure.
func Providers() []string {
	return []string{ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter}
}
