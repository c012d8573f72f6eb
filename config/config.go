// Package config holds the explicit credential and endpoint configuration
// threaded through the module. Credentials are resolved once at load time and
// passed into constructors; nothing reads the process environment at call
// time, so rotating a key means building a new tool set or model.
package config

import (
	"fmt"
	"os"
	"time"
)

// Provider identifiers accepted by Config.Provider.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Default external endpoints. Overridable for tests and proxies.
const (
	DefaultFiatBaseURL   = "https://v6.exchangerate-api.com/v6"
	DefaultMarketBaseURL = "https://api.coingecko.com/api/v3"
	DefaultTimeout       = 10 * time.Second
)

// Config holds application configuration.
type Config struct {
	// Model provider
	Provider        string
	Model           string
	OpenAIAPIKey    string
	AnthropicAPIKey string

	// Rate providers
	ExchangeRateAPIKey string
	FiatBaseURL        string
	MarketBaseURL      string
	RequestTimeout     time.Duration
}

// Load reads configuration from environment variables. Callers that want
// .env support load it first (see cmd/currency-agent).
func Load() *Config {
	return &Config{
		Provider:        getEnv("CURRENCY_AGENT_PROVIDER", ProviderOpenAI),
		Model:           os.Getenv("CURRENCY_AGENT_MODEL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),

		ExchangeRateAPIKey: os.Getenv("EXCHANGE_RATE_API_KEY"),
		FiatBaseURL:        getEnv("EXCHANGE_RATE_BASE_URL", DefaultFiatBaseURL),
		MarketBaseURL:      getEnv("MARKET_DATA_BASE_URL", DefaultMarketBaseURL),
		RequestTimeout:     DefaultTimeout,
	}
}

// Validate reports missing credentials as configuration errors. A missing
// key is never silently defaulted.
func (c *Config) Validate() error {
	if c.ExchangeRateAPIKey == "" {
		return fmt.Errorf("exchange rate API key not provided (set EXCHANGE_RATE_API_KEY)")
	}
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OpenAI API key not provided (set OPENAI_API_KEY)")
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("Anthropic API key not provided (set ANTHROPIC_API_KEY)")
		}
	default:
		return fmt.Errorf("unknown model provider %q", c.Provider)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
