// Command currency-agent is an interactive conversational currency and
// cryptocurrency converter. It reads requests from stdin, drives a
// tool-calling language model against live rate providers and prints the
// rendered result.
//
// Required environment (a .env file is honored): EXCHANGE_RATE_API_KEY plus
// OPENAI_API_KEY or ANTHROPIC_API_KEY depending on CURRENCY_AGENT_PROVIDER.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/joho/godotenv"

	"github.com/rkuma18/currency-agent/agent"
	"github.com/rkuma18/currency-agent/config"
	"github.com/rkuma18/currency-agent/logging"
	"github.com/rkuma18/currency-agent/model"
	anthropicmodel "github.com/rkuma18/currency-agent/model/anthropic"
	openaimodel "github.com/rkuma18/currency-agent/model/openai"
	"github.com/rkuma18/currency-agent/provider"
	"github.com/rkuma18/currency-agent/tool"
)

// exchangeTimeout bounds one full exchange, including the model calls the
// rate providers' own 10s timeouts do not cover.
const exchangeTimeout = 60 * time.Second

func main() {
	_ = godotenv.Load() // optional for local development

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text")

	llm, err := newModel(cfg)
	if err != nil {
		log.Fatalf("model setup failed: %v", err)
	}

	fiat, err := provider.NewFiatClient(cfg.ExchangeRateAPIKey,
		func(o *provider.FiatOptions) {
			o.BaseURL = cfg.FiatBaseURL
			o.Timeout = cfg.RequestTimeout
		})
	if err != nil {
		log.Fatalf("rate provider setup failed: %v", err)
	}
	market := provider.NewMarketClient(func(o *provider.MarketOptions) {
		o.BaseURL = cfg.MarketBaseURL
		o.Timeout = cfg.RequestTimeout
	})

	tools := tool.NewSet(fiat, market, func(o *tool.SetOptions) {
		o.Logger = logging.WithComponent(logger, "tool")
	})
	driver := agent.NewDriver(llm, tools, func(o *agent.DriverOptions) {
		o.Logger = logging.WithComponent(logger, "driver")
	})

	fmt.Println("Currency converter ready. Ask things like \"convert 100 USD to EUR\" or \"500 EUR in BTC\". Ctrl-D to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), exchangeTimeout)
		out := driver.Run(ctx, text)
		cancel()

		fmt.Println(decorate(out))
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("stdin error: %v", err)
	}
}

// newModel builds the configured language model from explicit credentials.
func newModel(cfg *config.Config) (model.Model, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return anthropicmodel.NewModel(cfg.AnthropicAPIKey, func(o *anthropicmodel.Options) {
			if cfg.Model != "" {
				o.Model = anthropic.Model(cfg.Model)
			}
		})
	default:
		return openaimodel.NewModel(cfg.OpenAIAPIKey, func(o *openaimodel.Options) {
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
		})
	}
}

// decorate prefixes the display string according to its style.
func decorate(out agent.Outcome) string {
	switch out.Style {
	case agent.StyleMonetary:
		return "💰 " + out.Text
	case agent.StyleBitcoin:
		return "₿ " + out.Text
	case agent.StyleRate:
		return "📊 " + out.Text
	default:
		return out.Text
	}
}
