package tool

import (
	"strings"

	"github.com/rkuma18/currency-agent/model"
)

// Kind identifies one of the four rate tools. The set is closed; adding a
// tool means adding a constant, its argument struct, a schema in
// Definitions and a case in every switch.
type Kind int

const (
	// KindConversionFactor fetches the live fiat exchange rate for a pair.
	KindConversionFactor Kind = iota
	// KindConvert converts an amount between two fiat currencies.
	KindConvert
	// KindCryptoRate fetches a cryptocurrency spot rate.
	KindCryptoRate
	// KindFiatToBTC converts a fiat amount to Bitcoin.
	KindFiatToBTC
)

// Tool names as declared to the model.
const (
	NameConversionFactor = "get_conversion_factor"
	NameConvert          = "convert"
	NameCryptoRate       = "get_crypto_rate"
	NameFiatToBTC        = "convert_fiat_to_btc"
)

// String returns the declared tool name for the kind.
func (k Kind) String() string {
	switch k {
	case KindConversionFactor:
		return NameConversionFactor
	case KindConvert:
		return NameConvert
	case KindCryptoRate:
		return NameCryptoRate
	case KindFiatToBTC:
		return NameFiatToBTC
	default:
		return "unknown"
	}
}

// ParseKind maps a tool name from a model tool call request onto its Kind.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case NameConversionFactor:
		return KindConversionFactor, true
	case NameConvert:
		return KindConvert, true
	case NameCryptoRate:
		return KindCryptoRate, true
	case NameFiatToBTC:
		return KindFiatToBTC, true
	default:
		return 0, false
	}
}

// ConversionFactorArgs are the arguments for get_conversion_factor.
type ConversionFactorArgs struct {
	FromCurrency string `json:"from_currency"`
	ToCurrency   string `json:"to_currency"`
}

// ConvertArgs are the arguments for convert.
type ConvertArgs struct {
	Amount       float64 `json:"amount"`
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
}

// CryptoRateArgs are the arguments for get_crypto_rate.
type CryptoRateArgs struct {
	BaseCurrency   string `json:"base_currency"`
	TargetCurrency string `json:"target_currency"`
}

// FiatToBTCArgs are the arguments for convert_fiat_to_btc. BaseCurrency
// defaults to BTC when the model omits it.
type FiatToBTCArgs struct {
	Amount       float64 `json:"amount"`
	FiatCurrency string  `json:"fiat_currency"`
	BaseCurrency string  `json:"base_currency"`
}

func currencyProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

// Definitions returns the fixed tool schema declared to the model for all
// four tools, in Kind order.
func Definitions() []model.ToolDefinition {
	return []model.ToolDefinition{
		{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        NameConversionFactor,
				Description: "Get the conversion factor between two currencies.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"from_currency": currencyProp("Source currency code, e.g. USD"),
						"to_currency":   currencyProp("Target currency code, e.g. EUR"),
					},
					"required": []string{"from_currency", "to_currency"},
				},
			},
		},
		{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        NameConvert,
				Description: "Convert an amount from one currency to another.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"amount":        map[string]any{"type": "number", "description": "The amount to convert"},
						"from_currency": currencyProp("Source currency code, e.g. USD"),
						"to_currency":   currencyProp("Target currency code, e.g. EUR"),
					},
					"required": []string{"amount", "from_currency", "to_currency"},
				},
			},
		},
		{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        NameCryptoRate,
				Description: "Get the cryptocurrency exchange rate for a supported ticker symbol (" + strings.Join(SupportedCryptoSymbols(), ", ") + ").",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"base_currency":   currencyProp("Cryptocurrency ticker symbol, e.g. BTC"),
						"target_currency": currencyProp("Quote currency code, e.g. USD"),
					},
					"required": []string{"base_currency", "target_currency"},
				},
			},
		},
		{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        NameFiatToBTC,
				Description: "Convert a fiat currency amount to Bitcoin.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"amount":        map[string]any{"type": "number", "description": "The fiat amount to convert"},
						"fiat_currency": currencyProp("Fiat currency code, e.g. INR"),
						"base_currency": currencyProp("Target crypto symbol, defaults to BTC"),
					},
					"required": []string{"amount", "fiat_currency"},
				},
			},
		},
	}
}
