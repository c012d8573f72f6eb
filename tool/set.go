package tool

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rkuma18/currency-agent/logging"
	"github.com/rkuma18/currency-agent/provider"
)

// ErrorMarker prefixes every failure encoded in a tool result text.
const ErrorMarker = "Error"

// IsError reports whether a tool result text encodes a failure.
func IsError(text string) bool { return strings.HasPrefix(text, ErrorMarker) }

// cryptoIDs maps supported ticker symbols to market-data provider asset
// identifiers.
var cryptoIDs = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"LTC":   "litecoin",
	"BCH":   "bitcoin-cash",
	"ADA":   "cardano",
	"DOT":   "polkadot",
	"LINK":  "chainlink",
	"XRP":   "ripple",
	"USDT":  "tether",
	"USDC":  "usd-coin",
	"BNB":   "binancecoin",
	"SOL":   "solana",
	"MATIC": "matic-network",
	"AVAX":  "avalanche-2",
}

// SupportedCryptoSymbols returns the supported ticker symbols in sorted order.
func SupportedCryptoSymbols() []string {
	symbols := make([]string, 0, len(cryptoIDs))
	for s := range cryptoIDs {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// SetOptions configure a tool Set.
type SetOptions struct {
	Logger logging.Logger
}

// Set holds the four rate tools bound to their provider clients. A Set is
// stateless across invocations; credentials live inside the clients, so
// rotation means constructing a new Set.
type Set struct {
	fiat   *provider.FiatClient
	market *provider.MarketClient
	logger logging.Logger
}

// NewSet binds the rate tools to the given provider clients.
func NewSet(fiat *provider.FiatClient, market *provider.MarketClient, optFns ...func(o *SetOptions)) *Set {
	opts := SetOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Set{
		fiat:   fiat,
		market: market,
		logger: logging.OrNoOp(opts.Logger),
	}
}

// GetConversionFactor fetches the live exchange rate for the ordered fiat
// pair. Success: "1 {FROM} = {rate} {TO}".
func (s *Set) GetConversionFactor(ctx context.Context, args ConversionFactorArgs) string {
	start := time.Now()
	from := strings.ToUpper(args.FromCurrency)
	to := strings.ToUpper(args.ToCurrency)

	rate, err := s.fiat.PairRate(ctx, from, to)
	if err != nil {
		return s.failure(NameConversionFactor, err)
	}

	s.success(NameConversionFactor, start)
	return fmt.Sprintf("1 %s = %s %s", from, formatAmount(rate), to)
}

// Convert fetches the pair rate and multiplies by the amount.
// Success: "{amount} {FROM} = {result:.2f} {TO}".
func (s *Set) Convert(ctx context.Context, args ConvertArgs) string {
	start := time.Now()
	from := strings.ToUpper(args.FromCurrency)
	to := strings.ToUpper(args.ToCurrency)

	rate, err := s.fiat.PairRate(ctx, from, to)
	if err != nil {
		return s.failure(NameConvert, err)
	}

	s.success(NameConvert, start)
	return fmt.Sprintf("%s %s = %.2f %s", formatAmount(args.Amount), from, args.Amount*rate, to)
}

// GetCryptoRate fetches the spot price of a supported crypto asset in the
// target currency. Success: "1 {BASE} = {rate with thousands separator, 2
// decimals} {TARGET}". An unsupported symbol returns an error text listing
// the supported ones.
func (s *Set) GetCryptoRate(ctx context.Context, args CryptoRateArgs) string {
	start := time.Now()
	base := strings.ToUpper(args.BaseCurrency)
	target := strings.ToUpper(args.TargetCurrency)

	assetID, ok := cryptoIDs[base]
	if !ok {
		return fmt.Sprintf("Error: Cryptocurrency %s not supported. Supported: %s",
			args.BaseCurrency, strings.Join(SupportedCryptoSymbols(), ", "))
	}

	rate, err := s.market.SimplePrice(ctx, assetID, target)
	if err != nil {
		s.failure(NameCryptoRate, err)
		return fmt.Sprintf("Error: Could not fetch rate for %s to %s", base, target)
	}

	s.success(NameCryptoRate, start)
	return fmt.Sprintf("1 %s = %s %s", base, humanize.FormatFloat("#,###.##", rate), target)
}

// ConvertFiatToBTC converts a fiat amount to Bitcoin: non-USD amounts are
// first converted to USD (any provider error propagates immediately), then
// divided by the BTC/USD price. Success: "{amount} {FIAT} = {btc:.8f} BTC".
func (s *Set) ConvertFiatToBTC(ctx context.Context, args FiatToBTCArgs) string {
	start := time.Now()
	fiat := strings.ToUpper(args.FiatCurrency)

	usdAmount := args.Amount
	if fiat != "USD" {
		rate, err := s.fiat.PairRate(ctx, fiat, "USD")
		if err != nil {
			return s.failure(NameFiatToBTC, err)
		}
		usdAmount = args.Amount * rate
	}

	btcPrice, err := s.market.SimplePrice(ctx, "bitcoin", "USD")
	if err != nil {
		s.failure(NameFiatToBTC, err)
		return "Error: Could not fetch Bitcoin price"
	}

	s.success(NameFiatToBTC, start)
	return fmt.Sprintf("%s %s = %.8f BTC", formatAmount(args.Amount), fiat, usdAmount/btcPrice)
}

// failure logs a provider fault and encodes it as result text.
func (s *Set) failure(name string, err error) string {
	s.logger.Warn("tool.call.provider_error", "tool", name, "error", err.Error())
	return fmt.Sprintf("Error: %v", err)
}

func (s *Set) success(name string, start time.Time) {
	s.logger.Info("tool.call.success", "tool", name, "duration_ms", time.Since(start).Milliseconds())
}

// formatAmount renders a float the shortest way that round-trips, so whole
// amounts print without a trailing ".0".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
