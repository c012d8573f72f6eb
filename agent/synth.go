package agent

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Style classifies the display string so a presentation layer can decorate
// it (monetary conversion, Bitcoin conversion, rate statement, plain text).
type Style int

const (
	// StylePlain marks free text: a model answer or an error/apology.
	StylePlain Style = iota
	// StyleMonetary marks a fiat money conversion result.
	StyleMonetary
	// StyleBitcoin marks a Bitcoin conversion result.
	StyleBitcoin
	// StyleRate marks a bare exchange rate statement.
	StyleRate
)

// String returns a stable identifier for the style.
func (s Style) String() string {
	switch s {
	case StyleMonetary:
		return "monetary"
	case StyleBitcoin:
		return "bitcoin"
	case StyleRate:
		return "rate"
	default:
		return "plain"
	}
}

// apologyResponse is rendered when an exchange produced neither a final
// model answer nor any usable tool value.
const apologyResponse = "I apologize, but I couldn't complete the conversion. " +
	"Please try again with a different format or check if the currencies are supported."

// Synthesize renders the single best user-facing message from an exchange
// record. Exactly one branch fires, chosen by strict priority: final
// response, direct conversion result, BTC equivalent, conversion rate
// (multiplied when the amount is known), crypto rate, apology.
func Synthesize(rec Record) (string, Style) {
	switch {
	case rec.FinalResponse != "":
		return rec.FinalResponse, StylePlain

	case rec.ConversionResult != nil:
		return fmt.Sprintf("%s %s = %.2f %s",
			amountText(rec.Amount), rec.FromCurrency, *rec.ConversionResult, rec.ToCurrency), StyleMonetary

	case rec.BTCEquivalent != nil:
		return fmt.Sprintf("%s %s = %.8f %s",
			amountText(rec.Amount), rec.FromCurrency, *rec.BTCEquivalent, rec.ToCurrency), StyleBitcoin

	case rec.ConversionRate != nil:
		if rec.Amount != nil {
			converted := (*rec.Amount) * (*rec.ConversionRate)
			return fmt.Sprintf("%s %s = %.2f %s",
				amountText(rec.Amount), rec.FromCurrency, converted, rec.ToCurrency), StyleMonetary
		}
		return fmt.Sprintf("Current exchange rate: 1 %s = %.4f %s",
			rec.FromCurrency, *rec.ConversionRate, rec.ToCurrency), StyleRate

	case rec.CryptoRate != nil:
		return fmt.Sprintf("Current exchange rate: 1 %s = %s %s",
			rec.FromCurrency, humanize.FormatFloat("#,###.##", *rec.CryptoRate), rec.ToCurrency), StyleRate

	default:
		return apologyResponse, StylePlain
	}
}

// amountText renders the recorded amount the shortest way that round-trips,
// so whole amounts print without a trailing ".0".
func amountText(amount *float64) string {
	if amount == nil {
		return "0"
	}
	return strconv.FormatFloat(*amount, 'f', -1, 64)
}
