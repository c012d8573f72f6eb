package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesize_FinalResponseWinsOverEverything(t *testing.T) {
	rec := Record{
		FinalResponse:    "All done.",
		ConversionResult: floatPtr(92),
		BTCEquivalent:    floatPtr(0.1),
		ConversionRate:   floatPtr(0.92),
		CryptoRate:       floatPtr(65000),
		Amount:           floatPtr(100),
		FromCurrency:     "USD",
		ToCurrency:       "EUR",
	}
	text, style := Synthesize(rec)
	assert.Equal(t, "All done.", text)
	assert.Equal(t, StylePlain, style)
}

func TestSynthesize_ConversionResult(t *testing.T) {
	rec := Record{
		ConversionResult: floatPtr(92),
		Amount:           floatPtr(100),
		FromCurrency:     "USD",
		ToCurrency:       "EUR",
	}
	text, style := Synthesize(rec)
	assert.Equal(t, "100 USD = 92.00 EUR", text)
	assert.Equal(t, StyleMonetary, style)
}

func TestSynthesize_BTCEquivalent(t *testing.T) {
	rec := Record{
		BTCEquivalent: floatPtr(0.00018462),
		Amount:        floatPtr(1000),
		FromCurrency:  "INR",
		ToCurrency:    "BTC",
	}
	text, style := Synthesize(rec)
	assert.Equal(t, "1000 INR = 0.00018462 BTC", text)
	assert.Equal(t, StyleBitcoin, style)
}

func TestSynthesize_RateWithKnownAmountMultiplies(t *testing.T) {
	rec := Record{
		ConversionRate: floatPtr(0.92),
		Amount:         floatPtr(50),
		FromCurrency:   "USD",
		ToCurrency:     "EUR",
	}
	text, style := Synthesize(rec)
	assert.Equal(t, "50 USD = 46.00 EUR", text)
	assert.Equal(t, StyleMonetary, style)
}

func TestSynthesize_BareRate(t *testing.T) {
	rec := Record{
		ConversionRate: floatPtr(0.92),
		FromCurrency:   "USD",
		ToCurrency:     "EUR",
	}
	text, style := Synthesize(rec)
	assert.Equal(t, "Current exchange rate: 1 USD = 0.9200 EUR", text)
	assert.Equal(t, StyleRate, style)
}

func TestSynthesize_CryptoRate(t *testing.T) {
	rec := Record{
		CryptoRate:   floatPtr(65000.1234),
		FromCurrency: "BTC",
		ToCurrency:   "USD",
	}
	text, style := Synthesize(rec)
	assert.Equal(t, "Current exchange rate: 1 BTC = 65,000.12 USD", text)
	assert.Equal(t, StyleRate, style)
}

func TestSynthesize_Apology(t *testing.T) {
	text, style := Synthesize(Record{})
	assert.Equal(t, apologyResponse, text)
	assert.Equal(t, StylePlain, style)
}
