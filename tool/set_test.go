package tool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkuma18/currency-agent/provider"
)

// stubProviders spins up a fake fiat + market backend and returns a Set
// wired against it. Pair rates are keyed "FROM/TO"; prices "asset/quote".
func stubProviders(t *testing.T, pairRates map[string]string, prices map[string]string) *Set {
	t.Helper()

	fiatSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Path: /{key}/pair/{FROM}/{TO}
		for key, body := range pairRates {
			if r.URL.Path == "/k/pair/"+key {
				w.Write([]byte(body))
				return
			}
		}
		w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
	}))
	t.Cleanup(fiatSrv.Close)

	marketSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("ids") + "/" + r.URL.Query().Get("vs_currencies")
		if body, ok := prices[key]; ok {
			w.Write([]byte(body))
			return
		}
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(marketSrv.Close)

	fiat, err := provider.NewFiatClient("k", func(o *provider.FiatOptions) { o.BaseURL = fiatSrv.URL })
	require.NoError(t, err)
	market := provider.NewMarketClient(func(o *provider.MarketOptions) { o.BaseURL = marketSrv.URL })

	return NewSet(fiat, market)
}

func TestGetConversionFactor(t *testing.T) {
	set := stubProviders(t, map[string]string{
		"USD/EUR": `{"result":"success","conversion_rate":0.92}`,
	}, nil)

	got := set.GetConversionFactor(context.Background(), ConversionFactorArgs{FromCurrency: "usd", ToCurrency: "eur"})
	assert.Equal(t, "1 USD = 0.92 EUR", got)

	got = set.GetConversionFactor(context.Background(), ConversionFactorArgs{FromCurrency: "USD", ToCurrency: "XXX"})
	assert.True(t, IsError(got))
	assert.Contains(t, got, "unsupported-code")
}

func TestConvert(t *testing.T) {
	set := stubProviders(t, map[string]string{
		"USD/EUR": `{"result":"success","conversion_rate":0.92}`,
	}, nil)

	got := set.Convert(context.Background(), ConvertArgs{Amount: 100, FromCurrency: "USD", ToCurrency: "EUR"})
	assert.Equal(t, "100 USD = 92.00 EUR", got)

	got = set.Convert(context.Background(), ConvertArgs{Amount: 100, FromCurrency: "USD", ToCurrency: "XXX"})
	assert.True(t, IsError(got))
}

func TestGetCryptoRate(t *testing.T) {
	set := stubProviders(t, nil, map[string]string{
		"bitcoin/usd": `{"bitcoin":{"usd":65000.1234}}`,
	})

	got := set.GetCryptoRate(context.Background(), CryptoRateArgs{BaseCurrency: "BTC", TargetCurrency: "USD"})
	assert.Equal(t, "1 BTC = 65,000.12 USD", got)
}

func TestGetCryptoRate_UnsupportedSymbol(t *testing.T) {
	set := stubProviders(t, nil, nil)

	got := set.GetCryptoRate(context.Background(), CryptoRateArgs{BaseCurrency: "XYZ", TargetCurrency: "USD"})
	assert.True(t, IsError(got))
	assert.Contains(t, got, "not supported")
	for _, symbol := range SupportedCryptoSymbols() {
		assert.Contains(t, got, symbol)
	}
}

func TestGetCryptoRate_MissingPrice(t *testing.T) {
	set := stubProviders(t, nil, nil)

	got := set.GetCryptoRate(context.Background(), CryptoRateArgs{BaseCurrency: "ETH", TargetCurrency: "USD"})
	assert.Equal(t, "Error: Could not fetch rate for ETH to USD", got)
}

func TestConvertFiatToBTC(t *testing.T) {
	set := stubProviders(t, map[string]string{
		"INR/USD": `{"result":"success","conversion_rate":0.012}`,
	}, map[string]string{
		"bitcoin/usd": `{"bitcoin":{"usd":65000}}`,
	})

	// 1000 * 0.012 / 65000
	got := set.ConvertFiatToBTC(context.Background(), FiatToBTCArgs{Amount: 1000, FiatCurrency: "INR", BaseCurrency: "BTC"})
	assert.Equal(t, "1000 INR = 0.00018462 BTC", got)
}

func TestConvertFiatToBTC_USDSkipsPairLookup(t *testing.T) {
	set := stubProviders(t, nil, map[string]string{
		"bitcoin/usd": `{"bitcoin":{"usd":50000}}`,
	})

	got := set.ConvertFiatToBTC(context.Background(), FiatToBTCArgs{Amount: 500, FiatCurrency: "usd"})
	assert.Equal(t, "500 USD = 0.01000000 BTC", got)
}

func TestConvertFiatToBTC_PairErrorPropagates(t *testing.T) {
	set := stubProviders(t, nil, map[string]string{
		"bitcoin/usd": `{"bitcoin":{"usd":50000}}`,
	})

	got := set.ConvertFiatToBTC(context.Background(), FiatToBTCArgs{Amount: 1, FiatCurrency: "ZZZ"})
	assert.True(t, IsError(got))
	assert.Contains(t, got, "unsupported-code")
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindConversionFactor, KindConvert, KindCryptoRate, KindFiatToBTC} {
		parsed, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	_, ok := ParseKind("transfer_money")
	assert.False(t, ok)
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 4)
	names := make([]string, 0, len(defs))
	for _, d := range defs {
		assert.Equal(t, "function", d.Type)
		assert.NotEmpty(t, d.Function.Description)
		assert.NotNil(t, d.Function.Parameters["properties"])
		names = append(names, d.Function.Name)
	}
	assert.Equal(t, []string{NameConversionFactor, NameConvert, NameCryptoRate, NameFiatToBTC}, names)
}
