package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MarketOptions configure the crypto market-data client.
type MarketOptions struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// MarketClient fetches spot prices from a CoinGecko compatible endpoint
// (GET {base}/simple/price?ids={asset}&vs_currencies={quote}). The endpoint
// requires no credentials.
type MarketClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewMarketClient creates a market-data client.
func NewMarketClient(optFns ...func(o *MarketOptions)) *MarketClient {
	opts := MarketOptions{
		BaseURL: "https://api.coingecko.com/api/v3",
		Timeout: 10 * time.Second,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &MarketClient{
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// SimplePrice returns the price of the asset (provider-specific identifier,
// e.g. "bitcoin") denominated in the quote currency. Quote codes are
// lower-cased on the wire. A missing asset or quote key in the response is
// an error, not a zero price.
func (c *MarketClient) SimplePrice(ctx context.Context, assetID, quote string) (float64, error) {
	quote = strings.ToLower(quote)

	q := url.Values{}
	q.Set("ids", assetID)
	q.Set("vs_currencies", quote)
	endpoint := fmt.Sprintf("%s/simple/price?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build price request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch price: %w", err)
	}
	defer resp.Body.Close()

	// Response shape: {"bitcoin": {"usd": 65000.12}}
	var body map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode price response: %w", err)
	}

	quotes, ok := body[assetID]
	if !ok {
		return 0, fmt.Errorf("no price data for %s", assetID)
	}
	price, ok := quotes[quote]
	if !ok {
		return 0, fmt.Errorf("no %s price for %s", quote, assetID)
	}

	return price, nil
}
