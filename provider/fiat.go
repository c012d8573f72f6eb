package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// FiatOptions configure the fiat pair-rate client.
type FiatOptions struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// FiatClient fetches live fiat exchange rates from an ExchangeRate-API
// compatible endpoint (GET {base}/{key}/pair/{FROM}/{TO}).
type FiatClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewFiatClient creates a fiat rate client. The API key is required and held
// by the client; it is never read from ambient state at call time.
func NewFiatClient(apiKey string, optFns ...func(o *FiatOptions)) (*FiatClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("exchange rate API key not provided")
	}

	opts := FiatOptions{
		BaseURL: "https://v6.exchangerate-api.com/v6",
		Timeout: 10 * time.Second,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &FiatClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// pairResponse mirrors the provider's JSON payload. The discriminator is the
// "result" field; failures carry an "error-type" string.
type pairResponse struct {
	Result         string  `json:"result"`
	ConversionRate float64 `json:"conversion_rate"`
	ErrorType      string  `json:"error-type"`
}

// PairRate fetches the live exchange rate for the ordered currency pair.
// Currency codes are upper-cased before the request.
func (c *FiatClient) PairRate(ctx context.Context, from, to string) (float64, error) {
	url := fmt.Sprintf("%s/%s/pair/%s/%s", c.baseURL, c.apiKey, strings.ToUpper(from), strings.ToUpper(to))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build pair rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch pair rate: %w", err)
	}
	defer resp.Body.Close()

	var body pairResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode pair rate response: %w", err)
	}

	if body.Result != "success" {
		if body.ErrorType == "" {
			body.ErrorType = "Unknown error"
		}
		return 0, fmt.Errorf("%s", body.ErrorType)
	}

	return body.ConversionRate, nil
}
