package agent

// Record accumulates the structured results of one exchange. It is created
// fresh per exchange, written by the driver as tool results arrive, read
// once by the synthesizer and then discarded. Later tool calls overwrite
// earlier values (last write wins), mirroring the single-slot fields.
type Record struct {
	ConversionRate   *float64 `json:"conversion_rate,omitempty"`
	CryptoRate       *float64 `json:"crypto_rate,omitempty"`
	BTCEquivalent    *float64 `json:"btc_equivalent,omitempty"`
	ConversionResult *float64 `json:"conversion_result,omitempty"`
	FromCurrency     string   `json:"from_currency,omitempty"`
	ToCurrency       string   `json:"to_currency,omitempty"`
	Amount           *float64 `json:"amount,omitempty"`
	FinalResponse    string   `json:"final_response,omitempty"`
}

func floatPtr(v float64) *float64 { return &v }
