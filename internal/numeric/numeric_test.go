package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		found bool
	}{
		{"pair rate with thousands separator", "1 USD = 1,234.56 EUR", 1234.56, true},
		{"conversion result", "100 USD = 92.00 EUR", 92.00, true},
		{"btc amount", "1000 INR = 0.00018462 BTC", 0.00018462, true},
		{"crypto rate", "1 BTC = 65,000.12 USD", 65000.12, true},
		{"bare number", "0.92", 0.92, true},
		{"backticked number", "`1,500.25`", 1500.25, true},
		{"padded number", "  42  ", 42, true},
		{"no digits", "Error: invalid code", 0, false},
		{"empty", "", 0, false},
		{"only punctuation", "...", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.input)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
