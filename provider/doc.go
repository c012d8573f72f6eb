// Package provider contains thin HTTP clients for the external rate data
// sources: a fiat pair-rate provider (ExchangeRate-API compatible) and a
// crypto market-data provider (CoinGecko compatible). Both clients are
// stateless, hold their credentials explicitly and bound every round trip
// with the configured client timeout. Network and decode failures surface as
// ordinary errors; callers encode them into conversational text.
package provider
