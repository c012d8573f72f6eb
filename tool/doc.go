// Package tool implements the rate tool set exposed to the language model:
// fiat pair rates, amount conversion, crypto spot rates and fiat-to-Bitcoin
// conversion.
//
// The four tools form a closed set (Kind) so dispatch is an exhaustive
// switch over typed argument structs rather than string comparison on open
// names. Every tool returns a formatted text result; provider failures are
// encoded as text beginning with the "Error" marker and never cross the tool
// boundary as Go errors, so the chat driver can feed them back to the model
// as conversational context.
package tool
