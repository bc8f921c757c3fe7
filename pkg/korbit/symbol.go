package korbit

import "strings"

const quoteSuffix = "_krw"

// NormalizeSymbol lowercases symbol and appends the KRW quote suffix when missing.
// No validation is done; unknown pairs are rejected by the exchange.
func NormalizeSymbol(symbol string) string {
	symbol = strings.ToLower(symbol)
	if !strings.HasSuffix(symbol, quoteSuffix) {
		symbol += quoteSuffix
	}
	return symbol
}
