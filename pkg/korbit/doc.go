// Package korbit implements a client for the Korbit v2 REST trading API.
// It signs every request with a millisecond timestamp and an HMAC-SHA256 signature,
// normalizes trading-pair symbols and snaps limit prices to the exchange tick table.
//
// The package includes:
//   - Client: signed request dispatch and the trading operations
//   - OrderBuilder: fluent construction of OrderRequest values
//   - AdjustPrice, NormalizeSymbol, Sign: the pure helpers the client is built on
//
// Example usage:
//
//	client, err := korbit.New(core.DefaultConfig(&core.Credentials{APIKey: key, SecretKey: secret}))
//	ticker, err := client.GetTicker(ctx, "BTC")
package korbit
