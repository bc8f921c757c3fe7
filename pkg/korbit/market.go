package korbit

import (
	"context"

	"github.com/winhoho4/gokorbit/pkg/core"
)

const defaultTradesLimit = 100

// GetTicker retrieves the current ticker for symbol.
func (c *Client) GetTicker(ctx context.Context, symbol string) (any, error) {
	params := core.NewParams().
		Set("symbol", NormalizeSymbol(symbol))
	return c.Do(ctx, core.OpGetTicker, params)
}

// GetRecentTrades retrieves the latest public trades for symbol. The limit defaults to 100.
func (c *Client) GetRecentTrades(ctx context.Context, symbol string, opts ...QueryOption) (any, error) {
	options := ApplyQueryOptions(defaultTradesLimit, opts...)

	params := core.NewParams().
		Set("symbol", NormalizeSymbol(symbol)).
		Set("limit", options.Limit)
	return c.Do(ctx, core.OpGetTrades, params)
}
