package korbit

import (
	"context"
	"strings"

	"github.com/winhoho4/gokorbit/pkg/core"
)

const defaultMyTradesLimit = 500

// GetMyTrades retrieves the account's recent fills for symbol.
// The limit defaults to 500; start and end times are sent as epoch milliseconds when set.
func (c *Client) GetMyTrades(ctx context.Context, symbol string, opts ...QueryOption) (any, error) {
	options := ApplyQueryOptions(defaultMyTradesLimit, opts...)

	params := core.NewParams().
		Set("symbol", NormalizeSymbol(symbol)).
		Set("limit", options.Limit)
	if options.StartTime != nil {
		params.Set("startTime", options.StartTime.UnixMilli())
	}
	if options.EndTime != nil {
		params.Set("endTime", options.EndTime.UnixMilli())
	}
	return c.Do(ctx, core.OpGetMyTrades, params)
}

// GetBalance retrieves account balances, optionally restricted to the given currencies.
func (c *Client) GetBalance(ctx context.Context, currencies ...string) (any, error) {
	params := core.NewParams()
	if len(currencies) > 0 {
		params.Set("currencies", strings.Join(currencies, ","))
	}
	return c.Do(ctx, core.OpGetBalance, params)
}
