package core

// Operation represents an endpoint call that can be performed on the exchange.
type Operation int

// Operation constants define all supported exchange operations.
const (
	// OpGetTicker retrieves current market ticker data for a symbol.
	OpGetTicker Operation = iota
	// OpPlaceOrder submits a new order.
	OpPlaceOrder
	// OpCancelOrder cancels an existing order.
	OpCancelOrder
	// OpGetOrder retrieves details of a specific order.
	OpGetOrder
	// OpGetOpenOrders retrieves open orders for a symbol.
	OpGetOpenOrders
	// OpGetTrades retrieves recent public trades for a symbol.
	OpGetTrades
	// OpGetMyTrades retrieves the account's own recent fills.
	OpGetMyTrades
	// OpGetBalance retrieves account balance information.
	OpGetBalance
)

// String returns the string representation of the operation.
func (o Operation) String() string {
	if o < OpGetTicker || o > OpGetBalance {
		return "UNKNOWN"
	}
	return [...]string{
		"GET_TICKER",
		"PLACE_ORDER",
		"CANCEL_ORDER",
		"GET_ORDER",
		"GET_OPEN_ORDERS",
		"GET_TRADES",
		"GET_MY_TRADES",
		"GET_BALANCE",
	}[o]
}
