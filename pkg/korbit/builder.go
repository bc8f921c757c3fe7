package korbit

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/winhoho4/gokorbit/pkg/core"
)

// OrderBuilder provides a fluent interface for constructing an OrderRequest.
// It records the first decimal parse error and reports it on Build.
//
// Example:
//
//	order, err := korbit.NewOrder("btc").
//	    Buy().
//	    Limit().
//	    Price("50000000").
//	    Qty("0.001").
//	    Build()
type OrderBuilder struct {
	order OrderRequest
	err   error
}

// NewOrder starts a GTC limit buy for symbol.
func NewOrder(symbol string) *OrderBuilder {
	return &OrderBuilder{
		order: OrderRequest{
			Symbol:      symbol,
			Side:        core.SideBuy,
			Type:        core.TypeLimit,
			TimeInForce: core.GTC,
		},
	}
}

// Side sets the order side.
func (b *OrderBuilder) Side(side core.OrderSide) *OrderBuilder {
	b.order.Side = side
	return b
}

// Buy sets the side to buy.
func (b *OrderBuilder) Buy() *OrderBuilder {
	return b.Side(core.SideBuy)
}

// Sell sets the side to sell.
func (b *OrderBuilder) Sell() *OrderBuilder {
	return b.Side(core.SideSell)
}

// Type sets the order type.
func (b *OrderBuilder) Type(orderType core.OrderType) *OrderBuilder {
	b.order.Type = orderType
	return b
}

// Limit makes this a limit order. Its price is snapped to the tick table when placed.
func (b *OrderBuilder) Limit() *OrderBuilder {
	return b.Type(core.TypeLimit)
}

// Market makes this a market order.
func (b *OrderBuilder) Market() *OrderBuilder {
	return b.Type(core.TypeMarket)
}

// TimeInForce sets the time in force.
func (b *OrderBuilder) TimeInForce(tif core.TimeInForce) *OrderBuilder {
	b.order.TimeInForce = tif
	return b
}

// GTC keeps the order open until filled or canceled.
func (b *OrderBuilder) GTC() *OrderBuilder {
	return b.TimeInForce(core.GTC)
}

// IOC cancels whatever does not fill immediately.
func (b *OrderBuilder) IOC() *OrderBuilder {
	return b.TimeInForce(core.IOC)
}

// FOK fills the whole order immediately or cancels it.
func (b *OrderBuilder) FOK() *OrderBuilder {
	return b.TimeInForce(core.FOK)
}

// PostOnly rejects the order if it would take liquidity.
func (b *OrderBuilder) PostOnly() *OrderBuilder {
	return b.TimeInForce(core.PostOnly)
}

// Price sets the limit price from its string form.
func (b *OrderBuilder) Price(price string) *OrderBuilder {
	b.order.Price = b.parse("price", price)
	return b
}

// Qty sets the order quantity in the base currency.
func (b *OrderBuilder) Qty(qty string) *OrderBuilder {
	b.order.Qty = b.parse("qty", qty)
	return b
}

// Amount sets the order size in KRW, used by market orders.
func (b *OrderBuilder) Amount(amount string) *OrderBuilder {
	b.order.Amount = b.parse("amount", amount)
	return b
}

// ClientOrderID sets a caller-chosen id that can later be used with GetOrder.
func (b *OrderBuilder) ClientOrderID(id string) *OrderBuilder {
	b.order.ClientOrderID = id
	return b
}

// Build returns the constructed order or the first parse error.
func (b *OrderBuilder) Build() (OrderRequest, error) {
	if b.err != nil {
		return OrderRequest{}, b.err
	}
	return b.order, nil
}

func (b *OrderBuilder) parse(field, s string) *apd.Decimal {
	if b.err != nil {
		return nil
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		b.err = fmt.Errorf("parse %s: %w", field, err)
		return nil
	}
	return d
}
