package korbit

import (
	"context"
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/winhoho4/gokorbit/pkg/core"
)

const defaultOpenOrdersLimit = 10

// OrderRequest describes an order to place. Nil decimals and empty ids are omitted.
// The zero value is a GTC limit buy.
type OrderRequest struct {
	Symbol        string
	Side          core.OrderSide
	Type          core.OrderType
	TimeInForce   core.TimeInForce
	Price         *apd.Decimal
	Qty           *apd.Decimal
	Amount        *apd.Decimal
	ClientOrderID string
}

// OrderLookup identifies an order by exchange id, client id, or both.
type OrderLookup struct {
	OrderID       string
	ClientOrderID string
}

// PlaceOrder submits order. Limit prices are snapped to the tick table first.
func (c *Client) PlaceOrder(ctx context.Context, order OrderRequest) (any, error) {
	price := order.Price
	if order.Type == core.TypeLimit && price != nil {
		adjusted, err := AdjustPrice(price)
		if err != nil {
			return nil, fmt.Errorf("adjust price: %w", err)
		}
		price = adjusted
	}

	params := core.NewParams().
		Set("symbol", NormalizeSymbol(order.Symbol)).
		Set("side", order.Side).
		Set("orderType", order.Type).
		Set("timeInForce", order.TimeInForce)
	if price != nil {
		params.Set("price", price)
	}
	if order.Qty != nil {
		params.Set("qty", order.Qty)
	}
	if order.Amount != nil {
		params.Set("amount", order.Amount)
	}
	if order.ClientOrderID != "" {
		params.Set("clientOrderId", order.ClientOrderID)
	}
	return c.Do(ctx, core.OpPlaceOrder, params)
}

// CancelOrder cancels the order with the given exchange id.
func (c *Client) CancelOrder(ctx context.Context, symbol, orderID string) (any, error) {
	params := core.NewParams().
		Set("symbol", NormalizeSymbol(symbol)).
		Set("orderId", orderID)
	return c.Do(ctx, core.OpCancelOrder, params)
}

// GetOrder retrieves a single order.
func (c *Client) GetOrder(ctx context.Context, symbol string, lookup OrderLookup) (any, error) {
	params := core.NewParams().
		Set("symbol", NormalizeSymbol(symbol))
	if lookup.OrderID != "" {
		params.Set("orderId", lookup.OrderID)
	}
	if lookup.ClientOrderID != "" {
		params.Set("clientOrderId", lookup.ClientOrderID)
	}
	return c.Do(ctx, core.OpGetOrder, params)
}

// GetOpenOrders retrieves unfilled orders for symbol. The limit defaults to 10.
func (c *Client) GetOpenOrders(ctx context.Context, symbol string, opts ...QueryOption) (any, error) {
	options := ApplyQueryOptions(defaultOpenOrdersLimit, opts...)

	params := core.NewParams().
		Set("symbol", NormalizeSymbol(symbol)).
		Set("limit", options.Limit)
	return c.Do(ctx, core.OpGetOpenOrders, params)
}

// BuyLimit places a GTC limit buy for qty at price.
func (c *Client) BuyLimit(ctx context.Context, symbol string, price, qty *apd.Decimal) (any, error) {
	return c.PlaceOrder(ctx, OrderRequest{
		Symbol:      symbol,
		Side:        core.SideBuy,
		Type:        core.TypeLimit,
		TimeInForce: core.GTC,
		Price:       price,
		Qty:         qty,
	})
}

// SellLimit places a GTC limit sell for qty at price.
func (c *Client) SellLimit(ctx context.Context, symbol string, price, qty *apd.Decimal) (any, error) {
	return c.PlaceOrder(ctx, OrderRequest{
		Symbol:      symbol,
		Side:        core.SideSell,
		Type:        core.TypeLimit,
		TimeInForce: core.GTC,
		Price:       price,
		Qty:         qty,
	})
}

// BuyMarket places an IOC market buy spending amount.
func (c *Client) BuyMarket(ctx context.Context, symbol string, amount *apd.Decimal) (any, error) {
	return c.PlaceOrder(ctx, OrderRequest{
		Symbol:      symbol,
		Side:        core.SideBuy,
		Type:        core.TypeMarket,
		TimeInForce: core.IOC,
		Amount:      amount,
	})
}

// SellMarket places an IOC market sell sized by amount.
func (c *Client) SellMarket(ctx context.Context, symbol string, amount *apd.Decimal) (any, error) {
	return c.PlaceOrder(ctx, OrderRequest{
		Symbol:      symbol,
		Side:        core.SideSell,
		Type:        core.TypeMarket,
		TimeInForce: core.IOC,
		Amount:      amount,
	})
}
