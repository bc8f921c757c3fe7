package korbit

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

type tickBracket struct {
	below *apd.Decimal
	tick  *apd.Decimal
}

// Exchange tick table. A price uses the tick of the first bracket it is below.
var tickBrackets = []tickBracket{
	{apd.New(1, 0), apd.New(1, -4)},
	{apd.New(10, 0), apd.New(1, -3)},
	{apd.New(100, 0), apd.New(1, -2)},
	{apd.New(1000, 0), apd.New(1, -1)},
	{apd.New(5000, 0), apd.New(1, 0)},
	{apd.New(10000, 0), apd.New(5, 0)},
	{apd.New(50000, 0), apd.New(10, 0)},
	{apd.New(100000, 0), apd.New(50, 0)},
	{apd.New(500000, 0), apd.New(100, 0)},
	{apd.New(1000000, 0), apd.New(500, 0)},
}

var maxTick = apd.New(1000, 0)

// Ties round to even.
var tickContext = func() apd.Context {
	c := apd.BaseContext.WithPrecision(34)
	c.Rounding = apd.RoundHalfEven
	return *c
}()

// TickSize returns the price increment the exchange accepts at price.
func TickSize(price *apd.Decimal) *apd.Decimal {
	for _, b := range tickBrackets {
		if price.Cmp(b.below) < 0 {
			return b.tick
		}
	}
	return maxTick
}

// AdjustPrice snaps price to the nearest multiple of its tick size.
// The quotient price/tick is rounded half to even, and the result has trailing zeros removed.
func AdjustPrice(price *apd.Decimal) (*apd.Decimal, error) {
	ctx := tickContext
	tick := TickSize(price)

	var steps apd.Decimal
	if _, err := ctx.Quo(&steps, price, tick); err != nil {
		return nil, fmt.Errorf("divide by tick %s: %w", tick, err)
	}
	if _, err := ctx.RoundToIntegralValue(&steps, &steps); err != nil {
		return nil, fmt.Errorf("round %s: %w", steps.String(), err)
	}

	adjusted := new(apd.Decimal)
	if _, err := ctx.Mul(adjusted, &steps, tick); err != nil {
		return nil, fmt.Errorf("multiply by tick %s: %w", tick, err)
	}
	adjusted.Reduce(adjusted)
	return adjusted, nil
}
