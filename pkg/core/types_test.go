package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderSide_String(t *testing.T) {
	tests := []struct {
		name string
		side OrderSide
		want string
	}{
		{"buy", SideBuy, "buy"},
		{"sell", SideSell, "sell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.side.String())
		})
	}
}

func TestOrderType_String(t *testing.T) {
	assert.Equal(t, "limit", TypeLimit.String())
	assert.Equal(t, "market", TypeMarket.String())
}

func TestTimeInForce_String(t *testing.T) {
	tests := []struct {
		name string
		tif  TimeInForce
		want string
	}{
		{"gtc", GTC, "gtc"},
		{"ioc", IOC, "ioc"},
		{"fok", FOK, "fok"},
		{"post_only", PostOnly, "post_only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tif.String())
		})
	}
}

func TestEnums_StringOutOfRange(t *testing.T) {
	assert.Equal(t, "UNKNOWN", OrderSide(7).String())
	assert.Equal(t, "UNKNOWN", OrderSide(-1).String())
	assert.Equal(t, "UNKNOWN", OrderType(2).String())
	assert.Equal(t, "UNKNOWN", TimeInForce(4).String())
}

func TestEnums_JSON(t *testing.T) {
	type order struct {
		Side        OrderSide   `json:"side"`
		Type        OrderType   `json:"orderType"`
		TimeInForce TimeInForce `json:"timeInForce"`
	}

	data, err := json.Marshal(order{Side: SideSell, Type: TypeMarket, TimeInForce: IOC})
	require.NoError(t, err)
	assert.JSONEq(t, `{"side":"sell","orderType":"market","timeInForce":"ioc"}`, string(data))

	var decoded order
	require.NoError(t, json.Unmarshal([]byte(`{"side":"SELL","orderType":"MARKET","timeInForce":"POST_ONLY"}`), &decoded))
	assert.Equal(t, SideSell, decoded.Side)
	assert.Equal(t, TypeMarket, decoded.Type)
	assert.Equal(t, PostOnly, decoded.TimeInForce)
}
