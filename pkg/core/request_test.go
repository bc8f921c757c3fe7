package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest("GET", "/v2/tickers")

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/v2/tickers", req.Path)
	assert.Nil(t, req.Query)
	assert.Nil(t, req.Form)
	assert.NotNil(t, req.Headers)
}

func TestRequest_SetHeader(t *testing.T) {
	req := NewRequest("GET", "/v2/tickers")
	result := req.SetHeader("X-KAPI-KEY", "key")

	assert.Equal(t, req, result)
	assert.Equal(t, "key", req.Headers["X-KAPI-KEY"])
}

func TestRequest_SetHeader_NilMap(t *testing.T) {
	req := &Request{}
	req.SetHeader("X-KAPI-KEY", "key")

	assert.Equal(t, "key", req.Headers["X-KAPI-KEY"])
}

func TestRequest_URL(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
		want string
	}{
		{"no_query", NewRequest("GET", "/v2/balance"), "/v2/balance"},
		{"empty_query", NewRequest("GET", "/v2/balance").SetQueryParams(NewParams()), "/v2/balance"},
		{
			name: "ordered_query",
			req:  NewRequest("GET", "/v2/trades").SetQueryParams(NewParams().Set("symbol", "btc_krw").Set("limit", 100)),
			want: "/v2/trades?symbol=btc_krw&limit=100",
		},
		{
			name: "form_not_in_url",
			req:  NewRequest("POST", "/v2/orders").SetFormParams(NewParams().Set("symbol", "btc_krw")),
			want: "/v2/orders",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.URL())
		})
	}
}
