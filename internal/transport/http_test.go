package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winhoho4/gokorbit/pkg/core"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://api.korbit.co.kr", zerolog.Nop())

	assert.NotNil(t, client)
	assert.Equal(t, "https://api.korbit.co.kr", client.BaseURL())
}

func TestClient_Get_PreservesQueryOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v2/tickers", r.URL.Path)
		assert.Equal(t, "symbol=btc_krw&limit=5&a=1", r.URL.RawQuery)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, zerolog.Nop())
	params := core.NewParams().Set("symbol", "btc_krw").Set("limit", 5).Set("a", 1)
	req := core.NewRequest(http.MethodGet, "/v2/tickers").SetQueryParams(params)

	resp, err := client.Do(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, resp.IsSuccess())
	assert.JSONEq(t, `{"success":true}`, string(resp.Body))
}

func TestClient_Post_FormBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v2/orders", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, "symbol=btc_krw&side=buy", string(body))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"created":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, zerolog.Nop())
	params := core.NewParams().Set("symbol", "btc_krw").Set("side", "buy")
	req := core.NewRequest(http.MethodPost, "/v2/orders").SetFormParams(params)

	resp, err := client.Do(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "orderId=123", r.URL.RawQuery)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, zerolog.Nop())
	req := core.NewRequest(http.MethodDelete, "/v2/orders").
		SetQueryParams(core.NewParams().Set("orderId", "123"))

	resp, err := client.Do(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	assert.Empty(t, resp.Body)
}

func TestClient_Headers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-KAPI-KEY"))
		w.Header().Set("X-Trace", "abc")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, zerolog.Nop())
	req := core.NewRequest(http.MethodGet, "/v2/balance").SetHeader("X-KAPI-KEY", "test-key")

	resp, err := client.Do(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Headers["X-Trace"])
}

func TestClient_UnsupportedMethod(t *testing.T) {
	client := NewClient("http://localhost", zerolog.Nop())

	_, err := client.Do(context.Background(), core.NewRequest(http.MethodPatch, "/v2/orders"))

	assert.Error(t, err)
}

func TestClient_Close(t *testing.T) {
	client := NewClient("http://localhost", zerolog.Nop())

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err := client.Do(context.Background(), core.NewRequest(http.MethodGet, "/v2/tickers"))
	assert.ErrorIs(t, err, core.ErrClientClosed)
}

func TestResponse_Unmarshal(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Body:       []byte(`{"name":"test","value":123}`),
	}

	var result struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	err := resp.Unmarshal(&result)

	assert.NoError(t, err)
	assert.Equal(t, "test", result.Name)
	assert.Equal(t, 123, result.Value)
}

func TestResponse_UnmarshalKeepsLargeIntegers(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Body:       []byte(`{"data":{"orderId":12345678901234567,"price":"100.5"}}`),
	}

	var result any
	require.NoError(t, resp.Unmarshal(&result))

	data := result.(map[string]any)["data"].(map[string]any)
	assert.Equal(t, json.Number("12345678901234567"), data["orderId"])
	assert.Equal(t, "100.5", data["price"])
}

func TestResponse_IsSuccess(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   bool
	}{
		{"200 OK", 200, true},
		{"201 Created", 201, true},
		{"204 No Content", 204, true},
		{"301 Redirect", 301, false},
		{"400 Bad Request", 400, false},
		{"500 Server Error", 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &Response{StatusCode: tt.statusCode}
			assert.Equal(t, tt.expected, resp.IsSuccess())
		})
	}
}
