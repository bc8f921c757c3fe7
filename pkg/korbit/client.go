package korbit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/winhoho4/gokorbit/internal/transport"
	"github.com/winhoho4/gokorbit/pkg/core"
)

const apiKeyHeader = "X-KAPI-KEY"

var errEmptyBody = errors.New("empty response body")

type endpoint struct {
	method string
	path   string
}

var endpoints = map[core.Operation]endpoint{
	core.OpGetTicker:     {http.MethodGet, "/v2/tickers"},
	core.OpPlaceOrder:    {http.MethodPost, "/v2/orders"},
	core.OpCancelOrder:   {http.MethodDelete, "/v2/orders"},
	core.OpGetOrder:      {http.MethodGet, "/v2/orders"},
	core.OpGetOpenOrders: {http.MethodGet, "/v2/openOrders"},
	core.OpGetTrades:     {http.MethodGet, "/v2/trades"},
	core.OpGetMyTrades:   {http.MethodGet, "/v2/myTrades"},
	core.OpGetBalance:    {http.MethodGet, "/v2/balance"},
}

// Client is a Korbit REST API client.
// It holds only immutable state and is safe for concurrent use.
type Client struct {
	creds      core.Credentials
	httpClient *transport.Client
	logger     zerolog.Logger
	now        func() time.Time
}

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds configuration options for the Client.
type Options struct {
	Logger zerolog.Logger
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// New creates a Client from config. The credentials are copied.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := &Options{
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Client{
		creds:      *config.Credentials,
		httpClient: transport.NewClient(config.BaseURL, options.Logger),
		logger:     options.Logger,
		now:        time.Now,
	}, nil
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// Do signs params and sends them to the endpoint of op, returning the decoded JSON body.
// JSON numbers decode as json.Number, so order ids and amounts keep their exact digits.
//
// Error responses with a JSON body are returned as values, not errors, since the exchange
// reports failures in-band. A body that is not JSON yields a *core.TransportError.
func (c *Client) Do(ctx context.Context, op core.Operation, params *core.Params) (any, error) {
	ep, ok := endpoints[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedOperation, op)
	}

	if params == nil {
		params = core.NewParams()
	}
	signed, err := signParams(params, c.creds.SecretKey, c.now())
	if err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}

	req := core.NewRequest(ep.method, ep.path).SetHeader(apiKeyHeader, c.creds.APIKey)
	switch ep.method {
	case http.MethodGet, http.MethodDelete:
		req.SetQueryParams(signed)
	default:
		req.SetFormParams(signed)
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, c.transportError(req, signed, nil, err)
	}

	data, err := decodeBody(resp)
	if err != nil {
		te := c.transportError(req, signed, resp, err)
		c.logger.Error().Err(err).
			Str("op", op.String()).
			Int("status", resp.StatusCode).
			Str("url", te.URL).
			Interface("params", te.Params).
			Bytes("body", resp.Body).
			Msg("undecodable response")
		return nil, te
	}

	if !resp.IsSuccess() {
		c.logger.Warn().
			Str("op", op.String()).
			Int("status", resp.StatusCode).
			Msg("exchange returned error")
	}

	return data, nil
}

func decodeBody(resp *transport.Response) (any, error) {
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil, errEmptyBody
	}
	var data any
	if err := resp.Unmarshal(&data); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return data, nil
}

func (c *Client) transportError(req *core.Request, signed *core.Params, resp *transport.Response, err error) *core.TransportError {
	headers := make(map[string]string, len(req.Headers))
	for k, v := range req.Headers {
		headers[k] = v
	}
	headers[apiKeyHeader] = core.MaskKey(c.creds.APIKey)

	te := &core.TransportError{
		Method:  req.Method,
		URL:     c.httpClient.BaseURL() + req.URL(),
		Headers: headers,
		Params:  signed.Map(),
		Err:     err,
	}
	if resp != nil {
		te.StatusCode = resp.StatusCode
		te.Status = resp.Status
		te.Body = resp.Body
		te.ResponseHeaders = resp.Headers
	}
	return te
}
