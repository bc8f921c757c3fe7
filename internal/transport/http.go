// Package transport provides the HTTP transport used to reach the exchange.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"github.com/winhoho4/gokorbit/pkg/core"
)

const (
	formContentType = "application/x-www-form-urlencoded"
	jsonContentType = "application/json"
)

// jsonAPI decodes numbers as json.Number so large integer ids keep every digit.
var jsonAPI = sonic.Config{UseNumber: true}.Froze()

// Client wraps a resty HTTP client with logging.
// Requests are sent exactly once; retries are disabled.
type Client struct {
	client  *resty.Client
	baseURL string
	logger  zerolog.Logger
	mu      sync.RWMutex
	closed  bool
}

// Response represents an HTTP response with its status code, body, and headers.
type Response struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int

	// Status is the status line text, e.g. "400 Bad Request".
	Status string

	// Body contains the raw response body bytes.
	Body []byte

	// Headers contains the response headers as key-value pairs.
	Headers map[string]string
}

// NewClient creates an HTTP client rooted at baseURL.
func NewClient(baseURL string, logger zerolog.Logger) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetRetryCount(0)
	client.AddContentTypeEncoder(jsonContentType, func(w io.Writer, v any) error {
		data, err := jsonAPI.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
	client.AddContentTypeDecoder(jsonContentType, func(r io.Reader, v any) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		return jsonAPI.Unmarshal(data, v)
	})

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request")
		return nil
	})

	return &Client{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Do executes req and returns the raw response.
// Query params are appended to the path verbatim so their order survives; form params
// are sent as a urlencoded body.
func (c *Client) Do(ctx context.Context, req *core.Request) (*Response, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, core.ErrClientClosed
	}

	r := c.client.R().SetContext(ctx)

	for k, v := range req.Headers {
		r.SetHeader(k, v)
	}

	if req.Form != nil {
		r.SetHeader("Content-Type", formContentType)
		r.SetBody(req.Form.Encode())
	}

	var resp *resty.Response
	var err error

	url := req.URL()
	switch req.Method {
	case http.MethodGet:
		resp, err = r.Get(url)
	case http.MethodPost:
		resp, err = r.Post(url)
	case http.MethodDelete:
		resp, err = r.Delete(url)
	default:
		return nil, fmt.Errorf("unsupported http method: %s", req.Method)
	}

	if err != nil {
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("http request failed")
		return nil, fmt.Errorf("http request: %w", err)
	}

	body := resp.Bytes()

	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Int("size", len(body)).
		Msg("http response")

	headers := make(map[string]string)
	for k, v := range resp.Header() {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       body,
		Headers:    headers,
	}, nil
}

// BaseURL returns the host all request paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases the underlying resty client. Further calls to Do fail.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}

// IsSuccess returns true if the response status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Unmarshal parses the response body into v. Numbers decode as json.Number when v is
// an interface.
func (r *Response) Unmarshal(v any) error {
	return jsonAPI.Unmarshal(r.Body, v)
}
