package core

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for common error conditions.
var (
	// ErrNoCredentials is returned when no API credentials are configured.
	ErrNoCredentials = errors.New("no credentials configured")
	// ErrReservedParam is returned when caller params already carry a signing key.
	ErrReservedParam = errors.New("reserved parameter")
	// ErrUnsupportedOperation is returned for an operation with no known endpoint.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
)

// TransportError is returned when a response cannot be interpreted as JSON or the
// request never produced a response. It carries enough context to diagnose the call.
type TransportError struct {
	// StatusCode is zero when no response was received.
	StatusCode int
	Status     string
	Method     string
	URL        string
	// Headers are the request headers with the API key masked.
	Headers map[string]string
	// Params are the signed request parameters.
	Params map[string]string
	// Body is the raw response body.
	Body []byte
	// ResponseHeaders holds the first value of each response header.
	ResponseHeaders map[string]string
	Err             error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: http %d: %s", e.Method, e.URL, e.StatusCode, truncate(string(e.Body), 256))
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsSuccess reports whether the failing response still had a 2xx status.
func (e *TransportError) IsSuccess() bool {
	return e.StatusCode >= 200 && e.StatusCode < 300
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// ExchangeError is an error reported in-band by the exchange in a JSON response body.
type ExchangeError struct {
	// Code is the exchange-specific error code.
	Code string `json:"code"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// RawError contains the original error response for debugging.
	RawError any `json:"raw_error,omitempty"`
	// Timestamp is when the error was observed.
	Timestamp time.Time `json:"timestamp"`
}

func (e *ExchangeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[korbit] %s", e.Code)
	}
	return fmt.Sprintf("[korbit] %s: %s", e.Code, e.Message)
}

// NewExchangeError creates an ExchangeError stamped with the current time.
func NewExchangeError(code, message string, raw any) *ExchangeError {
	return &ExchangeError{
		Code:      code,
		Message:   message,
		RawError:  raw,
		Timestamp: time.Now(),
	}
}

// IsTransportError returns true if err is or wraps a *TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsErrorCode checks whether err is an ExchangeError carrying the given exchange code.
func IsErrorCode(err error, code string) bool {
	var exErr *ExchangeError
	if errors.As(err, &exErr) {
		return exErr.Code == code
	}
	return false
}
