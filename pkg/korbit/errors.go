package korbit

import "github.com/winhoho4/gokorbit/pkg/core"

// ExchangeErrorFrom extracts the in-band error from a decoded response of the form
// {"success": false, "error": {"code": ..., "message": ...}}.
// It returns false for successful responses and for values of any other shape.
func ExchangeErrorFrom(result any) (*core.ExchangeError, bool) {
	m, ok := result.(map[string]any)
	if !ok {
		return nil, false
	}
	success, ok := m["success"].(bool)
	if !ok || success {
		return nil, false
	}

	var code, message string
	if e, ok := m["error"].(map[string]any); ok {
		code, _ = e["code"].(string)
		message, _ = e["message"].(string)
	}
	if code == "" {
		code = "UNKNOWN"
	}
	return core.NewExchangeError(code, message, m), true
}
