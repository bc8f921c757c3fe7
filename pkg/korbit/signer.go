package korbit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/winhoho4/gokorbit/pkg/core"
)

const (
	paramTimestamp = "timestamp"
	paramSignature = "signature"
)

// Sign returns the lowercase hex HMAC-SHA256 of the urlencoded params, keyed by secret.
func Sign(params *core.Params, secret string) string {
	return signHMAC(params.Encode(), secret)
}

// signParams returns a copy of params with timestamp and signature appended, in that order.
// The signature covers every parameter before it, timestamp included.
func signParams(params *core.Params, secret string, now time.Time) (*core.Params, error) {
	for _, key := range []string{paramTimestamp, paramSignature} {
		if params.Has(key) {
			return nil, fmt.Errorf("%w: %s", core.ErrReservedParam, key)
		}
	}

	signed := params.Clone()
	signed.Set(paramTimestamp, now.UnixMilli())
	signed.Set(paramSignature, Sign(signed, secret))
	return signed, nil
}

func signHMAC(message, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(message))
	return hex.EncodeToString(h.Sum(nil))
}
