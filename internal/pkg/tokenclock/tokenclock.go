// internal/pkg/tokenclock/tokenclock.go
package tokenclock

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

type payload struct {
	Exp int64 `json:"exp"`
}

// ExpiryOf decodes the payload segment of a JWT and returns the `exp` claim
// in epoch milliseconds. It does not verify the signature; the token was
// issued by the external backend and is only inspected for its lifetime.
//
// Fails closed: any malformed input (wrong segment count, bad encoding,
// missing exp) returns 0, which callers must treat as "already expired".
func ExpiryOf(token string) int64 {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return 0
	}

	raw, err := decodeSegment(parts[1])
	if err != nil {
		return 0
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return 0
	}
	if p.Exp <= 0 {
		return 0
	}

	return p.Exp * 1000
}

// Expired reports whether the expiry returned by ExpiryOf has passed,
// allowing an optional safety margin before the real expiry.
func Expired(expiresAtMs int64, margin time.Duration) bool {
	return time.Now().UnixMilli() >= expiresAtMs-margin.Milliseconds()
}

// decodeSegment accepts both raw (unpadded) and standard base64url, since
// backends differ in whether they pad JWT segments.
func decodeSegment(seg string) ([]byte, error) {
	if raw, err := base64.RawURLEncoding.DecodeString(seg); err == nil {
		return raw, nil
	}
	return base64.URLEncoding.DecodeString(seg)
}
