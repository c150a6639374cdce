package auth

import (
	"crypto/subtle"
	"strings"
)

// BearerScheme is the prefix stripped from the Authorization header.
const BearerScheme = "Bearer "

// BearerToken returns the token carried by an Authorization header value.
// The literal "Bearer " prefix is removed when present and the remainder is
// trimmed. A header without the prefix is returned trimmed as-is, so it can
// only match a token that happens to equal the whole header.
func BearerToken(header string) string {
	return strings.TrimSpace(strings.TrimPrefix(header, BearerScheme))
}

// Authorize compares the presented token with the configured one.
// The comparison is byte-exact and case-sensitive and runs in constant time
// for tokens of equal length.
func Authorize(presented, configured string) Decision {
	if configured == "" {
		return NotConfigured
	}
	if presented == "" {
		return Unauthorized
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(configured)) != 1 {
		return Unauthorized
	}
	return Authorized
}
