package auth

// Decision is the outcome of checking a caller's bearer token.
type Decision int

const (
	// Authorized means the presented token matches the configured one.
	Authorized Decision = iota

	// Unauthorized means the token is missing or wrong. It is the caller's
	// fault.
	Unauthorized

	// NotConfigured means the gateway has no token at all. It is the
	// operator's fault and is reported regardless of what the caller sent.
	NotConfigured
)

// String returns the decision name used in logs.
func (d Decision) String() string {
	switch d {
	case Authorized:
		return "authorized"
	case Unauthorized:
		return "unauthorized"
	case NotConfigured:
		return "not_configured"
	default:
		return "unknown"
	}
}
