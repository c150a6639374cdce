package providers

import (
	"fmt"
	"time"
)

// AuthError represents an authentication failure.
// This occurs when the provider rejects the gateway's own credential
// (HTTP 401 or 403). It is never the caller's fault.
type AuthError struct {
	// Provider is the name of the provider that rejected authentication
	Provider string

	// StatusCode is the HTTP status code (401 or 403)
	StatusCode int

	// Message is the short message extracted from the provider body
	Message string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("provider %q authentication failed (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

// RateLimitError represents a rate limit exceeded error (HTTP 429).
// It includes the retry-after duration if provided by the provider.
type RateLimitError struct {
	// Provider is the name of the provider that rate limited the request
	Provider string

	// RetryAfter is the duration to wait before retrying (if provided)
	RetryAfter time.Duration

	// Message is the short message extracted from the provider body
	Message string
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("provider %q rate limit exceeded (retry after %s): %s",
			e.Provider, e.RetryAfter, e.Message)
	}
	return fmt.Sprintf("provider %q rate limit exceeded: %s", e.Provider, e.Message)
}

// UnavailableError represents a provider that could not serve the request:
// a 5xx answer, or a transport failure before any status was obtained
// (connection refused, DNS, timeout, cancelled context).
type UnavailableError struct {
	// Provider is the name of the unavailable provider
	Provider string

	// StatusCode is the HTTP status code, or 0 for transport failures
	StatusCode int

	// Message is the short message extracted from the provider body
	Message string

	// Timeout is true when the call exceeded its deadline
	Timeout bool

	// Cause is the underlying transport error (if any)
	Cause error
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	switch {
	case e.StatusCode > 0:
		return fmt.Sprintf("provider %q unavailable (status %d): %s", e.Provider, e.StatusCode, e.Message)
	case e.Timeout:
		return fmt.Sprintf("provider %q request timed out: %v", e.Provider, e.Cause)
	default:
		return fmt.Sprintf("provider %q unreachable: %v", e.Provider, e.Cause)
	}
}

// Unwrap returns the underlying error for error chain support.
func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// RejectedError represents any other non-2xx answer, typically a 4xx the
// provider uses to reject the payload.
type RejectedError struct {
	// Provider is the name of the provider that rejected the request
	Provider string

	// StatusCode is the HTTP status code
	StatusCode int

	// Message is a short human-readable reason, or GenericRejection
	Message string
}

// Error implements the error interface.
func (e *RejectedError) Error() string {
	return fmt.Sprintf("provider %q rejected request (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

// ParseError represents a response parsing failure.
// This occurs when the provider returns a 2xx whose body is not the
// expected envelope.
type ParseError struct {
	// Provider is the name of the provider that returned the malformed response
	Provider string

	// RawResponse is the raw response body that failed to parse
	RawResponse string

	// Cause is the underlying parse error
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("provider %q response parse error: %v", e.Provider, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}
