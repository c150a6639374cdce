// Package providers implements the outbound side of the gateway: a
// single-attempt HTTP client per upstream provider and the mapping from
// upstream status codes to typed errors.
//
// # Architecture
//
//  1. HTTPClient - pooled transport with connect and read timeouts, tracing
//     spans and an Observer hook for metrics
//  2. MapStatus / MapResult - the pure status classification table
//  3. Provider clients - gemini (generateContent) and resend (emails) in
//     sub-packages, built on HTTPClient
//
// # Error Handling
//
// Every failure is one of five typed errors:
//
//	*AuthError         401/403, the gateway's credential was rejected
//	*RateLimitError    429
//	*UnavailableError  5xx, or a transport failure/timeout with no status
//	*RejectedError     any other non-2xx, with a short provider message
//	*ParseError        2xx with a body that is not the expected envelope
//
// Callers switch on the type with errors.As, never on message text:
//
//	var rl *providers.RateLimitError
//	if errors.As(err, &rl) {
//	    // surface a retry-later answer
//	}
//
// # Retries
//
// There are none. A failed call is reported immediately and retrying is the
// caller's decision.
package providers
