/*
Package auth checks the single shared bearer token that protects the
gateway's proxied routes.

# Decisions

Authorize is a pure comparison with three outcomes:

  - Authorized: the presented token equals the configured one
  - Unauthorized: missing or wrong token, answered with 401 {"error":"unauthorised"}
  - NotConfigured: the gateway has no token, answered with 500 {"error":"not configured"}

NotConfigured wins over everything the caller sends: with no token set,
even a request without an Authorization header gets the 500.

# Basic Usage

	guard := auth.NewGuard(cfg.Auth.Token)
	r.With(guard.Handle).Post("/support/send", supportHandler)

The token is taken from the Authorization header with the literal
"Bearer " prefix removed:

	Authorization: Bearer 3f9c...

# Security Considerations

  - Token values are never logged
  - Comparison uses crypto/subtle
  - Use TLS in front of the gateway to keep the token off the wire
*/
package auth
