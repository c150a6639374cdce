// Package middleware provides the gateway's HTTP middleware for cross-cutting
// concerns: request IDs, access logging with request metrics, CORS, panic
// recovery, body limits and request deadlines.
//
// # Middleware Chain
//
// The server installs them outermost first:
//
//	Recovery → RequestID → tracing → Logging → CORS → Timeout → BodyLimit → router
//
// Authentication is not part of this package; the auth guard wraps only the
// proxied routes so CORS preflights and liveness probes stay public.
//
// # Request ID
//
// RequestIDMiddleware honours a caller's X-Request-ID and otherwise
// generates a UUID v4. The ID is stored with logging.WithRequestID, so every
// record logged with the request context carries it, and is echoed in the
// response header.
//
// # Logging
//
// LoggingMiddleware writes one "request completed" record per request with
// method, path, route, status and latency_ms, and hands the same values to
// a RequestRecorder (the metrics collector). The route comes from a
// RouteFunc evaluated after the router ran, so metric labels use patterns
// rather than raw paths.
//
// # Recovery
//
// RecoveryMiddleware turns a panic into 500 {"error":"internal error"} and
// logs the stack trace.
package middleware
