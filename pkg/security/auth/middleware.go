package auth

import (
	"log/slog"
	"net/http"

	"interpill/gateway/pkg/proxy"
	"interpill/gateway/pkg/proxy/types"
)

// Guard is HTTP middleware that rejects requests whose bearer token does not
// match the gateway token. It runs before any other processing on a
// protected route.
type Guard struct {
	token string
}

// NewGuard creates a guard for token. An empty token makes every protected
// request fail with 500 "not configured".
func NewGuard(token string) *Guard {
	return &Guard{token: token}
}

// Configured reports whether a gateway token is set.
func (g *Guard) Configured() bool {
	return g.token != ""
}

// Check applies Authorize to the request's Authorization header.
func (g *Guard) Check(r *http.Request) Decision {
	return Authorize(BearerToken(r.Header.Get(proxy.AuthorizationHeader)), g.token)
}

// Handle wraps an HTTP handler with bearer token authentication.
func (g *Guard) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch g.Check(r) {
		case Authorized:
			next.ServeHTTP(w, r)

		case NotConfigured:
			slog.ErrorContext(r.Context(), "gateway token not configured",
				"path", r.URL.Path,
			)
			_ = proxy.WriteErrorResponse(w, types.NewNotConfigured(nil))

		default:
			// Token values are never logged.
			slog.WarnContext(r.Context(), "unauthorised request",
				"remote_addr", r.RemoteAddr,
				"path", r.URL.Path,
			)
			_ = proxy.WriteErrorResponse(w, types.NewUnauthorised())
		}
	})
}
