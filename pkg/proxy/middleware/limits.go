package middleware

import (
	"net/http"

	"interpill/gateway/pkg/proxy"
)

// BodyLimitMiddleware caps request bodies at limit bytes. Reads past the
// limit fail with *http.MaxBytesError, which proxy.ReadBody reports as
// "request too large". A non-positive limit uses proxy.DefaultMaxBodyBytes.
//
// Example usage:
//
//	handler = BodyLimitMiddleware(cfg.Server.MaxBodyBytes)(handler)
func BodyLimitMiddleware(limit int64) func(http.Handler) http.Handler {
	if limit <= 0 {
		limit = proxy.DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
