package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"interpill/gateway/pkg/proxy"
	"interpill/gateway/pkg/proxy/types"
)

// RecoveryMiddleware recovers from panics in HTTP handlers and answers
// 500 {"error":"internal error"}. The panic is logged with its stack trace
// and never exposed to the client.
//
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
//
// Example usage:
//
//	handler = RecoveryMiddleware(handler)
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			slog.ErrorContext(r.Context(), "panic in handler",
				"error", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)

			_ = proxy.WriteErrorResponse(w, types.NewInternalError(fmt.Errorf("panic: %v", rec)))
		}()

		next.ServeHTTP(w, r)
	})
}
