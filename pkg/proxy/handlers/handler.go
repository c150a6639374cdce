package handlers

import (
	"log/slog"
	"net/http"

	"interpill/gateway/pkg/proxy"
	"interpill/gateway/pkg/telemetry/tracing"
)

// writeError normalizes err and writes it. Server-side failures are logged
// with their cause; the cause never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	gwErr := proxy.HandleError(err)
	status := gwErr.HTTPStatusCode()

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"kind", string(gwErr.Kind),
			"status", status,
			"error", gwErr.Error(),
			"trace_id", tracing.TraceID(r.Context()),
		)
	}

	if err := proxy.WriteErrorResponse(w, gwErr); err != nil {
		slog.WarnContext(r.Context(), "failed to write error response", "error", err)
	}
}

// writeJSON writes a success body and logs encoding failures.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	if err := proxy.WriteJSONResponse(w, status, body); err != nil {
		slog.WarnContext(r.Context(), "failed to write response", "error", err)
	}
}
