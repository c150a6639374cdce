package proxy

import (
	"encoding/json"
	"fmt"
	"net/http"

	"interpill/gateway/pkg/proxy/types"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer.
// It sets the appropriate content-type header and reports marshaling errors
// to the caller; the status line has already been sent by then.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON response: %w", err)
	}

	return nil
}

// WriteErrorResponse writes {"error": ..., "note": ...} with the status of
// the error's kind.
func WriteErrorResponse(w http.ResponseWriter, gwErr *types.GatewayError) error {
	return WriteJSONResponse(w, gwErr.HTTPStatusCode(), gwErr.Response())
}

// WriteText writes a plain-text body.
func WriteText(w http.ResponseWriter, statusCode int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(text))
}
