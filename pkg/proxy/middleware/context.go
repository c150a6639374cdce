package middleware

import (
	"context"

	"interpill/gateway/pkg/telemetry/logging"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// Context keys for storing values in request context.
const (
	// StartTimeKey stores the request start time for latency calculation.
	StartTimeKey contextKey = "start_time"
)

// RequestIDKey stores the unique request ID. It is shared with the logging
// handler so every record written with the request context carries the ID.
const RequestIDKey = logging.RequestIDKey

// GetRequestID extracts the request ID from the context.
// Returns empty string if not found.
func GetRequestID(ctx context.Context) string {
	return logging.GetRequestID(ctx)
}
