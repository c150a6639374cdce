package proxy

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"interpill/gateway/pkg/proxy/types"
)

const (
	// DefaultMaxBodyBytes is used when ReadBody is given no limit.
	DefaultMaxBodyBytes = 64 << 10

	// AuthorizationHeader carries the caller's bearer token.
	AuthorizationHeader = "Authorization"

	// RequestIDHeader is the HTTP header for request ID propagation.
	RequestIDHeader = "X-Request-ID"
)

// ReadBody reads the whole request body up to limit bytes. A larger body is
// a validation error ("request too large"); a failed read is a validation
// error too, since it is almost always a client that went away mid-upload.
func ReadBody(r *http.Request, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, types.NewValidationError(types.MsgRequestTooLarge)
		}
		return nil, &types.GatewayError{
			Kind:    types.KindValidation,
			Message: types.MsgBadJSON,
			Cause:   fmt.Errorf("failed to read request body: %w", err),
		}
	}

	if int64(len(body)) > limit {
		return nil, types.NewValidationError(types.MsgRequestTooLarge)
	}

	return body, nil
}

// ExtractRequestID extracts the request ID from the X-Request-ID header.
// If the header is not present, it returns an empty string.
func ExtractRequestID(r *http.Request) string {
	return r.Header.Get(RequestIDHeader)
}
