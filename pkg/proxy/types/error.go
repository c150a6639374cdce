package types

import (
	"fmt"
	"net/http"
)

// ErrorKind is the category every gateway failure resolves to.
// Handlers switch on Kind, never on message text.
type ErrorKind string

// Error kinds.
const (
	// KindNotConfigured: the operator omitted required configuration (500).
	KindNotConfigured ErrorKind = "not_configured"

	// KindAuth: the caller's bearer token is missing or wrong (401).
	KindAuth ErrorKind = "auth_error"

	// KindValidation: caller-supplied input is malformed or incomplete (400).
	KindValidation ErrorKind = "validation_error"

	// KindUpstreamRateLimited: the provider answered 429 (503).
	KindUpstreamRateLimited ErrorKind = "upstream_rate_limited"

	// KindUpstreamAuthFailed: the provider rejected the gateway's own
	// credential (502, never 401).
	KindUpstreamAuthFailed ErrorKind = "upstream_auth_failed"

	// KindUpstreamUnavailable: provider 5xx, transport failure or timeout (503).
	KindUpstreamUnavailable ErrorKind = "upstream_unavailable"

	// KindUpstreamMalformed: the provider's answer could not be parsed or
	// did not validate (502).
	KindUpstreamMalformed ErrorKind = "upstream_malformed_response"

	// KindProviderRejected: the provider returned another non-2xx (502).
	KindProviderRejected ErrorKind = "provider_rejected"

	// KindNotImplemented: the route exists but the requested mode does not (501).
	KindNotImplemented ErrorKind = "not_implemented"

	// KindInternal: anything unexpected (500).
	KindInternal ErrorKind = "internal_error"
)

// DefaultStatus returns the HTTP status conventionally used for kind.
func (k ErrorKind) DefaultStatus() int {
	switch k {
	case KindNotConfigured, KindInternal:
		return http.StatusInternalServerError
	case KindAuth:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindUpstreamRateLimited, KindUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case KindUpstreamAuthFailed, KindUpstreamMalformed, KindProviderRejected:
		return http.StatusBadGateway
	case KindNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// Client-facing error messages.
const (
	MsgNotConfigured   = "not configured"
	MsgUnauthorised    = "unauthorised"
	MsgBadJSON         = "bad json"
	MsgMissingFields   = "missing fields"
	MsgInvalidEmail    = "invalid email format"
	MsgRequestTooLarge = "request too large"
	MsgInvalidAIJSON   = "invalid_ai_json"
	MsgUsePOST         = "use POST for real mode"
	MsgInternal        = "internal error"
)

// GatewayError is the single error type that leaves a service. It carries
// the category, the short client-facing message, an optional note and the
// underlying cause for logs. Cause is never written to the client.
type GatewayError struct {
	Kind    ErrorKind
	Message string
	Note    string

	// Status overrides Kind.DefaultStatus when non-zero.
	Status int

	Cause error
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *GatewayError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode returns the status to answer with.
func (e *GatewayError) HTTPStatusCode() int {
	if e.Status != 0 {
		return e.Status
	}
	return e.Kind.DefaultStatus()
}

// Response returns the wire form of the error.
func (e *GatewayError) Response() *ErrorResponse {
	return &ErrorResponse{Error: e.Message, Note: e.Note}
}

// ErrorResponse is the JSON body of every failure:
//
//	{"error": "unauthorised"}
//	{"error": "AI service temporarily busy", "note": "retry later"}
type ErrorResponse struct {
	Error string `json:"error"`
	Note  string `json:"note,omitempty"`
}

// NewNotConfigured reports missing operator configuration.
func NewNotConfigured(cause error) *GatewayError {
	return &GatewayError{Kind: KindNotConfigured, Message: MsgNotConfigured, Cause: cause}
}

// NewUnauthorised reports a missing or wrong caller token.
func NewUnauthorised() *GatewayError {
	return &GatewayError{Kind: KindAuth, Message: MsgUnauthorised}
}

// NewValidationError reports bad caller input with message shown verbatim.
func NewValidationError(message string) *GatewayError {
	return &GatewayError{Kind: KindValidation, Message: message}
}

// NewMalformedResponse reports an upstream answer that could not be used.
func NewMalformedResponse(message string, cause error) *GatewayError {
	return &GatewayError{Kind: KindUpstreamMalformed, Message: message, Cause: cause}
}

// NewNotImplemented reports a mode the route does not serve.
func NewNotImplemented(message string) *GatewayError {
	return &GatewayError{Kind: KindNotImplemented, Message: message}
}

// NewInternalError hides cause behind a generic message.
func NewInternalError(cause error) *GatewayError {
	return &GatewayError{Kind: KindInternal, Message: MsgInternal, Cause: cause}
}
