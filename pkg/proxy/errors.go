package proxy

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"interpill/gateway/pkg/providers"
	"interpill/gateway/pkg/proxy/types"
)

// RoutePolicy adjusts how upstream errors surface on one route.
type RoutePolicy struct {
	// Service names the upstream in client-facing messages.
	Service string

	// RateLimitAsRejection reports a provider 429 as ProviderRejected
	// instead of UpstreamRateLimited.
	RateLimitAsRejection bool

	// UnavailableStatus overrides the 503 used for UpstreamUnavailable.
	UnavailableStatus int
}

// Route policies.
var (
	// AIRoute is the policy of the summary route: the category defaults apply.
	AIRoute = RoutePolicy{Service: "AI service"}

	// EmailRoute is the policy of the support route: a provider 4xx is a
	// rejection of this request and every upstream failure answers 502.
	EmailRoute = RoutePolicy{
		Service:              "email service",
		RateLimitAsRejection: true,
		UnavailableStatus:    http.StatusBadGateway,
	}
)

// HandleError converts any error into a GatewayError using the AI route
// policy. A GatewayError passes through unchanged; unknown errors become a
// 500 that hides the cause.
//
// Example usage:
//
//	if err != nil {
//	    WriteErrorResponse(w, HandleError(err))
//	    return
//	}
func HandleError(err error) *types.GatewayError {
	return MapUpstream(err, AIRoute)
}

// MapUpstream resolves err to exactly one category, switching on the typed
// provider errors.
func MapUpstream(err error, policy RoutePolicy) *types.GatewayError {
	if err == nil {
		return nil
	}

	var gwErr *types.GatewayError
	if errors.As(err, &gwErr) {
		return gwErr
	}

	service := policy.Service
	if service == "" {
		service = "upstream service"
	}

	var authErr *providers.AuthError
	if errors.As(err, &authErr) {
		return &types.GatewayError{
			Kind:    types.KindUpstreamAuthFailed,
			Message: service + " authentication failed",
			Note:    "the gateway's provider credential was rejected",
			Cause:   err,
		}
	}

	var rateLimitErr *providers.RateLimitError
	if errors.As(err, &rateLimitErr) {
		if policy.RateLimitAsRejection {
			return rejected(service, rateLimitErr.Message, err)
		}
		note := "please retry in a few moments"
		if rateLimitErr.RetryAfter > 0 {
			note = fmt.Sprintf("please retry after %s", rateLimitErr.RetryAfter.Round(time.Second))
		}
		return &types.GatewayError{
			Kind:    types.KindUpstreamRateLimited,
			Message: service + " temporarily busy",
			Note:    note,
			Cause:   err,
		}
	}

	var unavailableErr *providers.UnavailableError
	if errors.As(err, &unavailableErr) {
		note := ""
		if unavailableErr.Timeout {
			note = "upstream request timed out"
		}
		return &types.GatewayError{
			Kind:    types.KindUpstreamUnavailable,
			Message: service + " unavailable",
			Note:    note,
			Status:  policy.UnavailableStatus,
			Cause:   err,
		}
	}

	var rejectedErr *providers.RejectedError
	if errors.As(err, &rejectedErr) {
		return rejected(service, rejectedErr.Message, err)
	}

	var parseErr *providers.ParseError
	if errors.As(err, &parseErr) {
		return &types.GatewayError{
			Kind:    types.KindUpstreamMalformed,
			Message: service + " returned a malformed response",
			Cause:   err,
		}
	}

	return types.NewInternalError(err)
}

func rejected(service, message string, cause error) *types.GatewayError {
	if message == "" {
		message = providers.GenericRejection
	}
	return &types.GatewayError{
		Kind:    types.KindProviderRejected,
		Message: service + " rejected the request",
		Note:    message,
		Cause:   cause,
	}
}
