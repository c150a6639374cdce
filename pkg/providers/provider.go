package providers

import (
	"errors"
	"time"
)

// Provider names used in logs, metric labels and error messages.
const (
	Gemini = "gemini"
	Resend = "resend"
)

// Upstream call outcomes, used as the "outcome" metric label.
const (
	OutcomeSuccess     = "success"
	OutcomeAuthFailed  = "auth_failed"
	OutcomeRateLimited = "rate_limited"
	OutcomeUnavailable = "unavailable"
	OutcomeTimeout     = "timeout"
	OutcomeRejected    = "rejected"
	OutcomeMalformed   = "malformed"
)

// Observer receives one notification per completed upstream call. The
// metrics collector implements it; a nil Observer is allowed everywhere.
type Observer interface {
	ObserveUpstream(provider, outcome string, duration time.Duration)
}

// Outcome classifies the error returned by an upstream call into one of the
// Outcome* labels. A nil error is OutcomeSuccess.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}

	var (
		authErr        *AuthError
		rateLimitErr   *RateLimitError
		unavailableErr *UnavailableError
		rejectedErr    *RejectedError
		parseErr       *ParseError
	)
	switch {
	case errors.As(err, &authErr):
		return OutcomeAuthFailed
	case errors.As(err, &rateLimitErr):
		return OutcomeRateLimited
	case errors.As(err, &unavailableErr):
		if unavailableErr.Timeout {
			return OutcomeTimeout
		}
		return OutcomeUnavailable
	case errors.As(err, &rejectedErr):
		return OutcomeRejected
	case errors.As(err, &parseErr):
		return OutcomeMalformed
	default:
		return OutcomeUnavailable
	}
}
