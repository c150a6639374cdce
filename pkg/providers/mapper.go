package providers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// GenericRejection is the message used when a rejecting provider body
// carries nothing recognisable.
const GenericRejection = "request rejected by provider"

// maxMessageRunes bounds messages copied out of provider bodies.
const maxMessageRunes = 200

// MapStatus classifies one upstream status code. It returns nil for 2xx and
// one of AuthError, RateLimitError, UnavailableError or RejectedError
// otherwise. The table is checked in order:
//
//	401, 403      AuthError
//	429           RateLimitError
//	500-599       UnavailableError
//	other non-2xx RejectedError
//
// MapStatus is pure: the same inputs always give the same classification.
func MapStatus(provider string, statusCode int, body []byte) error {
	switch {
	case statusCode >= 200 && statusCode <= 299:
		return nil
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &AuthError{
			Provider:   provider,
			StatusCode: statusCode,
			Message:    messageOr(body, http.StatusText(statusCode)),
		}
	case statusCode == http.StatusTooManyRequests:
		return &RateLimitError{
			Provider: provider,
			Message:  messageOr(body, http.StatusText(statusCode)),
		}
	case statusCode >= 500 && statusCode <= 599:
		return &UnavailableError{
			Provider:   provider,
			StatusCode: statusCode,
			Message:    messageOr(body, http.StatusText(statusCode)),
		}
	default:
		return &RejectedError{
			Provider:   provider,
			StatusCode: statusCode,
			Message:    messageOr(body, GenericRejection),
		}
	}
}

// MapResult is MapStatus plus the response headers: a 429 picks up the
// provider's Retry-After hint.
func MapResult(provider string, res *UpstreamResult) error {
	err := MapStatus(provider, res.StatusCode, res.Body)
	if rl, ok := err.(*RateLimitError); ok && res.Header != nil {
		rl.RetryAfter = parseRetryAfter(res.Header.Get("Retry-After"))
	}
	return err
}

// ShortMessage pulls a human-readable reason out of a provider error body.
// It looks at error.message, then error.status, then a top-level message
// field. It returns "" when none is present or the body is not JSON.
func ShortMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	if len(envelope.Error) > 0 {
		var detail struct {
			Message string `json:"message"`
			Status  string `json:"status"`
		}
		// error may be a string or some other shape; only an object counts.
		if err := json.Unmarshal(envelope.Error, &detail); err == nil {
			if msg := strings.TrimSpace(detail.Message); msg != "" {
				return truncate(msg)
			}
			if status := strings.TrimSpace(detail.Status); status != "" {
				return truncate(status)
			}
		}
	}

	return truncate(strings.TrimSpace(envelope.Message))
}

func messageOr(body []byte, fallback string) string {
	if msg := ShortMessage(body); msg != "" {
		return msg
	}
	return fallback
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxMessageRunes {
		return s
	}
	r := []rune(s)
	return string(r[:maxMessageRunes]) + "…"
}

// parseRetryAfter parses the Retry-After header value.
// It supports both delay-seconds and HTTP-date formats.
func parseRetryAfter(header string) time.Duration {
	header = strings.TrimSpace(header)
	if header == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(header); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}

	return 0
}
