package proxy

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"interpill/gateway/pkg/providers"
	"interpill/gateway/pkg/proxy/types"
)

func TestMapUpstream(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		policy     RoutePolicy
		wantKind   types.ErrorKind
		wantStatus int
		wantMsg    string
		wantNote   string
	}{
		{
			name:       "ai auth failure is a gateway fault",
			err:        &providers.AuthError{Provider: "gemini", StatusCode: 403},
			policy:     AIRoute,
			wantKind:   types.KindUpstreamAuthFailed,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "AI service authentication failed",
		},
		{
			name:       "ai rate limit",
			err:        &providers.RateLimitError{Provider: "gemini"},
			policy:     AIRoute,
			wantKind:   types.KindUpstreamRateLimited,
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "AI service temporarily busy",
			wantNote:   "please retry in a few moments",
		},
		{
			name:       "ai rate limit with retry-after",
			err:        &providers.RateLimitError{Provider: "gemini", RetryAfter: 7 * time.Second},
			policy:     AIRoute,
			wantKind:   types.KindUpstreamRateLimited,
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "AI service temporarily busy",
			wantNote:   "please retry after 7s",
		},
		{
			name:       "ai unavailable",
			err:        &providers.UnavailableError{Provider: "gemini", StatusCode: 500},
			policy:     AIRoute,
			wantKind:   types.KindUpstreamUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "AI service unavailable",
		},
		{
			name:       "ai timeout",
			err:        &providers.UnavailableError{Provider: "gemini", Timeout: true},
			policy:     AIRoute,
			wantKind:   types.KindUpstreamUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "AI service unavailable",
			wantNote:   "upstream request timed out",
		},
		{
			name:       "ai rejected keeps provider message",
			err:        &providers.RejectedError{Provider: "gemini", StatusCode: 400, Message: "INVALID_ARGUMENT"},
			policy:     AIRoute,
			wantKind:   types.KindProviderRejected,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "AI service rejected the request",
			wantNote:   "INVALID_ARGUMENT",
		},
		{
			name:       "ai malformed envelope",
			err:        &providers.ParseError{Provider: "gemini", Cause: errors.New("no candidates")},
			policy:     AIRoute,
			wantKind:   types.KindUpstreamMalformed,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "AI service returned a malformed response",
		},
		{
			name:       "email rate limit is a rejection",
			err:        &providers.RateLimitError{Provider: "resend", Message: "too many requests"},
			policy:     EmailRoute,
			wantKind:   types.KindProviderRejected,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "email service rejected the request",
			wantNote:   "too many requests",
		},
		{
			name:       "email unavailable answers 502",
			err:        &providers.UnavailableError{Provider: "resend", StatusCode: 503},
			policy:     EmailRoute,
			wantKind:   types.KindUpstreamUnavailable,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "email service unavailable",
		},
		{
			name:       "email rejection without message",
			err:        &providers.RejectedError{Provider: "resend", StatusCode: 422},
			policy:     EmailRoute,
			wantKind:   types.KindProviderRejected,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "email service rejected the request",
			wantNote:   providers.GenericRejection,
		},
		{
			name:       "wrapped provider error",
			err:        fmt.Errorf("summarize: %w", &providers.AuthError{Provider: "gemini", StatusCode: 401}),
			policy:     AIRoute,
			wantKind:   types.KindUpstreamAuthFailed,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "AI service authentication failed",
		},
		{
			name:       "unknown error is internal",
			err:        errors.New("boom"),
			policy:     AIRoute,
			wantKind:   types.KindInternal,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    types.MsgInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapUpstream(tt.err, tt.policy)
			if got == nil {
				t.Fatal("MapUpstream returned nil")
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", got.Kind, tt.wantKind)
			}
			if got.HTTPStatusCode() != tt.wantStatus {
				t.Errorf("status = %d, want %d", got.HTTPStatusCode(), tt.wantStatus)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMsg)
			}
			if tt.wantNote != "" && got.Note != tt.wantNote {
				t.Errorf("Note = %q, want %q", got.Note, tt.wantNote)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("cause not preserved: %v", got.Cause)
			}
		})
	}
}

func TestMapUpstream_PassesGatewayErrorThrough(t *testing.T) {
	orig := types.NewValidationError(types.MsgMissingFields)
	if got := HandleError(fmt.Errorf("wrapped: %w", orig)); got != orig {
		t.Errorf("got %v, want the original error", got)
	}
	if HandleError(nil) != nil {
		t.Error("nil error should map to nil")
	}
}

func TestMapUpstream_Deterministic(t *testing.T) {
	for _, status := range []int{400, 401, 403, 404, 429, 500, 502, 503} {
		first := MapUpstream(providers.MapStatus("gemini", status, nil), AIRoute)
		for i := 0; i < 3; i++ {
			again := MapUpstream(providers.MapStatus("gemini", status, nil), AIRoute)
			if again.Kind != first.Kind {
				t.Errorf("status %d: kind changed from %s to %s", status, first.Kind, again.Kind)
			}
		}
	}
}

func TestWriteErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	gwErr := &types.GatewayError{
		Kind:    types.KindUpstreamRateLimited,
		Message: "AI service temporarily busy",
		Note:    "please retry in a few moments",
		Cause:   errors.New("secret upstream body"),
	}

	if err := WriteErrorResponse(rec, gwErr); err != nil {
		t.Fatalf("WriteErrorResponse: %v", err)
	}

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %s", ct)
	}
	want := `{"error":"AI service temporarily busy","note":"please retry in a few moments"}`
	if strings.TrimSpace(rec.Body.String()) != want {
		t.Errorf("body = %s, want %s", rec.Body.String(), want)
	}
}

func TestWriteErrorResponse_OmitsEmptyNote(t *testing.T) {
	rec := httptest.NewRecorder()
	_ = WriteErrorResponse(rec, types.NewUnauthorised())

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"error":"unauthorised"}` {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestReadBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		limit   int64
		wantErr string
	}{
		{name: "within limit", body: `{"prompt":"hi"}`, limit: 64},
		{name: "exactly at limit", body: strings.Repeat("a", 16), limit: 16},
		{name: "over limit", body: strings.Repeat("a", 17), limit: 16, wantErr: types.MsgRequestTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			got, err := ReadBody(req, tt.limit)

			if tt.wantErr != "" {
				var gwErr *types.GatewayError
				if !errors.As(err, &gwErr) {
					t.Fatalf("expected GatewayError, got %v", err)
				}
				if gwErr.Kind != types.KindValidation || gwErr.Message != tt.wantErr {
					t.Errorf("got %s %q", gwErr.Kind, gwErr.Message)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.body {
				t.Errorf("body = %q", got)
			}
		})
	}
}

func TestReadBody_MaxBytesReader(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 100)))
	req.Body = http.MaxBytesReader(rec, req.Body, 10)

	_, err := ReadBody(req, 1000)
	var gwErr *types.GatewayError
	if !errors.As(err, &gwErr) || gwErr.Message != types.MsgRequestTooLarge {
		t.Errorf("err = %v, want request too large", err)
	}
}
