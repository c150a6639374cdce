package support_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testprov "interpill/gateway/internal/providers"
	"interpill/gateway/pkg/config"
	"interpill/gateway/pkg/providers/resend"
	"interpill/gateway/pkg/proxy/types"
	"interpill/gateway/pkg/support"
)

func supportConfig() config.SupportConfig {
	return config.SupportConfig{
		To:      "help@interpill.example",
		From:    config.DefaultSupportFrom,
		Subject: config.DefaultSupportSubject,
	}
}

func newService(t *testing.T, server *testprov.MockServer, apiKey string, cfg config.SupportConfig, opts ...support.Option) *support.Service {
	t.Helper()
	rc := testprov.TestResendConfig(server.URL())
	rc.APIKey = apiKey
	client := resend.New(rc)
	t.Cleanup(client.Close)
	return support.New(client, cfg, opts...)
}

type countingMocks struct {
	routes []string
}

func (c *countingMocks) ObserveMock(route string) {
	c.routes = append(c.routes, route)
}

func TestSend_Queued(t *testing.T) {
	server := testprov.NewMockServer()
	defer server.Close()
	server.SetResponse(testprov.ResendPath, testprov.MockResendAccepted("email-123"))

	svc := newService(t, server, "re_test", supportConfig())
	got, err := svc.Send(context.Background(), support.SupportMessage{From: " x@y.com ", Message: "  my app crashed \n"})
	require.NoError(t, err)

	assert.Equal(t, support.StatusQueued, got.Status)
	assert.Equal(t, "email-123", got.MessageID)
	assert.Empty(t, got.Note)

	req, ok := server.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "Bearer re_test", req.Header.Get("Authorization"))
	assert.NotEmpty(t, req.Header.Get("Idempotency-Key"))

	var email resend.Email
	require.NoError(t, json.Unmarshal(req.Body, &email))
	assert.Equal(t, resend.Email{
		From:    config.DefaultSupportFrom,
		To:      []string{"help@interpill.example"},
		Subject: config.DefaultSupportSubject,
		Text:    "x@y.com\n\nmy app crashed",
		ReplyTo: "x@y.com",
	}, email)
}

func TestSend_Mock(t *testing.T) {
	server := testprov.NewMockServer()
	defer server.Close()

	mocks := &countingMocks{}
	cfg := supportConfig()
	cfg.To = ""
	svc := newService(t, server, "", cfg, support.WithMockObserver(mocks))

	got, err := svc.Send(context.Background(), support.SupportMessage{From: "x@y.com", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, &support.Accepted{Status: "ok", Note: "email provider not configured (mock)"}, got)
	assert.Equal(t, 0, server.GetRequestCount())
	assert.Equal(t, []string{"support"}, mocks.routes)
}

func TestSend_NilSenderIsMock(t *testing.T) {
	got, err := support.New(nil, supportConfig()).Send(context.Background(), support.SupportMessage{From: "x@y.com", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, support.StatusOK, got.Status)
}

func TestSend_ValidationMakesNoCall(t *testing.T) {
	tests := []struct {
		name    string
		msg     support.SupportMessage
		wantMsg string
	}{
		{"blank from", support.SupportMessage{From: "", Message: "hi"}, "missing fields"},
		{"blank message", support.SupportMessage{From: "x@y.com", Message: "   "}, "missing fields"},
		{"bad address", support.SupportMessage{From: "not-an-email", Message: "hi"}, "invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testprov.NewMockServer()
			defer server.Close()

			_, err := newService(t, server, "re_test", supportConfig()).Send(context.Background(), tt.msg)
			var gwErr *types.GatewayError
			require.True(t, errors.As(err, &gwErr))
			assert.Equal(t, http.StatusBadRequest, gwErr.HTTPStatusCode())
			assert.Equal(t, tt.wantMsg, gwErr.Message)
			assert.Equal(t, 0, server.GetRequestCount())
		})
	}
}

func TestSend_MissingDestination(t *testing.T) {
	server := testprov.NewMockServer()
	defer server.Close()

	cfg := supportConfig()
	cfg.To = ""
	_, err := newService(t, server, "re_test", cfg).Send(context.Background(), support.SupportMessage{From: "x@y.com", Message: "hi"})

	var gwErr *types.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, types.KindNotConfigured, gwErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, gwErr.HTTPStatusCode())
	assert.Equal(t, 0, server.GetRequestCount())
}

func TestSend_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name     string
		response testprov.MockResponse
		wantKind types.ErrorKind
		wantNote string
	}{
		{
			name:     "validation rejected",
			response: testprov.MockResendError(http.StatusUnprocessableEntity, "validation_error", "Invalid `to` field."),
			wantKind: types.KindProviderRejected,
			wantNote: "Invalid `to` field.",
		},
		{
			name:     "rate limited is a rejection",
			response: testprov.MockResendError(http.StatusTooManyRequests, "rate_limit_exceeded", "Too many requests."),
			wantKind: types.KindProviderRejected,
			wantNote: "Too many requests.",
		},
		{
			name:     "bad key",
			response: testprov.MockResendError(http.StatusUnauthorized, "missing_api_key", "Missing API key."),
			wantKind: types.KindUpstreamAuthFailed,
		},
		{
			name:     "server error",
			response: testprov.MockServerError(),
			wantKind: types.KindUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testprov.NewMockServer()
			defer server.Close()
			server.SetResponse(testprov.ResendPath, tt.response)

			_, err := newService(t, server, "re_test", supportConfig()).Send(context.Background(), support.SupportMessage{From: "x@y.com", Message: "hi"})

			var gwErr *types.GatewayError
			require.True(t, errors.As(err, &gwErr))
			assert.Equal(t, tt.wantKind, gwErr.Kind)
			assert.Equal(t, http.StatusBadGateway, gwErr.HTTPStatusCode(), "every email upstream failure answers 502")
			if tt.wantNote != "" {
				assert.Equal(t, tt.wantNote, gwErr.Note)
			}
			assert.Equal(t, 1, server.GetRequestCount())
		})
	}
}
