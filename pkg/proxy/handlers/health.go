package handlers

import (
	"net/http"

	"interpill/gateway/pkg/proxy"
	"interpill/gateway/pkg/proxy/types"
)

// Liveness bodies.
const (
	IndexText  = "interpill-ai-gateway up"
	HealthText = "OK"
	PingText   = "pong"
)

// Provider names reported by the readiness endpoint.
const (
	ProviderGemini = "gemini"
	ProviderResend = "resend"
)

// Readiness statuses.
const (
	StatusReady         = "ready"
	StatusNotConfigured = "not_configured"
)

// TextHandler answers every request with 200 and a fixed plain-text body.
func TextHandler(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proxy.WriteText(w, http.StatusOK, text)
	}
}

// SummaryState is the part of the summary service readiness looks at.
type SummaryState interface {
	Configured() bool
	ForceMock() bool
}

// SupportState is the part of the support service readiness looks at.
type SupportState interface {
	Configured() bool
}

// ReadyHandler reports which providers are configured. It never probes the
// providers and never reveals credentials.
//
// The gateway is ready when the bearer token is set; a missing provider
// only switches its route to mock answers. Without a token every proxied
// route answers 500, so readiness answers 503.
type ReadyHandler struct {
	authConfigured bool
	summary        SummaryState
	support        SupportState
}

// NewReadyHandler creates the readiness handler.
func NewReadyHandler(authConfigured bool, summary SummaryState, support SupportState) *ReadyHandler {
	return &ReadyHandler{
		authConfigured: authConfigured,
		summary:        summary,
		support:        support,
	}
}

// ServeHTTP implements http.Handler.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := types.ReadyResponse{
		Status: StatusReady,
		Providers: map[string]types.ProviderState{
			ProviderGemini: h.geminiState(),
			ProviderResend: h.resendState(),
		},
	}

	status := http.StatusOK
	if !h.authConfigured {
		resp.Status = StatusNotConfigured
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, r, status, resp)
}

func (h *ReadyHandler) geminiState() types.ProviderState {
	configured := h.summary != nil && h.summary.Configured()
	forced := h.summary != nil && h.summary.ForceMock()

	state := types.ProviderState{Configured: configured, Mock: forced || !configured}
	switch {
	case forced:
		state.Detail = "mock mode forced by operator"
	case !configured:
		state.Detail = "AI provider not configured; only mock summaries are served"
	}
	return state
}

func (h *ReadyHandler) resendState() types.ProviderState {
	configured := h.support != nil && h.support.Configured()

	state := types.ProviderState{Configured: configured, Mock: !configured}
	if !configured {
		state.Detail = "email provider not configured; messages are accepted but not sent"
	}
	return state
}
