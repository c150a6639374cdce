package server

import (
	"log/slog"

	"interpill/gateway/pkg/config"
	"interpill/gateway/pkg/providers"
	"interpill/gateway/pkg/providers/gemini"
	"interpill/gateway/pkg/providers/resend"
	"interpill/gateway/pkg/summary"
	"interpill/gateway/pkg/support"
	"interpill/gateway/pkg/telemetry/metrics"
)

// Services holds the gateway's two proxied operations and the provider
// clients behind them.
type Services struct {
	Summary *summary.Service
	Support *support.Service

	gemini *gemini.Client
	resend *resend.Client
}

// NewServices builds the provider clients and services from cfg. Upstream
// calls and mock answers are reported to collector, which may be nil.
func NewServices(cfg *config.Config, collector *metrics.Collector) *Services {
	var observer providers.Observer
	if collector != nil {
		observer = collector
	}

	geminiClient := gemini.New(cfg.Gemini, providers.WithObserver(observer))
	resendClient := resend.New(cfg.Resend, providers.WithObserver(observer))

	summaryOpts := []summary.Option{summary.WithForceMock(cfg.Gemini.ForceMock)}
	supportOpts := []support.Option{}
	if collector != nil {
		summaryOpts = append(summaryOpts, summary.WithMockObserver(collector))
		supportOpts = append(supportOpts, support.WithMockObserver(collector))

		collector.SetProviderConfigured(providers.Gemini, geminiClient.Configured())
		collector.SetProviderConfigured(providers.Resend, resendClient.Configured())
	}

	s := &Services{
		Summary: summary.New(geminiClient, summaryOpts...),
		Support: support.New(resendClient, cfg.Support, supportOpts...),
		gemini:  geminiClient,
		resend:  resendClient,
	}

	if !s.Summary.Configured() {
		slog.Warn("gemini API key not set, AI summaries are mock only")
	}
	if cfg.Gemini.ForceMock {
		slog.Warn("AI summaries forced to mock mode")
	}
	if !s.Support.Configured() {
		slog.Warn("resend API key not set, support emails are accepted but not sent")
	} else if cfg.Support.To == "" {
		slog.Warn("support address not set, support sends will fail as not configured")
	}

	return s
}

// Close releases idle upstream connections.
func (s *Services) Close() {
	if s.gemini != nil {
		s.gemini.Close()
	}
	if s.resend != nil {
		s.resend.Close()
	}
}
