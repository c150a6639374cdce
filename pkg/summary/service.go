package summary

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"interpill/gateway/pkg/providers/gemini"
	"interpill/gateway/pkg/proxy"
	"interpill/gateway/pkg/proxy/types"
)

// MockRoute labels mock responses served by this package.
const MockRoute = "summary"

// Generator produces text for a prompt. *gemini.Client implements it.
type Generator interface {
	Configured() bool
	Generate(ctx context.Context, p gemini.Prompt) (string, error)
}

// MockObserver counts canned responses.
type MockObserver interface {
	ObserveMock(route string)
}

// Service produces validated drug-interaction summaries.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	generator Generator
	forceMock bool
	mocks     MockObserver
	tracer    trace.Tracer
}

// Option customises a Service.
type Option func(*Service)

// WithForceMock makes every call return the canned summary.
func WithForceMock(force bool) Option {
	return func(s *Service) {
		s.forceMock = force
	}
}

// WithMockObserver reports every canned response to o.
func WithMockObserver(o MockObserver) Option {
	return func(s *Service) {
		s.mocks = o
	}
}

// New creates a summary service. g may be nil, in which case every
// non-mock call fails as not configured.
func New(g Generator, opts ...Option) *Service {
	s := &Service{
		generator: g,
		tracer:    otel.Tracer("interpill/gateway/summary"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ForceMock reports whether the operator switched the service to mock mode.
func (s *Service) ForceMock() bool {
	return s.forceMock
}

// Configured reports whether real summaries can be produced.
func (s *Service) Configured() bool {
	return s.generator != nil && s.generator.Configured()
}

// Summarize returns the summary for rawBody. When mock is set, or the
// service is forced into mock mode, the canned summary is returned without
// reading the body or contacting the provider. Otherwise exactly one
// provider call is made.
//
// Every error returned is a *types.GatewayError.
func (s *Service) Summarize(ctx context.Context, rawBody []byte, mock bool) (*Summary, error) {
	if mock || s.forceMock {
		if s.mocks != nil {
			s.mocks.ObserveMock(MockRoute)
		}
		return MockSummary(), nil
	}

	req, err := DerivePrompt(rawBody)
	if err != nil {
		return nil, err
	}

	if !s.Configured() {
		return nil, &types.GatewayError{
			Kind:    types.KindNotConfigured,
			Message: types.MsgNotConfigured,
			Note:    "AI provider not configured",
			Cause:   errors.New("gemini api key is empty"),
		}
	}

	ctx, span := s.tracer.Start(ctx, "summary.Summarize")
	defer span.End()

	answer, err := s.generator.Generate(ctx, BuildPrompt(req))
	if err != nil {
		gwErr := proxy.HandleError(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(gwErr.Kind))
		return nil, gwErr
	}

	candidate, ok := ExtractJSONBlock(answer)
	if !ok {
		candidate = strings.TrimSpace(answer)
	}

	result, err := ParseSummary(candidate)
	if err != nil {
		slog.WarnContext(ctx, "AI answer failed summary validation",
			"error", err,
			"answer_bytes", len(answer),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, types.MsgInvalidAIJSON)
		return nil, types.NewMalformedResponse(types.MsgInvalidAIJSON, err)
	}

	span.SetAttributes(attribute.String("summary.risk_level", string(result.RiskLevel)))
	slog.InfoContext(ctx, "summary produced",
		"risk_level", result.RiskLevel,
		"drugs", len(result.PerDrug),
	)

	return result, nil
}
