package support

import (
	"context"
	"errors"
	"log/slog"

	"interpill/gateway/pkg/config"
	"interpill/gateway/pkg/providers/resend"
	"interpill/gateway/pkg/proxy"
	"interpill/gateway/pkg/proxy/types"
)

const (
	// StatusQueued is reported when the provider accepted the email.
	StatusQueued = "queued"

	// StatusOK is reported when no provider is configured.
	StatusOK = "ok"

	// MockNote accompanies StatusOK.
	MockNote = "email provider not configured (mock)"

	// MockRoute labels mock responses served by this package.
	MockRoute = "support"

	previewRunes = 300
)

// Sender delivers one email. *resend.Client implements it.
type Sender interface {
	Configured() bool
	Send(ctx context.Context, email *resend.Email) (*resend.SendResult, error)
}

// MockObserver counts canned responses.
type MockObserver interface {
	ObserveMock(route string)
}

// Accepted is a successful submission.
type Accepted struct {
	Status string
	Note   string

	// MessageID is the provider's id, empty in mock mode.
	MessageID string
}

// Service forwards support form submissions to the email provider.
type Service struct {
	sender Sender
	cfg    config.SupportConfig
	mocks  MockObserver
}

// Option customises a Service.
type Option func(*Service)

// WithMockObserver reports every mock acceptance to o.
func WithMockObserver(o MockObserver) Option {
	return func(s *Service) {
		s.mocks = o
	}
}

// New creates a support service. sender may be nil, which behaves like an
// unconfigured provider.
func New(sender Sender, cfg config.SupportConfig, opts ...Option) *Service {
	s := &Service{sender: sender, cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configured reports whether real emails are sent.
func (s *Service) Configured() bool {
	return s.sender != nil && s.sender.Configured()
}

// Send validates msg and forwards it. Without a provider key the message is
// accepted with status "ok" and a mock note and nothing is sent. Every error
// returned is a *types.GatewayError.
func (s *Service) Send(ctx context.Context, msg SupportMessage) (*Accepted, error) {
	msg = msg.Normalize()
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "support message received",
		"from", msg.From,
		"to", s.cfg.To,
		"message", preview(msg.Message),
	)

	if !s.Configured() {
		if s.mocks != nil {
			s.mocks.ObserveMock(MockRoute)
		}
		return &Accepted{Status: StatusOK, Note: MockNote}, nil
	}

	if s.cfg.To == "" {
		return nil, &types.GatewayError{
			Kind:    types.KindNotConfigured,
			Message: types.MsgNotConfigured,
			Note:    "support address not configured",
			Cause:   errors.New("support.to is empty"),
		}
	}

	result, err := s.sender.Send(ctx, BuildEmail(msg, s.cfg))
	if err != nil {
		return nil, proxy.MapUpstream(err, proxy.EmailRoute)
	}

	slog.InfoContext(ctx, "support email queued",
		"message_id", result.ID,
		"idempotency_key", result.IdempotencyKey,
	)

	return &Accepted{Status: StatusQueued, MessageID: result.ID}, nil
}

// BuildEmail renders a normalized message as the provider payload.
func BuildEmail(msg SupportMessage, cfg config.SupportConfig) *resend.Email {
	return &resend.Email{
		From:    cfg.From,
		To:      []string{cfg.To},
		Subject: cfg.Subject,
		Text:    msg.From + "\n\n" + msg.Message,
		ReplyTo: msg.From,
	}
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewRunes {
		return s
	}
	return string(r[:previewRunes]) + "…"
}
