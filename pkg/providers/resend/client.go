package resend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"interpill/gateway/pkg/config"
	"interpill/gateway/pkg/providers"
)

// Email is the Resend send-email body.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// SendResult is the accepted-email answer.
type SendResult struct {
	// ID is the provider message id. It may be empty if the provider omits it.
	ID string `json:"id"`

	// IdempotencyKey is the key sent with the request.
	IdempotencyKey string `json:"-"`
}

// Client calls the Resend emails endpoint.
type Client struct {
	http   *providers.HTTPClient
	apiKey string
	newKey func() string
}

// New creates a Resend client from configuration.
func New(cfg config.ResendConfig, opts ...providers.ClientOption) *Client {
	return &Client{
		http: providers.NewHTTPClient(providers.ClientConfig{
			Name:           providers.Resend,
			BaseURL:        cfg.BaseURL,
			ConnectTimeout: cfg.ConnectTimeout,
			ReadTimeout:    cfg.ReadTimeout,
		}, opts...),
		apiKey: cfg.APIKey,
		newKey: uuid.NewString,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Send submits one email with a fresh uuid Idempotency-Key.
func (c *Client) Send(ctx context.Context, email *Email) (*SendResult, error) {
	body, err := json.Marshal(email)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal email: %w", err)
	}

	key := c.newKey()
	headers := map[string]string{
		"Authorization":   "Bearer " + c.apiKey,
		"Idempotency-Key": key,
	}

	res, err := c.http.Call(ctx, http.MethodPost, "/emails", body, headers)
	if err != nil {
		return nil, err
	}

	result := &SendResult{IdempotencyKey: key}
	// Resend answers {"id": "..."}; an unreadable success body is still a
	// queued email.
	_ = json.Unmarshal(res.Body, result)

	return result, nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.http.Close()
}
