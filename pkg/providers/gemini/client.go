package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"interpill/gateway/pkg/config"
	"interpill/gateway/pkg/providers"
)

// Client calls the Gemini generateContent endpoint.
type Client struct {
	http        *providers.HTTPClient
	apiKey      string
	model       string
	temperature float64
}

// New creates a Gemini client from configuration. It does not check that an
// API key is present; callers decide what an unconfigured provider means.
func New(cfg config.GeminiConfig, opts ...providers.ClientOption) *Client {
	hc := providers.NewHTTPClient(providers.ClientConfig{
		Name:           providers.Gemini,
		BaseURL:        cfg.BaseURL,
		ConnectTimeout: cfg.ConnectTimeout,
		ReadTimeout:    cfg.ReadTimeout,
	}, opts...)

	slog.Debug("gemini client initialized",
		"base_url", cfg.BaseURL,
		"model", cfg.Model,
	)

	return &Client{
		http:        hc,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Generate sends one generateContent call and returns the generated text.
// Errors are the typed errors of package providers.
func (c *Client) Generate(ctx context.Context, p Prompt) (string, error) {
	body, err := json.Marshal(BuildRequest(p, c.temperature, true))
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	headers := map[string]string{
		"x-goog-api-key": c.apiKey,
	}

	res, err := c.http.Call(ctx, http.MethodPost, c.path(), body, headers)
	if err != nil {
		return "", err
	}

	return ExtractText(res.Body)
}

// Close releases idle connections.
func (c *Client) Close() {
	c.http.Close()
}

func (c *Client) path() string {
	return "/v1beta/models/" + url.PathEscape(c.model) + ":generateContent"
}
