package providers

import (
	"net/http"
	"time"
)

// UpstreamResult is the uninterpreted result of one outbound call. It lives
// only for the duration of the request that produced it.
type UpstreamResult struct {
	// StatusCode is the HTTP status returned by the provider.
	StatusCode int

	// Body is the raw response body, capped at ClientConfig.MaxResponseBytes.
	Body []byte

	// Header holds the response headers (Retry-After, request IDs).
	Header http.Header
}

// OK reports whether the status code is 2xx.
func (r *UpstreamResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// ClientConfig contains transport settings for one provider.
type ClientConfig struct {
	// Name is the provider name (Gemini or Resend).
	Name string

	// BaseURL is the provider API root without a trailing slash.
	BaseURL string

	// ConnectTimeout bounds TCP and TLS establishment.
	ConnectTimeout time.Duration

	// ReadTimeout bounds the whole exchange including reading the body.
	ReadTimeout time.Duration

	// MaxResponseBytes caps how much of a response body is read.
	// Default: 1MiB
	MaxResponseBytes int64

	// MaxIdleConnsPerHost sizes the keep-alive pool.
	// Default: 16
	MaxIdleConnsPerHost int

	// IdleConnTimeout closes idle keep-alive connections.
	// Default: 90s
	IdleConnTimeout time.Duration
}

func (c *ClientConfig) applyDefaults() {
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = 10 * time.Second
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 20 * time.Second
	}
	if c.MaxResponseBytes <= 0 {
		c.MaxResponseBytes = 1 << 20
	}
	if c.MaxIdleConnsPerHost <= 0 {
		c.MaxIdleConnsPerHost = 16
	}
	if c.IdleConnTimeout <= 0 {
		c.IdleConnTimeout = 90 * time.Second
	}
}
