package providers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "interpill/gateway/providers"

// HTTPClient issues single-attempt HTTP calls to one provider.
// It owns a pooled transport whose dial timeout is the connect timeout and
// whose client timeout is the read timeout. There are no retries: a failure
// is reported to the caller immediately.
//
// HTTPClient is safe for concurrent use.
type HTTPClient struct {
	config   ClientConfig
	client   *http.Client
	observer Observer
	tracer   trace.Tracer
}

// ClientOption customises an HTTPClient.
type ClientOption func(*HTTPClient)

// WithObserver reports every call to o.
func WithObserver(o Observer) ClientOption {
	return func(c *HTTPClient) {
		c.observer = o
	}
}

// WithHTTPClient replaces the underlying *http.Client. Tests use it to
// point at an httptest server with custom transports.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// NewHTTPClient creates a client with connection pooling and the configured
// timeouts.
func NewHTTPClient(config ClientConfig, opts ...ClientOption) *HTTPClient {
	config.applyDefaults()
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	dialer := &net.Dialer{
		Timeout:   config.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   config.ConnectTimeout,
		ResponseHeaderTimeout: config.ReadTimeout,
		MaxIdleConns:          config.MaxIdleConnsPerHost * 2,
		MaxIdleConnsPerHost:   config.MaxIdleConnsPerHost,
		IdleConnTimeout:       config.IdleConnTimeout,
		ForceAttemptHTTP2:     true,
	}

	c := &HTTPClient{
		config: config,
		client: &http.Client{
			Transport: transport,
			Timeout:   config.ReadTimeout,
		},
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the provider name.
func (c *HTTPClient) Name() string {
	return c.config.Name
}

// BaseURL returns the provider API root.
func (c *HTTPClient) BaseURL() string {
	return c.config.BaseURL
}

// Do sends one request and returns the raw result. Only transport failures
// are returned as errors (always *UnavailableError); non-2xx statuses come
// back in the result for the caller to classify.
//
// path is appended to the base URL. The request carries ctx, so a caller
// that goes away cancels the call.
func (c *HTTPClient) Do(ctx context.Context, method, path string, body []byte, headers map[string]string) (*UpstreamResult, error) {
	url := c.config.BaseURL + path

	ctx, span := c.tracer.Start(ctx, "upstream "+c.config.Name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("provider.name", c.config.Name),
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if req.Header.Get("Content-Type") == "" && body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	slog.DebugContext(ctx, "sending request to provider",
		"provider", c.config.Name,
		"method", method,
		"path", path,
	)

	resp, err := c.client.Do(req)
	if err != nil {
		uerr := &UnavailableError{
			Provider: c.config.Name,
			Timeout:  isTimeout(err),
			Cause:    err,
		}
		span.RecordError(uerr)
		span.SetStatus(codes.Error, "transport failure")
		return nil, uerr
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxResponseBytes))
	if err != nil {
		uerr := &UnavailableError{
			Provider: c.config.Name,
			Timeout:  isTimeout(err),
			Cause:    fmt.Errorf("failed to read response: %w", err),
		}
		span.RecordError(uerr)
		span.SetStatus(codes.Error, "read failure")
		return nil, uerr
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}

	return &UpstreamResult{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		Header:     resp.Header,
	}, nil
}

// Call is Do followed by MapResult: it returns the result on 2xx and a typed
// provider error otherwise. The outcome and latency are reported to the
// observer.
func (c *HTTPClient) Call(ctx context.Context, method, path string, body []byte, headers map[string]string) (*UpstreamResult, error) {
	start := time.Now()

	res, err := c.Do(ctx, method, path, body, headers)
	if err == nil {
		err = MapResult(c.config.Name, res)
	}

	c.observe(Outcome(err), time.Since(start))

	if err != nil {
		level := slog.LevelWarn
		var unavailable *UnavailableError
		if errors.As(err, &unavailable) {
			level = slog.LevelError
		}
		slog.Log(ctx, level, "provider call failed",
			"provider", c.config.Name,
			"path", path,
			"error", err,
		)
		return nil, err
	}
	return res, nil
}

func (c *HTTPClient) observe(outcome string, d time.Duration) {
	if c.observer != nil {
		c.observer.ObserveUpstream(c.config.Name, outcome, d)
	}
}

// Close releases idle connections.
func (c *HTTPClient) Close() {
	c.client.CloseIdleConnections()
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
