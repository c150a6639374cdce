package config

import "time"

// Config is the root configuration structure for the gateway.
// It is loaded once at startup and treated as read-only afterwards; every
// component receives the parts it needs through its constructor.
type Config struct {
	// Server contains HTTP listener configuration including listen address,
	// timeouts, body limits, and CORS.
	Server ServerConfig `yaml:"server"`

	// Auth contains the shared bearer token that protects proxied routes.
	Auth AuthConfig `yaml:"auth"`

	// Gemini contains configuration for the generative-text provider used by
	// the AI summary route.
	Gemini GeminiConfig `yaml:"gemini"`

	// Resend contains configuration for the transactional email provider used
	// by the support route.
	Resend ResendConfig `yaml:"resend"`

	// Support contains the addresses and subject used for support emails.
	Support SupportConfig `yaml:"support"`

	// Telemetry contains configuration for logging, metrics, and tracing.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port". Default: "0.0.0.0:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. It must exceed the provider read timeouts.
	// Default: 45s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the keep-alive idle timeout.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 15s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits request header size.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// MaxBodyBytes limits inbound request bodies on POST routes.
	// Default: 65536 (64KiB)
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// CORS contains Cross-Origin Resource Sharing configuration.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig contains CORS configuration.
type CORSConfig struct {
	Enabled        bool     `yaml:"enabled"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
	ExposedHeaders []string `yaml:"exposed_headers"`
	MaxAge         int      `yaml:"max_age"`
}

// AuthConfig contains inbound authentication settings.
type AuthConfig struct {
	// Token is the shared bearer token. Populated from AI_PROXY_TOKEN or,
	// when that is empty, GATEWAY_API_KEY. An empty token means the gateway
	// is not configured and protected routes answer 500.
	Token string `yaml:"token"`
}

// UpstreamConfig contains transport settings shared by provider clients.
type UpstreamConfig struct {
	// BaseURL is the provider API root.
	BaseURL string `yaml:"base_url"`

	// APIKey is the provider credential. Empty means "not configured".
	APIKey string `yaml:"api_key"`

	// ConnectTimeout bounds TCP/TLS connection establishment.
	// Default: 10s
	ConnectTimeout time.Duration `yaml:"connect_timeout"`

	// ReadTimeout bounds the whole exchange once connected.
	// Default: 20s
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

// GeminiConfig contains generative-text provider settings.
type GeminiConfig struct {
	UpstreamConfig `yaml:",inline"`

	// Model is the model identifier used in the generateContent path.
	// Default: "gemini-1.5-flash"
	Model string `yaml:"model"`

	// Temperature is passed through as generationConfig.temperature.
	// Default: 0.2
	Temperature float64 `yaml:"temperature"`

	// ForceMock makes every summary request return the canned summary
	// without contacting the provider.
	ForceMock bool `yaml:"force_mock"`
}

// ResendConfig contains email provider settings.
type ResendConfig struct {
	UpstreamConfig `yaml:",inline"`
}

// SupportConfig contains support-email addressing.
type SupportConfig struct {
	// To is the destination mailbox. There is no default: when the email
	// provider is configured and To is empty, sends fail as not configured.
	To string `yaml:"to"`

	// From is the fixed sending address.
	// Default: "Interpill Support <onboarding@resend.dev>"
	From string `yaml:"from"`

	// Subject is the fixed subject line.
	// Default: "Interpill support request"
	Subject string `yaml:"subject"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error". Default: "info"
	Level string `yaml:"level"`

	// Format is "json" or "text". Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file:line in log records.
	AddSource bool `yaml:"add_source"`

	// RedactPII masks bearer tokens, API keys and email addresses in log
	// attributes. Default: true
	RedactPII bool `yaml:"redact_pii"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and exposed.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path of the metrics endpoint. Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the Prometheus metric namespace. Default: "interpill"
	Namespace string `yaml:"namespace"`

	// Subsystem is the Prometheus metric subsystem. Default: "gateway"
	Subsystem string `yaml:"subsystem"`

	// DurationBuckets are the histogram buckets, in seconds, for request and
	// upstream latencies.
	DurationBuckets []float64 `yaml:"duration_buckets"`
}

// TracingConfig contains OpenTelemetry tracing configuration.
type TracingConfig struct {
	// Enabled turns on span export. When false a noop tracer is used.
	Enabled bool `yaml:"enabled"`

	// Endpoint is the OTLP gRPC collector address (host:port).
	Endpoint string `yaml:"endpoint"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure"`

	// SampleRatio is the parent-based trace ID ratio. Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio"`

	// ServiceName is reported as service.name. Default: "interpill-ai-gateway"
	ServiceName string `yaml:"service_name"`
}

// GeminiConfigured reports whether the AI provider credential is present.
func (c *Config) GeminiConfigured() bool {
	return c.Gemini.APIKey != ""
}

// ResendConfigured reports whether the email provider credential is present.
func (c *Config) ResendConfigured() bool {
	return c.Resend.APIKey != ""
}
