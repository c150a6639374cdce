package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LookupFunc resolves an environment variable. os.LookupEnv satisfies it;
// tests pass a map-backed implementation instead of mutating the process
// environment.
type LookupFunc func(key string) (string, bool)

// Load builds the process configuration. The loading sequence is:
//
//  1. Default values
//  2. YAML file at path, if path is non-empty (a missing file is an error
//     only when required is true)
//  3. Environment variables resolved through lookup
//  4. Validation
func Load(path string, required bool, lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := Defaults()
	if path != "" {
		err := decodeFile(path, cfg)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return nil, err
		}
	}

	ApplyEnv(cfg, lookup)
	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	return nil
}

// ApplyEnv applies environment overrides. The provider variables keep the
// names operators already deploy with (AI_PROXY_TOKEN, GEMINI_API_KEY,
// RESEND_API_KEY, SUPPORT_EMAIL, PORT, ...); tuning knobs use a GATEWAY_
// prefix. Environment variables always take precedence over the file.
func ApplyEnv(cfg *Config, lookup LookupFunc) {
	get := func(key string) string {
		v, ok := lookup(key)
		if !ok {
			return ""
		}
		return strings.TrimSpace(v)
	}

	// First non-empty wins.
	if tok := firstNonEmpty(get("AI_PROXY_TOKEN"), get("GATEWAY_API_KEY")); tok != "" {
		cfg.Auth.Token = tok
	}

	// Server
	if port := get("PORT"); port != "" {
		cfg.Server.ListenAddress = net.JoinHostPort("0.0.0.0", port)
	}
	if val := get("GATEWAY_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	setDuration(get("GATEWAY_READ_TIMEOUT"), &cfg.Server.ReadTimeout)
	setDuration(get("GATEWAY_WRITE_TIMEOUT"), &cfg.Server.WriteTimeout)
	setDuration(get("GATEWAY_SHUTDOWN_TIMEOUT"), &cfg.Server.ShutdownTimeout)

	// Gemini
	if val := get("GEMINI_API_KEY"); val != "" {
		cfg.Gemini.APIKey = val
	}
	if val := get("GEMINI_MODEL"); val != "" {
		cfg.Gemini.Model = val
	}
	if val := get("GEMINI_BASE_URL"); val != "" {
		cfg.Gemini.BaseURL = val
	}
	setBool(get("AI_MOCK"), &cfg.Gemini.ForceMock)
	setDuration(get("GATEWAY_UPSTREAM_CONNECT_TIMEOUT"), &cfg.Gemini.ConnectTimeout, &cfg.Resend.ConnectTimeout)
	setDuration(get("GATEWAY_UPSTREAM_READ_TIMEOUT"), &cfg.Gemini.ReadTimeout, &cfg.Resend.ReadTimeout)

	// Resend
	if val := get("RESEND_API_KEY"); val != "" {
		cfg.Resend.APIKey = val
	}
	if val := get("RESEND_BASE_URL"); val != "" {
		cfg.Resend.BaseURL = val
	}

	// Support
	if val := get("SUPPORT_EMAIL"); val != "" {
		cfg.Support.To = val
	}
	if val := get("SUPPORT_FROM"); val != "" {
		cfg.Support.From = val
	}

	// Telemetry
	if val := get("GATEWAY_LOG_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := get("GATEWAY_LOG_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	setBool(get("GATEWAY_METRICS_ENABLED"), &cfg.Telemetry.Metrics.Enabled)
	setBool(get("GATEWAY_TRACING_ENABLED"), &cfg.Telemetry.Tracing.Enabled)
	if val := get("GATEWAY_TRACING_ENDPOINT"); val != "" {
		cfg.Telemetry.Tracing.Endpoint = val
	}
	if val := get("GATEWAY_TRACING_SAMPLE_RATIO"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Telemetry.Tracing.SampleRatio = f
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func setDuration(val string, targets ...*time.Duration) {
	if val == "" {
		return
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return
	}
	for _, t := range targets {
		*t = d
	}
}

// setBool accepts anything strconv.ParseBool does, so AI_MOCK=1 and
// AI_MOCK=true behave the same. Unparseable values are ignored.
func setBool(val string, target *bool) {
	if val == "" {
		return
	}
	if b, err := strconv.ParseBool(val); err == nil {
		*target = b
	}
}
