package config

import (
	"strings"
	"testing"
)

func TestValidate_DefaultsAreValid(t *testing.T) {
	if err := Validate(Defaults()); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Server.ListenAddress = ""
	cfg.Gemini.BaseURL = "ftp://example.com"
	cfg.Telemetry.Logging.Format = "xml"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	validationErr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(validationErr.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(validationErr.Errors), validationErr.Errors)
	}
	if !strings.Contains(validationErr.Error(), "validation failed with 3 errors") {
		t.Errorf("error message should mention the count: %s", validationErr.Error())
	}
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		errorField string
	}{
		{
			name:       "listen address without port",
			mutate:     func(c *Config) { c.Server.ListenAddress = "localhost" },
			errorField: "server.listen_address",
		},
		{
			name:       "negative body limit",
			mutate:     func(c *Config) { c.Server.MaxBodyBytes = -1 },
			errorField: "server.max_body_bytes",
		},
		{
			name:       "empty resend base url",
			mutate:     func(c *Config) { c.Resend.BaseURL = "" },
			errorField: "resend.base_url",
		},
		{
			name:       "model with path separator",
			mutate:     func(c *Config) { c.Gemini.Model = "models/gemini" },
			errorField: "gemini.model",
		},
		{
			name:       "temperature out of range",
			mutate:     func(c *Config) { c.Gemini.Temperature = 3 },
			errorField: "gemini.temperature",
		},
		{
			name:       "bad support destination",
			mutate:     func(c *Config) { c.Support.To = "not an address" },
			errorField: "support.to",
		},
		{
			name:       "multi-line subject",
			mutate:     func(c *Config) { c.Support.Subject = "a\nBcc: x@y.z" },
			errorField: "support.subject",
		},
		{
			name:       "bad log level",
			mutate:     func(c *Config) { c.Telemetry.Logging.Level = "trace" },
			errorField: "telemetry.logging.level",
		},
		{
			name:       "metrics path without slash",
			mutate:     func(c *Config) { c.Telemetry.Metrics.Path = "metrics" },
			errorField: "telemetry.metrics.path",
		},
		{
			name:       "unsorted buckets",
			mutate:     func(c *Config) { c.Telemetry.Metrics.DurationBuckets = []float64{1, 0.5} },
			errorField: "telemetry.metrics.duration_buckets",
		},
		{
			name:       "tracing without endpoint",
			mutate:     func(c *Config) { c.Telemetry.Tracing.Enabled = true },
			errorField: "telemetry.tracing.endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			verr := err.(ValidationError)
			found := false
			for _, fe := range verr.Errors {
				if fe.Field == tt.errorField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error for %s, got %v", tt.errorField, verr.Errors)
			}
		})
	}
}

func TestValidate_MissingCredentialsAllowed(t *testing.T) {
	cfg := Defaults()
	cfg.Auth.Token = ""
	cfg.Gemini.APIKey = ""
	cfg.Resend.APIKey = ""
	cfg.Support.To = ""

	if err := Validate(cfg); err != nil {
		t.Errorf("missing credentials should not fail validation: %v", err)
	}
}
