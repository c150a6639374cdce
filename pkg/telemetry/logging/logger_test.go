package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"interpill/gateway/pkg/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"valid JSON config", Config{Level: "info", Format: "json", RedactPII: true}, false},
		{"valid text config", Config{Level: "debug", Format: "text"}, false},
		{"defaults", Config{}, false},
		{"uppercase level", Config{Level: "WARN"}, false},
		{"invalid log level", Config{Level: "invalid", Format: "json"}, true},
		{"invalid format", Config{Level: "info", Format: "console"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.config.Writer = buf

			logger, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && logger == nil {
				t.Error("New() returned nil logger")
			}
		})
	}
}

func TestNew_LevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "warn", Format: "json", Writer: buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn record missing")
	}
}

func TestNew_RequestIDAndRedaction(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "json", RedactPII: true, Writer: buf})
	if err != nil {
		t.Fatal(err)
	}

	ctx := WithRequestID(context.Background(), "req-42")
	logger.InfoContext(ctx, "support message received",
		"from", "alice@example.com",
		"header", "Bearer s3cr3t-token",
		"token", "abcdefgh",
	)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log line is not JSON: %v: %s", err, buf.String())
	}

	want := map[string]string{
		"request_id": "req-42",
		"from":       "a***@example.com",
		"header":     "Bearer ***",
		"token":      "abcd***",
	}
	for key, value := range want {
		if record[key] != value {
			t.Errorf("%s = %v, want %s", key, record[key], value)
		}
	}
}

func TestNew_NoRedaction(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, _ := New(Config{Format: "text", Writer: buf})

	logger.Info("msg", "from", "alice@example.com")

	if !strings.Contains(buf.String(), "alice@example.com") {
		t.Errorf("redaction applied although disabled: %s", buf.String())
	}
}

func TestHandler_WithAttrsRedacts(t *testing.T) {
	buf := &bytes.Buffer{}
	base := slog.NewJSONHandler(buf, nil)
	logger := slog.New(NewHandler(base, NewRedactor())).With("api_key", "AIzaSyD-1234567890abcdef")

	logger.Info("client ready")

	if strings.Contains(buf.String(), "1234567890") {
		t.Errorf("key leaked: %s", buf.String())
	}
}

func TestFromConfig(t *testing.T) {
	got := FromConfig(config.LoggingConfig{Level: "debug", Format: "text", AddSource: true, RedactPII: true})
	if got.Level != "debug" || got.Format != "text" || !got.AddSource || !got.RedactPII {
		t.Errorf("FromConfig = %+v", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
}
