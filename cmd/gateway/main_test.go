package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"interpill/gateway/pkg/cli"
	"interpill/gateway/pkg/config"
)

func lookupFrom(env map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadConfig(t *testing.T) {
	origFile, origLevel := cfgFile, logLevel
	t.Cleanup(func() { cfgFile, logLevel = origFile, origLevel })

	tests := []struct {
		name       string
		env        map[string]string
		listen     string
		level      string
		wantListen string
		wantLevel  string
		wantErr    bool
	}{
		{
			name:       "PORT from environment",
			env:        map[string]string{"PORT": "9000"},
			wantListen: "0.0.0.0:9000",
			wantLevel:  "info",
		},
		{
			name:       "flags override environment",
			env:        map[string]string{"PORT": "9000", "GATEWAY_LOG_LEVEL": "warn"},
			listen:     "127.0.0.1:7000",
			level:      "debug",
			wantListen: "127.0.0.1:7000",
			wantLevel:  "debug",
		},
		{
			name:    "invalid listen flag",
			listen:  "no-port",
			wantErr: true,
		},
		{
			name:    "invalid log level flag",
			level:   "loud",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile = ""
			logLevel = tt.level

			cfg, err := loadConfig(lookupFrom(tt.env), tt.listen)
			if tt.wantErr {
				var cfgErr *cli.ConfigError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("error = %v, want *cli.ConfigError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() error = %v", err)
			}
			if cfg.Server.ListenAddress != tt.wantListen {
				t.Errorf("listen = %q, want %q", cfg.Server.ListenAddress, tt.wantListen)
			}
			if cfg.Telemetry.Logging.Level != tt.wantLevel {
				t.Errorf("level = %q, want %q", cfg.Telemetry.Logging.Level, tt.wantLevel)
			}
		})
	}
}

func TestLoadConfig_MissingFileIsRequired(t *testing.T) {
	origFile := cfgFile
	t.Cleanup(func() { cfgFile = origFile })

	cfgFile = t.TempDir() + "/missing.yaml"
	_, err := loadConfig(lookupFrom(nil), "")
	if cli.ExitCode(err) != cli.ExitConfigError {
		t.Errorf("ExitCode(%v) = %d, want %d", err, cli.ExitCode(err), cli.ExitConfigError)
	}
}

func TestCheckReport(t *testing.T) {
	cfg := config.Defaults()
	cfg.Auth.Token = "super-secret-token"
	cfg.Gemini.APIKey = "AIzaSyD-not-a-real-key-000000000000000"
	cfg.Resend.APIKey = "re_live_123456789"
	cfg.Support.To = "helpdesk@interpill.example"

	report := newCheckReport(cfg)

	if !report.AuthConfigured || !report.GeminiConfigured || !report.ResendConfigured {
		t.Errorf("report = %+v", report)
	}
	if report.SupportTo != "h***@interpill.example" {
		t.Errorf("SupportTo = %q", report.SupportTo)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", report.Warnings)
	}

	for _, format := range []cli.OutputFormat{cli.FormatText, cli.FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := cli.NewFormatter(format).FormatTo(&buf, report); err != nil {
				t.Fatal(err)
			}
			out := buf.String()
			for _, secret := range []string{cfg.Auth.Token, cfg.Gemini.APIKey, cfg.Resend.APIKey, cfg.Support.To} {
				if strings.Contains(out, secret) {
					t.Errorf("output leaks %q:\n%s", secret, out)
				}
			}
			if format == cli.FormatJSON && !json.Valid(buf.Bytes()) {
				t.Errorf("invalid JSON:\n%s", out)
			}
		})
	}
}

func TestCheckReport_Warnings(t *testing.T) {
	cfg := config.Defaults()
	cfg.Resend.APIKey = "re_live_123456789"

	report := newCheckReport(cfg)

	want := []string{
		"no bearer token: protected routes answer 500",
		"no Gemini API key: only mock summaries are served",
		"no support address: support sends fail as not configured",
	}
	if len(report.Warnings) != len(want) {
		t.Fatalf("warnings = %v", report.Warnings)
	}
	for i := range want {
		if report.Warnings[i] != want[i] {
			t.Errorf("warning %d = %q, want %q", i, report.Warnings[i], want[i])
		}
	}
	if !strings.Contains(report.String(), "! no bearer token") {
		t.Errorf("text output missing warning:\n%s", report.String())
	}
}

func TestVersionCommand(t *testing.T) {
	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })
	versionCmd.Run(versionCmd, nil)

	if !strings.HasPrefix(buf.String(), "Interpill AI gateway "+Version) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "check", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered: %v", name, err)
		}
	}
}
