package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"interpill/gateway/pkg/cli"
	"interpill/gateway/pkg/config"
	"interpill/gateway/pkg/telemetry/logging"
)

var checkFlags struct {
	output string
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and show what is configured",
	Long: `Load and validate configuration the way serve does, then print which
providers are configured. Secrets are never printed; addresses are redacted.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.output, "output", "o", "text", "output format (text, json)")
}

// checkReport is the configuration summary printed by check.
type checkReport struct {
	ListenAddress    string   `json:"listen_address"`
	AuthConfigured   bool     `json:"auth_configured"`
	GeminiConfigured bool     `json:"gemini_configured"`
	GeminiModel      string   `json:"gemini_model"`
	ForceMock        bool     `json:"force_mock"`
	ResendConfigured bool     `json:"resend_configured"`
	SupportTo        string   `json:"support_to,omitempty"`
	SupportFrom      string   `json:"support_from"`
	MetricsPath      string   `json:"metrics_path,omitempty"`
	TracingEndpoint  string   `json:"tracing_endpoint,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
}

func newCheckReport(cfg *config.Config) checkReport {
	redactor := logging.NewRedactor()

	r := checkReport{
		ListenAddress:    cfg.Server.ListenAddress,
		AuthConfigured:   cfg.Auth.Token != "",
		GeminiConfigured: cfg.GeminiConfigured(),
		GeminiModel:      cfg.Gemini.Model,
		ForceMock:        cfg.Gemini.ForceMock,
		ResendConfigured: cfg.ResendConfigured(),
		SupportFrom:      redactor.RedactString(cfg.Support.From),
	}
	if cfg.Support.To != "" {
		r.SupportTo = logging.RedactEmail(cfg.Support.To)
	}
	if cfg.Telemetry.Metrics.Enabled {
		r.MetricsPath = cfg.Telemetry.Metrics.Path
	}
	if cfg.Telemetry.Tracing.Enabled {
		r.TracingEndpoint = cfg.Telemetry.Tracing.Endpoint
	}

	if !r.AuthConfigured {
		r.Warnings = append(r.Warnings, "no bearer token: protected routes answer 500")
	}
	if !r.GeminiConfigured {
		r.Warnings = append(r.Warnings, "no Gemini API key: only mock summaries are served")
	}
	if !r.ResendConfigured {
		r.Warnings = append(r.Warnings, "no Resend API key: support messages are accepted but not sent")
	} else if cfg.Support.To == "" {
		r.Warnings = append(r.Warnings, "no support address: support sends fail as not configured")
	}
	return r
}

func (r checkReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✓ Configuration valid\n")
	fmt.Fprintf(&b, "Listen address: %s\n", r.ListenAddress)
	fmt.Fprintf(&b, "Bearer token:   %s\n", configured(r.AuthConfigured))
	fmt.Fprintf(&b, "Gemini:         %s (model %s)\n", configured(r.GeminiConfigured), r.GeminiModel)
	if r.ForceMock {
		fmt.Fprintf(&b, "                mock mode forced\n")
	}
	fmt.Fprintf(&b, "Resend:         %s\n", configured(r.ResendConfigured))
	if r.SupportTo != "" {
		fmt.Fprintf(&b, "Support to:     %s\n", r.SupportTo)
	}
	fmt.Fprintf(&b, "Support from:   %s\n", r.SupportFrom)
	if r.MetricsPath != "" {
		fmt.Fprintf(&b, "Metrics:        %s\n", r.MetricsPath)
	}
	if r.TracingEndpoint != "" {
		fmt.Fprintf(&b, "Tracing:        %s\n", r.TracingEndpoint)
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "! %s\n", w)
	}
	return strings.TrimRight(b.String(), "\n")
}

func configured(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(checkFlags.output)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(os.LookupEnv, "")
	if err != nil {
		return err
	}

	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), newCheckReport(cfg))
}
