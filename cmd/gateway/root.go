package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"interpill/gateway/pkg/cli"
	"interpill/gateway/pkg/config"
	"interpill/gateway/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Interpill AI gateway",
	Long: `The Interpill AI gateway authenticates app requests with a shared bearer
token and forwards them to the AI summary provider (Gemini) and the support
email provider (Resend), normalizing upstream failures into stable errors.

Configuration comes from defaults, an optional YAML file and the environment
(AI_PROXY_TOKEN, GEMINI_API_KEY, RESEND_API_KEY, SUPPORT_EMAIL, PORT, ...).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
}

// loadConfig loads and validates configuration, then applies flag
// overrides. Overrides are validated again so a bad --listen is caught
// before binding.
func loadConfig(lookup config.LookupFunc, listen string) (*config.Config, error) {
	cfg, err := config.Load(cfgFile, cfgFile != "", lookup)
	if err != nil {
		return nil, cli.NewConfigError(cfgFile, err)
	}

	if listen != "" {
		cfg.Server.ListenAddress = listen
	}
	if logLevel != "" {
		cfg.Telemetry.Logging.Level = logLevel
	}
	if listen != "" || logLevel != "" {
		if err := config.Validate(cfg); err != nil {
			return nil, cli.NewConfigError(cfgFile, err)
		}
	}

	return cfg, nil
}

// setupLogging installs the configured logger as the slog default.
func setupLogging(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(logging.FromConfig(cfg.Telemetry.Logging))
	if err != nil {
		return nil, cli.NewConfigError(cfgFile, err)
	}
	slog.SetDefault(logger)
	return logger, nil
}
