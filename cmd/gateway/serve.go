package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"interpill/gateway/pkg/cli"
	"interpill/gateway/pkg/server"
	"interpill/gateway/pkg/telemetry/metrics"
	"interpill/gateway/pkg/telemetry/tracing"
)

var serveFlags struct {
	listenAddress string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gateway server",
	Long: `Start the gateway HTTP server. It stops gracefully on SIGINT or SIGTERM.

Examples:
  # Start with environment configuration
  gateway serve

  # Start with a config file
  gateway serve --config /etc/interpill/gateway.yaml

  # Override listen address
  gateway serve --listen 127.0.0.1:9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(os.LookupEnv, serveFlags.listenAddress)
	if err != nil {
		return err
	}

	if _, err := setupLogging(cfg); err != nil {
		return err
	}

	tracer, err := tracing.New(cfg.Telemetry.Tracing, Version)
	if err != nil {
		return cli.NewConfigError(cfgFile, err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(ctx); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	collector := metrics.NewCollector(cfg.Telemetry.Metrics, nil)
	services := server.NewServices(cfg, collector)

	slog.Info("interpill gateway starting",
		"version", Version,
		"listen_address", cfg.Server.ListenAddress,
		"auth_configured", cfg.Auth.Token != "",
		"gemini_configured", cfg.GeminiConfigured(),
		"resend_configured", cfg.ResendConfigured(),
		"metrics_enabled", collector.Enabled(),
		"tracing_enabled", tracer.Enabled(),
	)
	if cfg.Auth.Token == "" {
		slog.Error("no bearer token configured (AI_PROXY_TOKEN or GATEWAY_API_KEY), protected routes will answer 500")
	}

	ctx, stop := cli.SignalContext(cmd.Context())
	defer stop()

	srv := server.NewServer(cfg, services, collector)
	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}
	return nil
}
