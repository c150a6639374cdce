// Package server ties configuration, services and middleware into the
// gateway's HTTP server and manages its lifecycle.
//
// # Routes
//
//   - GET  /, /health, /ping: plain-text liveness
//   - GET  /ready: provider configuration as JSON
//   - GET  /metrics: Prometheus metrics when enabled
//   - GET  /ai/summary?mock=1, POST /ai/summary: bearer token required
//   - POST /support/send: bearer token required
//
// # Basic Usage
//
//	collector := metrics.NewCollector(cfg.Telemetry.Metrics, nil)
//	services := server.NewServices(cfg, collector)
//	srv := server.NewServer(cfg, services, collector)
//	if err := srv.Start(ctx); err != nil {
//	    return err
//	}
//
// # Graceful Shutdown
//
// Start returns after ctx is cancelled or Stop is called. In-flight requests get up to server.shutdown_timeout to finish
// and idle upstream connections are closed.
package server
