// Package telemetry groups the gateway's observability packages:
//
//   - logging: slog setup, request-ID propagation and secret redaction
//   - metrics: Prometheus request, upstream and mock counters
//   - tracing: OpenTelemetry spans with an optional OTLP exporter
//
// Each subpackage is configured from config.TelemetryConfig and is usable
// with its zero configuration.
package telemetry
