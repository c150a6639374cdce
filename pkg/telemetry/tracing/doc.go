// Package tracing sets up OpenTelemetry for the gateway.
//
// New installs a global tracer provider and the W3C trace-context
// propagator. Tracing is off by default: the provider is then a noop and
// spans cost next to nothing. When enabled, spans go to an OTLP gRPC
// collector, sampled by parent and trace ID ratio.
//
// Spans are created around every inbound request (HTTPMiddleware), every
// provider call (package providers) and every summary.
//
//	telemetry:
//	  tracing:
//	    enabled: true
//	    endpoint: otel-collector:4317
//	    insecure: true
//	    sample_ratio: 0.25
package tracing
