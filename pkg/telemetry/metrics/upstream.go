package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"interpill/gateway/pkg/config"
)

// UpstreamMetrics tracks calls to the Gemini and Resend APIs.
//
// Metrics:
//   - interpill_gateway_upstream_requests_total: calls by provider and outcome
//   - interpill_gateway_upstream_duration_seconds: call latency by provider
//   - interpill_gateway_provider_configured: 1 when a credential is present
type UpstreamMetrics struct {
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	configured *prometheus.GaugeVec
}

// NewUpstreamMetrics creates and registers upstream metrics with the provided registry.
func NewUpstreamMetrics(cfg config.MetricsConfig, registry *prometheus.Registry) *UpstreamMetrics {
	um := &UpstreamMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "upstream_requests_total",
				Help:      "Total number of provider calls by outcome",
			},
			[]string{"provider", "outcome"},
		),

		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "upstream_duration_seconds",
				Help:      "Provider call latency in seconds",
				Buckets:   cfg.DurationBuckets,
			},
			[]string{"provider"},
		),

		configured: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "provider_configured",
				Help:      "Provider credential present (1) or absent (0)",
			},
			[]string{"provider"},
		),
	}

	registry.MustRegister(
		um.requests,
		um.duration,
		um.configured,
	)

	return um
}

func (um *UpstreamMetrics) record(provider, outcome string, duration time.Duration) {
	um.requests.WithLabelValues(provider, outcome).Inc()
	um.duration.WithLabelValues(provider).Observe(duration.Seconds())
}
