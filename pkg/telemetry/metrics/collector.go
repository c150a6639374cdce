package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"interpill/gateway/pkg/config"
)

// Collector owns the gateway's Prometheus metrics. It implements
// providers.Observer and the MockObserver interfaces of the summary and
// support services, so one value is handed to every component.
//
// A Collector built from a disabled configuration accepts every call and
// records nothing.
type Collector struct {
	config   config.MetricsConfig
	registry *prometheus.Registry

	requests *RequestMetrics
	upstream *UpstreamMetrics
}

// NewCollector creates a collector registering on registry. A nil registry
// gets a fresh one with the Go and process collectors.
func NewCollector(cfg config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}
	if len(cfg.DurationBuckets) == 0 {
		cfg.DurationBuckets = append([]float64(nil), config.DefaultDurationBuckets...)
	}

	c := &Collector{
		config:   cfg,
		registry: registry,
	}
	if cfg.Enabled {
		c.requests = NewRequestMetrics(cfg, registry)
		c.upstream = NewUpstreamMetrics(cfg, registry)
	}
	return c
}

// Enabled reports whether metrics are being recorded.
func (c *Collector) Enabled() bool {
	return c != nil && c.config.Enabled
}

// Registry returns the registry metrics are registered on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordRequest records one completed inbound request. route is the
// matched route pattern, never the raw path.
func (c *Collector) RecordRequest(route, method string, status int, duration time.Duration) {
	if !c.Enabled() {
		return
	}
	c.requests.record(route, method, strconv.Itoa(status), duration)
}

// ObserveUpstream implements providers.Observer.
func (c *Collector) ObserveUpstream(provider, outcome string, duration time.Duration) {
	if !c.Enabled() {
		return
	}
	c.upstream.record(provider, outcome, duration)
}

// ObserveMock counts one canned response served on route.
func (c *Collector) ObserveMock(route string) {
	if !c.Enabled() {
		return
	}
	c.requests.mockResponses.WithLabelValues(route).Inc()
}

// SetProviderConfigured publishes whether a provider credential is present.
func (c *Collector) SetProviderConfigured(provider string, configured bool) {
	if !c.Enabled() {
		return
	}
	v := 0.0
	if configured {
		v = 1
	}
	c.upstream.configured.WithLabelValues(provider).Set(v)
}

// Handler returns the Prometheus exposition endpoint for the registry.
func (c *Collector) Handler() http.Handler {
	return handlerFor(c.registry)
}
