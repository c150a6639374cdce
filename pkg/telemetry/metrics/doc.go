// Package metrics exposes the gateway's Prometheus metrics.
//
// A single Collector registers request, upstream and mock counters on its
// own registry and serves them through Handler, mounted at the configured
// path (default /metrics):
//
//	collector := metrics.NewCollector(cfg.Telemetry.Metrics, nil)
//	client := gemini.New(cfg.Gemini, providers.WithObserver(collector))
//	r.Handle("/metrics", collector.Handler())
//
// Route labels are chi route patterns, so cardinality is bounded by the
// router.
package metrics
