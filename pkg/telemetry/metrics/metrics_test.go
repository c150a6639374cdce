package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"interpill/gateway/pkg/config"
	"interpill/gateway/pkg/providers"
)

// Helper function to create test config
func testConfig() config.MetricsConfig {
	return config.MetricsConfig{
		Enabled:         true,
		Namespace:       "test",
		Subsystem:       "gateway",
		DurationBuckets: []float64{0.1, 0.5, 1.0, 5.0},
	}
}

func TestCollector_RecordRequest(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.RecordRequest("/ai/summary", "POST", 200, 120*time.Millisecond)
	collector.RecordRequest("/ai/summary", "POST", 200, 80*time.Millisecond)
	collector.RecordRequest("/ai/summary", "POST", 503, time.Second)

	ok := testutil.ToFloat64(collector.requests.requestsTotal.WithLabelValues("/ai/summary", "POST", "200"))
	if ok != 2 {
		t.Errorf("200 count = %v, want 2", ok)
	}
	busy := testutil.ToFloat64(collector.requests.requestsTotal.WithLabelValues("/ai/summary", "POST", "503"))
	if busy != 1 {
		t.Errorf("503 count = %v, want 1", busy)
	}
	if n := testutil.CollectAndCount(collector.requests.requestDuration); n != 1 {
		t.Errorf("duration series = %d, want 1", n)
	}
}

func TestCollector_ObserveUpstream(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	var observer providers.Observer = collector
	observer.ObserveUpstream(providers.Gemini, providers.OutcomeSuccess, 300*time.Millisecond)
	observer.ObserveUpstream(providers.Gemini, providers.OutcomeRateLimited, 50*time.Millisecond)
	observer.ObserveUpstream(providers.Resend, providers.OutcomeSuccess, 100*time.Millisecond)

	tests := []struct {
		provider string
		outcome  string
		want     float64
	}{
		{providers.Gemini, providers.OutcomeSuccess, 1},
		{providers.Gemini, providers.OutcomeRateLimited, 1},
		{providers.Resend, providers.OutcomeSuccess, 1},
		{providers.Resend, providers.OutcomeTimeout, 0},
	}
	for _, tt := range tests {
		got := testutil.ToFloat64(collector.upstream.requests.WithLabelValues(tt.provider, tt.outcome))
		if got != tt.want {
			t.Errorf("%s/%s = %v, want %v", tt.provider, tt.outcome, got, tt.want)
		}
	}
}

func TestCollector_ObserveMock(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.ObserveMock("summary")
	collector.ObserveMock("summary")
	collector.ObserveMock("support")

	if got := testutil.ToFloat64(collector.requests.mockResponses.WithLabelValues("summary")); got != 2 {
		t.Errorf("summary mocks = %v", got)
	}
	if got := testutil.ToFloat64(collector.requests.mockResponses.WithLabelValues("support")); got != 1 {
		t.Errorf("support mocks = %v", got)
	}
}

func TestCollector_SetProviderConfigured(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.SetProviderConfigured(providers.Gemini, true)
	collector.SetProviderConfigured(providers.Resend, false)

	if got := testutil.ToFloat64(collector.upstream.configured.WithLabelValues(providers.Gemini)); got != 1 {
		t.Errorf("gemini = %v", got)
	}
	if got := testutil.ToFloat64(collector.upstream.configured.WithLabelValues(providers.Resend)); got != 0 {
		t.Errorf("resend = %v", got)
	}
}

func TestCollector_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	registry := prometheus.NewRegistry()
	collector := NewCollector(cfg, registry)

	collector.RecordRequest("/health", "GET", 200, time.Millisecond)
	collector.ObserveUpstream(providers.Gemini, providers.OutcomeSuccess, time.Millisecond)
	collector.ObserveMock("summary")
	collector.SetProviderConfigured(providers.Gemini, true)

	families, err := registry.Gather()
	if err != nil {
		t.Fatal(err)
	}
	if len(families) != 0 {
		t.Errorf("disabled collector registered %d families", len(families))
	}
}

func TestCollector_NilIsDisabled(t *testing.T) {
	var collector *Collector
	if collector.Enabled() {
		t.Error("nil collector reports enabled")
	}
	collector.ObserveMock("summary")
}

func TestCollector_Defaults(t *testing.T) {
	collector := NewCollector(config.MetricsConfig{Enabled: true}, nil)

	if collector.config.Namespace != config.DefaultMetricsNamespace {
		t.Errorf("namespace = %s", collector.config.Namespace)
	}
	if len(collector.config.DurationBuckets) == 0 {
		t.Error("buckets not defaulted")
	}
}

func TestCollector_Handler(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())
	collector.ObserveUpstream(providers.Gemini, providers.OutcomeSuccess, 200*time.Millisecond)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `test_gateway_upstream_requests_total{outcome="success",provider="gemini"} 1`) {
		t.Errorf("exposition missing upstream counter:\n%s", body)
	}
}
