package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors exported on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	Requests  *prometheus.CounterVec
	Latency   *prometheus.HistogramVec
	Fallbacks *prometheus.CounterVec
	LLMCalls  *prometheus.CounterVec
	Logins    *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripai_http_requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tripai_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		Fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripai_fallback_total",
			Help: "Lookups answered with sample data instead of a live service.",
		}, []string{"source"}),
		LLMCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripai_llm_calls_total",
			Help: "Completion API calls by outcome.",
		}, []string{"outcome"}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripai_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests, m.Latency, m.Fallbacks, m.LLMCalls, m.Logins,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Fallback records a lookup that was answered from sample data. Safe on a
// nil receiver so packages can run without metrics in tests.
func (m *Metrics) Fallback(source string) {
	if m == nil {
		return
	}
	m.Fallbacks.WithLabelValues(source).Inc()
}

func (m *Metrics) LLMCall(outcome string) {
	if m == nil {
		return
	}
	m.LLMCalls.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Login(outcome string) {
	if m == nil {
		return
	}
	m.Logins.WithLabelValues(outcome).Inc()
}
