// Package metrics exposes Prometheus metrics for the HTTP surface and the
// report queries behind it.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Report outcomes
const (
	OutcomeOK          = "ok"
	OutcomeClientError = "client_error"
	OutcomeQueryError  = "query_error"
)

// Manager owns the service's Prometheus collectors
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	reports        *prometheus.CounterVec
	reportDuration *prometheus.HistogramVec
}

var customRegistry = prometheus.NewRegistry()

var globalManager *Manager

func init() {
	customRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "baseball",
		subsystem:        "stats",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method"})

	m.reports = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_total",
		Help:      "Total number of computed reports by report and outcome",
	}, []string{"report", "outcome"})

	m.reportDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_duration_seconds",
		Help:      "Report computation latency in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"report"})

	return m
}

// RecordHTTPRequest records one served request
func (m *Manager) RecordHTTPRequest(route, method, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordReport records one report computation and its outcome
func (m *Manager) RecordReport(report, outcome string, duration time.Duration) {
	m.reports.WithLabelValues(report, outcome).Inc()
	m.reportDuration.WithLabelValues(report).Observe(duration.Seconds())
}

// RecordHTTPRequest records one served request on the global manager
func RecordHTTPRequest(route, method, status string, duration time.Duration) {
	globalManager.RecordHTTPRequest(route, method, status, duration)
}

// RecordReport records one report computation on the global manager
func RecordReport(report, outcome string, duration time.Duration) {
	globalManager.RecordReport(report, outcome, duration)
}

// Handler serves the service metrics in the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}
