package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request outcome labels of RequestsTotal
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics holds the process collectors. It is built once in main and passed
// to the components that record into it, so tests can use a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// RequestsTotal counts every HTTP request by method, final status and result
	RequestsTotal *prometheus.CounterVec

	// ActiveConnections tracks in-flight requests
	ActiveConnections prometheus.Gauge

	// TrackedMetrics receives values pushed through the telemetry sink
	TrackedMetrics *prometheus.HistogramVec

	// TrackedExceptions counts exceptions pushed through the telemetry sink
	TrackedExceptions *prometheus.CounterVec

	// DatabaseOperations tracks store operations
	DatabaseOperations *prometheus.CounterVec
}

// NewMetrics registers all collectors on a fresh registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Número total de requisições HTTP recebidas e seus resultados.",
			},
			[]string{"method", "status", "result"},
		),
		ActiveConnections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cadastro_active_connections",
				Help: "Number of in-flight HTTP requests",
			},
		),
		TrackedMetrics: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cadastro_tracked_metric",
				Help:    "Values of metrics tracked through the telemetry sink",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
			},
			[]string{"name"},
		),
		TrackedExceptions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cadastro_tracked_exceptions_total",
				Help: "Number of exceptions tracked through the telemetry sink",
			},
			[]string{"type"},
		),
		DatabaseOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cadastro_database_operations_total",
				Help: "Number of database operations",
			},
			[]string{"operation", "status"},
		),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.ActiveConnections,
		m.TrackedMetrics,
		m.TrackedExceptions,
		m.DatabaseOperations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the text exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
