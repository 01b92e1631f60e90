// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lockers"

type Metrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	// DeliveryFailures counts notifications and events that could not be delivered.
	DeliveryFailures *prometheus.CounterVec

	// InvariantViolations is the number of lockers whose code and status disagreed
	// on the last audit run.
	InvariantViolations prometheus.Gauge

	// ThrottledLockers is the number of lockers whose code checks are locked out.
	ThrottledLockers prometheus.Gauge

	registry *prometheus.Registry
}

// New registers every collector on a private registry, so tests can build as
// many instances as they like.
func New() *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"route", "method", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"route"}),
		DeliveryFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_failures_total",
			Help:      "Notifications and integration events that failed to deliver.",
		}, []string{"channel"}),
		InvariantViolations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "locker_invariant_violations",
			Help:      "Lockers found with a code that disagrees with their status.",
		}),
		ThrottledLockers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "throttled_lockers",
			Help:      "Lockers whose access-code checks are currently locked out.",
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.Requests,
		m.LatencyMS,
		m.DeliveryFailures,
		m.InvariantViolations,
		m.ThrottledLockers,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
