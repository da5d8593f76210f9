// Package metrics owns the Prometheus collectors exported at /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "golftrips"

// Metrics groups every collector the server records into.
// All methods are safe on a nil *Metrics, so services and tests that do not
// care about metrics can pass nil.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	roundsSaved  *prometheus.CounterVec
	roundClears  *prometheus.CounterVec
	indexes      *prometheus.CounterVec
}

// New builds a Metrics on a private registry that also carries the Go runtime
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		roundsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_saved_total",
			Help:      "Rounds appended to a collection, by owner kind.",
		}, []string{"owner_kind"}),
		roundClears: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "round_collections_cleared_total",
			Help:      "Round collections cleared, by owner kind.",
		}, []string{"owner_kind"}),
		indexes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handicap_indexes_computed_total",
			Help:      "Handicap index computations, by whether an index was available.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.roundsSaved,
		m.roundClears,
		m.indexes,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RoundSaved counts one appended round.
func (m *Metrics) RoundSaved(ownerKind string) {
	if m == nil {
		return
	}
	m.roundsSaved.WithLabelValues(ownerKind).Inc()
}

// RoundsCleared counts one cleared collection.
func (m *Metrics) RoundsCleared(ownerKind string) {
	if m == nil {
		return
	}
	m.roundClears.WithLabelValues(ownerKind).Inc()
}

// IndexComputed counts one handicap computation.
func (m *Metrics) IndexComputed(available bool) {
	if m == nil {
		return
	}
	result := "unavailable"
	if available {
		result = "available"
	}
	m.indexes.WithLabelValues(result).Inc()
}
