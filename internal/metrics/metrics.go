package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for shipyard
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	ShipOperationsTotal *prometheus.CounterVec
	QueryResultSize     prometheus.Histogram
	ShipsStored         prometheus.Gauge
}

// NewMetricsRegistry registers every metric with reg. Pass
// prometheus.DefaultRegisterer in the server and prometheus.NewRegistry() in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipyard_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shipyard_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "shipyard_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		// Cache Metrics
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipyard_cache_hits_total",
				Help: "Total cache hits by cache key",
			},
			[]string{"cache_key"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipyard_cache_misses_total",
				Help: "Total cache misses by cache key",
			},
			[]string{"cache_key"},
		),

		// Business Metrics
		ShipOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipyard_ship_operations_total",
				Help: "Ship operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		QueryResultSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "shipyard_ship_query_matches",
				Help:    "Ships matching a list query before pagination",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		ShipsStored: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "shipyard_ships_stored",
				Help: "Ships in the store as of the last health check",
			},
		),
	}
}
