package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the JetCongo API
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	ReservationsCreatedTotal prometheus.Counter
	PaymentsProcessedTotal   prometheus.Counter
	FlightSearchesTotal      prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all
// metrics registered on the default registry. Call once per process.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jetcongo_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jetcongo_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "jetcongo_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jetcongo_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jetcongo_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		ReservationsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "jetcongo_reservations_created_total",
				Help: "Total reservations created",
			},
		),
		PaymentsProcessedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "jetcongo_payments_processed_total",
				Help: "Total Mobile Money payments recorded",
			},
		),
		FlightSearchesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "jetcongo_flight_searches_total",
				Help: "Total public flight search requests served",
			},
		),
	}
}
