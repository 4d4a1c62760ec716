// Package metrics exposes the Prometheus collectors for the service.
// Collectors register on the default registry via promauto and are
// served by the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalculationsTotal counts stored calculations by transport mode.
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freightprint_calculations_total",
			Help: "Total number of footprint calculations stored",
		},
		[]string{"mode"},
	)

	// FootprintKg observes the footprint of each calculation in kg CO2e.
	FootprintKg = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "freightprint_footprint_kg",
			Help:    "Carbon footprint per calculation in kilograms of CO2e",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000, 50000, 100000},
		},
	)

	// SummaryCacheHits counts summary reads answered from the cache.
	SummaryCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "freightprint_summary_cache_hits_total",
			Help: "Total number of user summary cache hits",
		},
	)

	// SummaryCacheMisses counts summary reads that fell through to the store.
	SummaryCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "freightprint_summary_cache_misses_total",
			Help: "Total number of user summary cache misses",
		},
	)

	// HTTPRequestsTotal counts handled HTTP requests by route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freightprint_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "freightprint_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"method", "path"},
	)
)
