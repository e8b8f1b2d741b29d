// Package metrics holds the Prometheus collectors of the recommendation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog
	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Metadata catalog requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"}, // "ok", "error", "rejected"
	)

	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Metadata catalog request latency in seconds",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"endpoint"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Credit cache
	CreditCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credit_cache_hits_total",
			Help: "Credit lookups served from the in-memory cache",
		},
	)

	CreditCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credit_cache_misses_total",
			Help: "Credit lookups that went to the catalog",
		},
	)

	CreditCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "credit_cache_entries",
			Help: "Items with cached credits",
		},
	)

	// Recommendation pipeline
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time to compute a recommendation list",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	RecommendFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_fallbacks_total",
			Help: "Recommendation requests answered by the fallback policy",
		},
		[]string{"reason"},
	)

	CandidatePoolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_candidate_pool_size",
			Help:    "Candidates assembled per recommendation request",
			Buckets: []float64{0, 10, 25, 50, 100, 150, 200},
		},
	)
)
