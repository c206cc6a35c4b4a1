package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_recommendation_requests_total",
			Help: "Recommendation requests served, by whether the result was personalized",
		},
		[]string{"personalized"},
	)

	PreferenceLookupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_preference_lookup_failures_total",
			Help: "Preference lookups that degraded to the fallback path",
		},
		[]string{"reason"},
	)

	RankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storefront_ranking_duration_seconds",
			Help:    "Time spent scoring and ranking the catalog for personalized requests",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 12),
		},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_catalog_active_products",
			Help: "Active products seen by the last recommendation request",
		},
	)
)
