package recs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "upsell_recommendation_fetches_total",
		Help: "Recommendation fetches by outcome.",
	}, []string{"outcome"})

	fetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "upsell_recommendation_fetch_seconds",
		Help:    "Recommendation backend request duration.",
		Buckets: prometheus.DefBuckets,
	})
)
