// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "intersched",
			Name:      "http_requests_total",
			Help:      "Total number of handled HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "intersched",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP request handling in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	Matches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "intersched",
			Name:      "matches_total",
			Help:      "Schedule requests by outcome",
		},
		[]string{"outcome"},
	)

	MatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "intersched",
			Name:      "match_duration_seconds",
			Help:      "Time spent reading availability and matching it",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "intersched",
			Name:      "match_cache_lookups_total",
			Help:      "Match cache lookups by result",
		},
		[]string{"result"},
	)
)

func ObserveRequest(method, route string, status int, took time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

func ObserveMatch(outcome string, took time.Duration) {
	Matches.WithLabelValues(outcome).Inc()
	MatchDuration.Observe(took.Seconds())
}

func CacheHit(hit bool) {
	if hit {
		CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	CacheLookups.WithLabelValues("miss").Inc()
}
