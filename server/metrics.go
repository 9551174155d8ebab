// SPDX-License-Identifier: MIT

package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values for searchesTotal.
const (
	resultFound  = "found"
	resultNoPath = "nopath"
	resultError  = "error"
)

var (
	// searchesTotal counts searches by outcome.
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_searches_total",
		Help: "Total path searches by result",
	}, []string{"result"})

	// searchExpanded tracks how many coordinates each search expanded.
	searchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_search_expanded_nodes",
		Help:    "Coordinates expanded per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
	})

	// searchDuration tracks search latency.
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_search_duration_seconds",
		Help:    "Path search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	})
)

// observeSearch records one completed search.
func observeSearch(result string, expanded int, took time.Duration) {
	searchesTotal.WithLabelValues(result).Inc()
	searchExpanded.Observe(float64(expanded))
	searchDuration.Observe(took.Seconds())
}
