// SPDX-License-Identifier: MIT

package canon

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// canonicalizeDuration tracks canonicalization latency
	canonicalizeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "graphseal_canonicalize_duration_seconds",
		Help:    "Canonicalization duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	}, []string{"algorithm"})

	// canonicalizeLeaves tracks how many leaves the search serialized
	canonicalizeLeaves = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "graphseal_canonicalize_leaves",
		Help:    "Number of discrete leaves serialized per canonicalization",
		Buckets: []float64{1, 2, 4, 16, 64, 256, 1024, 4096},
	}, []string{"algorithm"})

	// canonicalizeTruncated counts searches stopped by the leaf budget
	canonicalizeTruncated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphseal_canonicalize_truncated_total",
		Help: "Total canonicalizations that hit the leaf budget",
	}, []string{"algorithm"})
)
