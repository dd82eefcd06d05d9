// SPDX-License-Identifier: MIT

package merkle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// builderCacheHits counts BuildFromGraph calls served from the cache
	builderCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphseal_merkle_cache_hits_total",
		Help: "Merkle builder cache hits",
	})

	// builderCacheMisses counts BuildFromGraph calls that built a tree
	builderCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphseal_merkle_cache_misses_total",
		Help: "Merkle builder cache misses",
	})

	// treeLeaves tracks leaf counts of built trees
	treeLeaves = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "graphseal_merkle_tree_leaves",
		Help:    "Number of leaves per built Merkle tree",
		Buckets: prometheus.ExponentialBuckets(1, 2, 16),
	})
)
