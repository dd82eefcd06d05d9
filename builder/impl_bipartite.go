// SPDX-License-Identifier: MIT
// Package: graphseal/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   • n1, n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side indices 0..n1-1 carry label cfg.leftPrefix and names
//     "<left><i>"; right side n1..n1+n2-1 carry cfg.rightPrefix, "<right><j>".
//   • Edges left→right, i over left first, then j over right.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphseal/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		t := topology{
			n:      n1 + n2,
			names:  make(map[int]string, n1+n2),
			labels: make(map[int]string, n1+n2),
			edges:  make([][2]int, 0, n1*n2),
		}
		for i := 0; i < n1; i++ {
			t.names[i] = cfg.leftPrefix + strconv.Itoa(i)
			t.labels[i] = cfg.leftPrefix
		}
		for j := 0; j < n2; j++ {
			t.names[n1+j] = cfg.rightPrefix + strconv.Itoa(j)
			t.labels[n1+j] = cfg.rightPrefix
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				t.edges = append(t.edges, [2]int{i, n1 + j})
			}
		}

		return emit(g, cfg, methodCompleteBipartite, t)
	}
}
