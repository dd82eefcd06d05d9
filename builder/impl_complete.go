// SPDX-License-Identifier: MIT
// Package: graphseal/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • One edge i→j per pair i<j, lexicographic order. With
//     WithBidirectional this is the complete digraph.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseal/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		t := topology{n: n, edges: make([][2]int, 0, n*(n-1)/2)}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				t.edges = append(t.edges, [2]int{i, j})
			}
		}

		return emit(g, cfg, methodComplete, t)
	}
}
