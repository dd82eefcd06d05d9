// SPDX-License-Identifier: MIT
// Package: graphseal/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges i→i+1 for i=0..n-2, in ascending i.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseal/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		t := topology{n: n}
		for i := 0; i+1 < n; i++ {
			t.edges = append(t.edges, [2]int{i, i + 1})
		}

		return emit(g, cfg, methodPath, t)
	}
}
