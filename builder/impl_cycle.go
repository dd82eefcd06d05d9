// SPDX-License-Identifier: MIT
// Package: graphseal/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Edges i→(i+1)%n for i=0..n-1; the last one closes the ring.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseal/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the directed ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return emit(g, cfg, methodCycle, ring(n))
	}
}

// ring is the topology of C_n over indices 0..n-1.
func ring(n int) topology {
	t := topology{n: n, edges: make([][2]int, 0, n)}
	for i := 0; i < n; i++ {
		t.edges = append(t.edges, [2]int{i, (i + 1) % n})
	}

	return t
}
