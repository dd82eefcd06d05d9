// SPDX-License-Identifier: MIT
// Package: graphseal/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, so n ≥ 4 (the rim must be a valid cycle).
//
// Contract:
//   • Rim indices 0..n-2 form the ring i→(i+1)%(n-1).
//   • Index n-1 is the hub; spokes hub→rim in ascending rim index.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseal/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel Wₙ.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		t := ring(n - 1)
		hub := n - 1
		t.n = n
		t.names = map[int]string{hub: CenterName}
		t.labels = map[int]string{hub: HubLabel}
		for i := 0; i < hub; i++ {
			t.edges = append(t.edges, [2]int{hub, i})
		}

		return emit(g, cfg, methodWheel, t)
	}
}
