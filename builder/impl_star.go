// SPDX-License-Identifier: MIT
// Package: graphseal/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Index 0 is the hub (label "hub", name "Center"); spokes 0→i.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseal/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterName is the "name" of hub vertices in Star and Wheel.
	CenterName = "Center"
	// HubLabel is the role label of hub vertices in Star and Wheel.
	HubLabel = "hub"
)

// Star returns a Constructor that builds a star with a hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		t := topology{
			n:      n,
			names:  map[int]string{0: CenterName},
			labels: map[int]string{0: HubLabel},
		}
		for i := 1; i < n; i++ {
			t.edges = append(t.edges, [2]int{0, i})
		}

		return emit(g, cfg, methodStar, t)
	}
}
