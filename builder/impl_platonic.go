// SPDX-License-Identifier: MIT
// Package: graphseal/builder
//
// impl_platonic.go - PlatonicSolid(name) fixtures.
//
// Vertex-transitive solids are the worst case for refinement-based
// canonical labeling: every vertex looks alike until individualized.
// Edges are listed once with u < v in lexicographic order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseal/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicName enumerates the supported solids.
type PlatonicName int

const (
	Tetrahedron PlatonicName = iota // V=4,  E=6
	Cube                            // V=8,  E=12
	Octahedron                      // V=6,  E=12
)

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	default:
		return "Unknown"
	}
}

var platonicShells = map[PlatonicName]topology{
	Tetrahedron: {n: 4, edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}},
	Cube: {n: 8, edges: [][2]int{
		{0, 1}, {0, 2}, {0, 4}, {1, 3}, {1, 5}, {2, 3},
		{2, 6}, {3, 7}, {4, 5}, {4, 6}, {5, 7}, {6, 7},
	}},
	Octahedron: {n: 6, edges: [][2]int{
		{0, 2}, {0, 3}, {0, 4}, {0, 5}, {1, 2}, {1, 3},
		{1, 4}, {1, 5}, {2, 4}, {2, 5}, {3, 4}, {3, 5},
	}},
}

// PlatonicSolid returns a Constructor for the named solid's edge shell.
// Unknown names yield ErrConstructFailed.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		t, ok := platonicShells[name]
		if !ok {
			return fmt.Errorf("%s: %s: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}

		return emit(g, cfg, methodPlatonicSolid, t)
	}
}
