// SPDX-License-Identifier: MIT
// Package: graphseal/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices).
//   • Index r·cols+c is cell (r,c), named "r,c" when names are enabled.
//   • For each cell in row-major order emit Right then Bottom if present.
//
// Complexity: O(R·C) vertices + O(2·R·C) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseal/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		t := topology{n: rows * cols, names: make(map[int]string, rows*cols)}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				t.names[u] = fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					t.edges = append(t.edges, [2]int{u, u + 1})
				}
				if r+1 < rows {
					t.edges = append(t.edges, [2]int{u, u + cols})
				}
			}
		}

		return emit(g, cfg, methodGrid, t)
	}
}
