// SPDX-License-Identifier: MIT
// Package: graphseal/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   • cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   • Every ordered pair (i,j), i≠j, is an independent Bernoulli(p) trial in
//     (i asc, j asc) order. Self-loops are trialled too when g.Looped().
//
// Complexity: O(n²) trials. Deterministic for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseal/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed Erdős–Rényi
// graph over n vertices with edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		loops := g.Looped()
		t := topology{n: n}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				hit := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					hit = cfg.rng.Float64() < p
				}
				if hit {
					t.edges = append(t.edges, [2]int{i, j})
				}
			}
		}

		return emit(g, cfg, methodRandomSparse, t)
	}
}
