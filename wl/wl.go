// SPDX-License-Identifier: MIT

// Package wl implements Weisfeiler-Lehman color refinement, a fast
// isomorphism rejection test.
//
// The initial color of a vertex is "deg_<in+out>". Each iteration replaces
// it with
//
//	color + "_" + join(sorted colors of out-neighbors, ",")
//
// where an out-neighbor appears once per connecting edge. Two graphs whose
// sorted final colorings differ are certainly not isomorphic; equal
// colorings prove nothing (regular graphs all look alike), so the test is
// sound for rejection but incomplete.
//
// Raw colors grow geometrically with the iteration count. WithCompression
// replaces every refined color by a short digest of itself, which keeps
// equality (up to SHA-256 collisions) while bounding memory.
package wl

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphseal/core"
)

// DefaultIterations is the refinement depth used by the isomorphism checker.
const DefaultIterations = 3

// Option configures a WeisfeilerLehman.
type Option func(*WeisfeilerLehman)

// WithCompression hashes every refined color down to 16 hex characters.
func WithCompression() Option {
	return func(w *WeisfeilerLehman) { w.compress = true }
}

// WeisfeilerLehman holds the refinement parameters.
type WeisfeilerLehman struct {
	iterations int
	compress   bool
}

// New returns a refiner running the given number of iterations (negative
// values are treated as 0).
func New(iterations int, opts ...Option) *WeisfeilerLehman {
	if iterations < 0 {
		iterations = 0
	}
	w := &WeisfeilerLehman{iterations: iterations}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Iterations returns the configured refinement depth.
func (w *WeisfeilerLehman) Iterations() int { return w.iterations }

// ComputeColoring returns the final color of every vertex, indexed by the
// vertex position in g.Vertices(). A nil graph has no colors.
func (w *WeisfeilerLehman) ComputeColoring(g *core.Graph) []string {
	if g == nil {
		return []string{}
	}
	ids := g.Vertices()
	pos := make(map[core.VertexID]int, len(ids))
	colors := make([]string, len(ids))
	for i, id := range ids {
		pos[id] = i
		in, out, _ := g.Degree(id)
		colors[i] = "deg_" + strconv.Itoa(in+out)
	}

	// targets[i] lists the out-neighbor positions of vertex i, once per edge.
	targets := make([][]int, len(ids))
	for i, id := range ids {
		for _, eid := range g.OutEdges(id) {
			e, _ := g.Edge(eid)
			targets[i] = append(targets[i], pos[e.Dst])
		}
	}

	for it := 0; it < w.iterations; it++ {
		next := make([]string, len(colors))
		for i := range colors {
			nb := make([]string, len(targets[i]))
			for k, j := range targets[i] {
				nb[k] = colors[j]
			}
			sort.Strings(nb)
			refined := colors[i] + "_" + strings.Join(nb, ",")
			if w.compress {
				refined = compressColor(refined)
			}
			next[i] = refined
		}
		colors = next
	}

	return colors
}

// Histogram returns the sorted final coloring, the graph invariant that
// AreIsomorphic compares.
func (w *WeisfeilerLehman) Histogram(g *core.Graph) []string {
	c := w.ComputeColoring(g)
	sort.Strings(c)

	return c
}

// AreIsomorphic returns false when g1 and g2 certainly differ: different
// vertex or edge counts, or different sorted colorings. true means "not
// ruled out". A nil graph compares as the empty graph.
func (w *WeisfeilerLehman) AreIsomorphic(g1, g2 *core.Graph) bool {
	if g1 == nil {
		g1 = core.NewGraph()
	}
	if g2 == nil {
		g2 = core.NewGraph()
	}
	if g1.VertexCount() != g2.VertexCount() || g1.EdgeCount() != g2.EdgeCount() {
		return false
	}
	a, b := w.Histogram(g1), w.Histogram(g2)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func compressColor(s string) string {
	sum := sha256.Sum256([]byte(s))

	return "h" + hex.EncodeToString(sum[:8])
}
