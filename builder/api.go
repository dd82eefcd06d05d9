// SPDX-License-Identifier: MIT
// Package: graphseal/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors describe a topology; emit() owns vertex/edge insertion.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphseal/core"
)

// Constructor adds one topology to g as a new component. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph options (simple edges, loops).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against
//     ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Build is BuildGraph with default graph options.
func Build(con Constructor, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(nil, opts, con)
}

// Apply runs cons against an existing graph, e.g. to grow a fixture.
func Apply(g *core.Graph, opts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// topology is the index-space description every constructor produces.
type topology struct {
	n     int
	edges [][2]int
	// names overrides cfg.idFn per index when non-empty.
	names map[int]string
	// labels adds a role label per index (hub, left, right).
	labels map[int]string
}

type arc struct {
	u, v  int
	props map[string]core.Value
}

// emit inserts t into g honoring the resolved config: optional shuffled
// insertion, name/label/weight properties and bidirectional edges.
//
// Complexity: O(n + m).
func emit(g *core.Graph, cfg builderConfig, method string, t topology) error {
	// Weights are drawn first, in topology order, so shuffling never changes
	// which arc carries which weight.
	arcs := make([]arc, 0, len(t.edges)*2)
	for _, e := range t.edges {
		arcs = append(arcs, cfg.arc(e[0], e[1]))
		if cfg.bidirectional && e[0] != e[1] {
			arcs = append(arcs, cfg.arc(e[1], e[0]))
		}
	}

	order := make([]int, t.n)
	for i := range order {
		order[i] = i
	}
	if cfg.shuffle && cfg.rng != nil {
		cfg.rng.Shuffle(len(order), func(a, b int) { order[a], order[b] = order[b], order[a] })
		cfg.rng.Shuffle(len(arcs), func(a, b int) { arcs[a], arcs[b] = arcs[b], arcs[a] })
	}

	ids := make([]core.VertexID, t.n)
	for _, i := range order {
		ids[i] = g.AddVertex(cfg.vertexData(i, t))
	}
	for _, a := range arcs {
		ed := core.EdgeData{Label: cfg.edgeLabel, Src: ids[a.u], Dst: ids[a.v], Properties: a.props}
		if _, err := g.AddEdge(ed); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, a.u, a.v, err)
		}
	}

	return nil
}
