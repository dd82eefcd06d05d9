// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphseal/core"
)

// TopologicalSort orders the vertices so that every edge u→v has u before v.
//
// Implementation (Kahn):
//   - Stage 1: in-degree of every vertex, counting parallel edges.
//   - Stage 2: seed a FIFO queue with all zero in-degree vertices, ascending.
//   - Stage 3: pop, emit, decrement each out-neighbor once per connecting
//     edge, enqueue neighbors that reach zero (ascending per vertex).
//
// Errors:
//   - ErrGraphNil.
//   - ErrCycleDetected when fewer than |V| vertices were emitted; the
//     message carries how many vertices sit on or behind a cycle.
//
// Complexity: O(V + E).
func TopologicalSort(g *core.Graph) ([]core.VertexID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	verts := g.Vertices()
	indeg := make(map[core.VertexID]int, len(verts))
	queue := make([]core.VertexID, 0, len(verts))
	for _, v := range verts {
		in, _, _ := g.Degree(v)
		indeg[v] = in
		if in == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]core.VertexID, 0, len(verts))
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for _, v := range g.OutNeighbors(u) {
			indeg[v] -= len(g.EdgesBetween(u, v))
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(order) < len(verts) {
		return nil, fmt.Errorf("%w: %d of %d vertices unordered", ErrCycleDetected, len(verts)-len(order), len(verts))
	}

	return order, nil
}

// HasCycle reports whether g contains a directed cycle (self-loops
// included), defined as TopologicalSort failing.
func HasCycle(g *core.Graph) bool {
	_, err := TopologicalSort(g)

	return err != nil
}
