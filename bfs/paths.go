// SPDX-License-Identifier: MIT

package bfs

import "github.com/katalvlaran/graphseal/core"

// ShortestPath returns the fewest-hop path start→end along out-edges,
// including both endpoints. start == end yields the single-element path.
// ok is false when either endpoint is missing or end is unreachable.
func ShortestPath(g *core.Graph, start, end core.VertexID) ([]core.VertexID, bool) {
	if g == nil || !g.HasVertex(start) || !g.HasVertex(end) {
		return nil, false
	}
	if start == end {
		return []core.VertexID{start}, true
	}

	found := false
	stop := func(id core.VertexID, _ int) error {
		if id == end {
			found = true
			return errStop
		}
		return nil
	}
	res, _ := BFS(g, start, WithOnVisit(stop))
	if !found {
		return nil, false
	}

	return res.PathTo(end)
}

// ConnectedComponents partitions the vertices into weakly connected
// components. Each component is sorted ascending; components are ordered
// by their smallest member.
func ConnectedComponents(g *core.Graph) [][]core.VertexID {
	if g == nil {
		return nil
	}
	o := DefaultOptions()
	o.Undirected = true
	w := newWalker(g, o)

	var comps [][]core.VertexID
	for _, id := range g.Vertices() {
		if w.visited[id] {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(id, 0, 0)
		_ = w.loop() // no hooks, no cancellation: cannot fail
		comp := append([]core.VertexID(nil), w.res.Order[from:]...)
		sortIDs(comp)
		comps = append(comps, comp)
	}

	return comps
}

// Reachable returns every vertex reachable from start along out-edges,
// start included, in BFS visit order. It is nil when start is absent.
func Reachable(g *core.Graph, start core.VertexID) []core.VertexID {
	res, err := BFS(g, start)
	if err != nil {
		return nil
	}

	return res.Order
}
