// SPDX-License-Identifier: MIT

package dfs

import (
	"sort"

	"github.com/katalvlaran/graphseal/core"
)

// incident is one undirected incidence: the edge and the vertex on its far side.
type incident struct {
	edge core.EdgeID
	to   core.VertexID
}

// bridgeFrame is the explicit-stack frame of the bridge search.
type bridgeFrame struct {
	id       core.VertexID
	viaEdge  core.EdgeID // tree edge used to reach id; 0 for roots
	incident []incident
	next     int
}

// Bridges returns every edge whose removal disconnects its endpoints,
// treating the graph as undirected.
//
// Implementation:
//   - Each edge is an undirected incidence of both endpoints.
//   - DFS assigns disc[v] and low[v]; a tree edge (u,v) is a bridge iff
//     low[v] > disc[u].
//   - Only the tree edge itself is skipped when looking back at the parent,
//     so a parallel edge (or a reciprocal u→v, v→u pair) keeps the pair
//     2-edge-connected and neither edge is reported.
//   - Self-loops never disconnect anything and are ignored.
//
// Returns bridges sorted by EdgeID.
//
// Complexity: O(V + E).
func Bridges(g *core.Graph) []core.EdgeID {
	if g == nil {
		return nil
	}
	verts := g.Vertices()
	adj := make(map[core.VertexID][]incident, len(verts))
	for _, eid := range g.Edges() {
		e, _ := g.Edge(eid)
		if e.Src == e.Dst {
			continue
		}
		adj[e.Src] = append(adj[e.Src], incident{edge: eid, to: e.Dst})
		adj[e.Dst] = append(adj[e.Dst], incident{edge: eid, to: e.Src})
	}

	disc := make(map[core.VertexID]int, len(verts))
	low := make(map[core.VertexID]int, len(verts))
	timer := 0
	var bridges []core.EdgeID

	for _, root := range verts {
		if disc[root] != 0 {
			continue
		}
		timer++
		disc[root], low[root] = timer, timer
		stack := []bridgeFrame{{id: root, incident: adj[root]}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.incident) {
				inc := top.incident[top.next]
				top.next++
				if inc.edge == top.viaEdge {
					continue
				}
				if disc[inc.to] == 0 {
					timer++
					disc[inc.to], low[inc.to] = timer, timer
					stack = append(stack, bridgeFrame{id: inc.to, viaEdge: inc.edge, incident: adj[inc.to]})
				} else {
					low[top.id] = min(low[top.id], disc[inc.to])
				}
				continue
			}

			v, via := top.id, top.viaEdge
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				continue
			}
			u := stack[len(stack)-1].id
			low[u] = min(low[u], low[v])
			if low[v] > disc[u] {
				bridges = append(bridges, via)
			}
		}
	}
	sort.Slice(bridges, func(i, j int) bool { return bridges[i] < bridges[j] })

	return bridges
}
