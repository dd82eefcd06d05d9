// SPDX-License-Identifier: MIT

package dfs

import (
	"sort"

	"github.com/katalvlaran/graphseal/core"
)

// tarjanFrame is the explicit-stack frame of Tarjan's algorithm.
type tarjanFrame struct {
	id   core.VertexID
	nbrs []core.VertexID
	next int
}

// StronglyConnectedComponents returns the strongly connected components of g
// using an iterative Tarjan's algorithm over out-edges.
//
// Each component is sorted ascending and components are ordered by their
// smallest member. A vertex with no cycle through it forms its own component.
//
// Complexity: O(V + E).
func StronglyConnectedComponents(g *core.Graph) [][]core.VertexID {
	if g == nil {
		return nil
	}
	verts := g.Vertices()
	index := make(map[core.VertexID]int, len(verts))
	low := make(map[core.VertexID]int, len(verts))
	onStack := make(map[core.VertexID]bool, len(verts))
	var stack []core.VertexID
	var comps [][]core.VertexID
	counter := 0

	visit := func(v core.VertexID) tarjanFrame {
		counter++
		index[v], low[v] = counter, counter
		stack = append(stack, v)
		onStack[v] = true

		return tarjanFrame{id: v, nbrs: g.OutNeighbors(v)}
	}

	for _, root := range verts {
		if index[root] != 0 {
			continue
		}
		call := []tarjanFrame{visit(root)}
		for len(call) > 0 {
			top := &call[len(call)-1]
			if top.next < len(top.nbrs) {
				w := top.nbrs[top.next]
				top.next++
				switch {
				case index[w] == 0:
					call = append(call, visit(w))
				case onStack[w]:
					low[top.id] = min(low[top.id], index[w])
				}
				continue
			}

			v := top.id
			call = call[:len(call)-1]
			if len(call) > 0 {
				parent := call[len(call)-1].id
				low[parent] = min(low[parent], low[v])
			}
			if low[v] == index[v] {
				var comp []core.VertexID
				for {
					x := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[x] = false
					comp = append(comp, x)
					if x == v {
						break
					}
				}
				sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
				comps = append(comps, comp)
			}
		}
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps
}
