// SPDX-License-Identifier: MIT

package dfs

import (
	"sort"

	"github.com/katalvlaran/graphseal/core"
)

// FindCycles returns every simple directed cycle of g exactly once.
//
// Cycles are enumerated per start vertex s in ascending order, walking only
// through vertices greater than s, so each cycle is found from its smallest
// vertex and no rotation is produced twice. Each cycle is closed
// ([v0 … vk v0]) with the smallest vertex first; a self-loop is reported as
// [v v]. Parallel edges do not produce duplicates. Cycles are sorted
// lexicographically.
//
// The walk uses an explicit stack. The number of simple cycles can grow
// exponentially with graph size.
//
// Complexity: O((V + E)·(C + 1)) for C cycles.
func FindCycles(g *core.Graph) [][]core.VertexID {
	if g == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var cycles [][]core.VertexID

	for _, s := range g.Vertices() {
		onPath := map[core.VertexID]bool{s: true}
		path := []core.VertexID{s}
		stack := []frame{{id: s, nbrs: g.OutNeighbors(s)}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.nbrs) {
				nb := top.nbrs[top.next]
				top.next++
				switch {
				case nb == s:
					recordCycle(path, seen, &cycles)
				case nb > s && !onPath[nb]:
					onPath[nb] = true
					path = append(path, nb)
					stack = append(stack, frame{id: nb, nbrs: g.OutNeighbors(nb)})
				}
				continue
			}
			delete(onPath, top.id)
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
		}
	}
	sort.Slice(cycles, func(i, j int) bool { return compareIDs(cycles[i], cycles[j]) < 0 })

	return cycles
}

// recordCycle canonicalizes the open cycle path and keeps it if its
// signature is new.
func recordCycle(path []core.VertexID, seen map[string]struct{}, cycles *[][]core.VertexID) {
	seq := MinimalRotation(path)
	sig := joinSig(seq)
	if _, ok := seen[sig]; ok {
		return
	}
	seen[sig] = struct{}{}
	*cycles = append(*cycles, append(seq, seq[0]))
}
