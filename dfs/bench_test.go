// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/dfs"
)

// BenchmarkBridges_Ladder measures bridge search on a ladder graph.
func BenchmarkBridges_Ladder(b *testing.B) {
	const rungs = 5000
	var edges [][2]core.VertexID
	for i := 0; i < rungs; i++ {
		top, bottom := core.VertexID(2*i+1), core.VertexID(2*i+2)
		edges = append(edges, [2]core.VertexID{top, bottom})
		if i > 0 {
			edges = append(edges, [2]core.VertexID{top - 2, top}, [2]core.VertexID{bottom - 2, bottom})
		}
	}
	g := build(b, 2*rungs, edges...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.Bridges(g)
	}
}

// BenchmarkSCC_Cycle measures Tarjan on one big cycle.
func BenchmarkSCC_Cycle(b *testing.B) {
	const n = 10000
	edges := make([][2]core.VertexID, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]core.VertexID{core.VertexID(i + 1), core.VertexID((i+1)%n + 1)}
	}
	g := build(b, n, edges...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.StronglyConnectedComponents(g)
	}
}
