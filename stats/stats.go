// SPDX-License-Identifier: MIT

// Package stats aggregates structural facts about a core.Graph in one pass
// over the bfs and dfs algorithms.
package stats

import (
	"github.com/katalvlaran/graphseal/bfs"
	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/dfs"
)

// Statistics summarizes a graph.
type Statistics struct {
	VertexCount int `json:"vertex_count"`
	EdgeCount   int `json:"edge_count"`

	// AverageDegree is sum(in+out)/|V|, i.e. 2|E|/|V|; 0 for the empty graph.
	AverageDegree float64 `json:"average_degree"`

	// Density is 2|E| / (|V|(|V|-1)) for |V| > 1, else 0. Self-loops and
	// parallel edges count, so a multigraph can exceed 1.
	Density float64 `json:"density"`

	// IsConnected is true when the graph has exactly one weakly connected
	// component. The empty graph is not connected.
	IsConnected bool `json:"is_connected"`

	// HasCycles is true when topological sorting fails.
	HasCycles bool `json:"has_cycles"`

	SCCCount       int `json:"scc_count"`
	ComponentCount int `json:"component_count"`
	BridgeCount    int `json:"bridge_count"`
}

// Compute derives Statistics for g. A nil graph is treated as empty.
//
// Complexity: O(V log V + E).
func Compute(g *core.Graph) Statistics {
	if g == nil {
		g = core.NewGraph()
	}
	n, m := g.VertexCount(), g.EdgeCount()
	s := Statistics{VertexCount: n, EdgeCount: m}
	if n > 0 {
		total := 0
		for _, v := range g.Vertices() {
			in, out, _ := g.Degree(v)
			total += in + out
		}
		s.AverageDegree = float64(total) / float64(n)
	}
	if n > 1 {
		s.Density = 2 * float64(m) / float64(n*(n-1))
	}
	s.ComponentCount = len(bfs.ConnectedComponents(g))
	s.IsConnected = s.ComponentCount == 1
	s.HasCycles = dfs.HasCycle(g)
	s.SCCCount = len(dfs.StronglyConnectedComponents(g))
	s.BridgeCount = len(dfs.Bridges(g))

	return s
}
