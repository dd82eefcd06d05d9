// SPDX-License-Identifier: MIT

package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphseal/bfs"
	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/stats"
)

// TestCompute_KnowsChain runs the v1→v2→v3 "knows" scenario end to end.
func TestCompute_KnowsChain(t *testing.T) {
	g := core.NewGraph()
	v1 := g.AddVertex(core.VertexData{Labels: []string{"Person"}})
	v2 := g.AddVertex(core.VertexData{Labels: []string{"Person"}})
	v3 := g.AddVertex(core.VertexData{Labels: []string{"Person"}})
	_, err := g.AddEdge(core.EdgeData{Label: "knows", Src: v1, Dst: v2})
	require.NoError(t, err)
	_, err = g.AddEdge(core.EdgeData{Label: "knows", Src: v2, Dst: v3})
	require.NoError(t, err)

	res, err := bfs.BFS(g, v1)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{v1, v2, v3}, res.Order)

	path, ok := bfs.ShortestPath(g, v1, v3)
	require.True(t, ok)
	assert.Equal(t, []core.VertexID{v1, v2, v3}, path)

	s := stats.Compute(g)
	assert.Equal(t, 3, s.VertexCount)
	assert.Equal(t, 2, s.EdgeCount)
	assert.InDelta(t, 1.333, s.AverageDegree, 0.001)
	assert.InDelta(t, 0.667, s.Density, 0.001)
	assert.True(t, s.IsConnected)
	assert.False(t, s.HasCycles)
	assert.Equal(t, 3, s.SCCCount)
	assert.Equal(t, 1, s.ComponentCount)
	assert.Equal(t, 2, s.BridgeCount)
}

// TestCompute_Degenerate covers the nil, empty and single-vertex graphs.
func TestCompute_Degenerate(t *testing.T) {
	s := stats.Compute(core.NewGraph())
	assert.Equal(t, stats.Statistics{}, s)
	assert.Equal(t, stats.Statistics{}, stats.Compute(nil))

	g := core.NewGraph()
	g.AddVertex(core.VertexData{})
	s = stats.Compute(g)
	assert.True(t, s.IsConnected)
	assert.Zero(t, s.Density)
	assert.Zero(t, s.AverageDegree)
}

// TestCompute_CycleAndSplit checks cycle and component reporting.
func TestCompute_CycleAndSplit(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(core.VertexData{})
	b := g.AddVertex(core.VertexData{})
	g.AddVertex(core.VertexData{})
	_, _ = g.AddEdge(core.EdgeData{Src: a, Dst: b})
	_, _ = g.AddEdge(core.EdgeData{Src: b, Dst: a})

	s := stats.Compute(g)
	assert.True(t, s.HasCycles)
	assert.False(t, s.IsConnected)
	assert.Equal(t, 2, s.ComponentCount)
	assert.Equal(t, 2, s.SCCCount)
	assert.Zero(t, s.BridgeCount)
}
