// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/dfs"
)

// TestTopo_DAGOrder verifies position(u) < position(v) for every edge.
func TestTopo_DAGOrder(t *testing.T) {
	g := build(t, 6,
		[2]core.VertexID{5, 3}, [2]core.VertexID{3, 1}, [2]core.VertexID{1, 2},
		[2]core.VertexID{5, 2}, [2]core.VertexID{4, 2}, [2]core.VertexID{6, 4},
		[2]core.VertexID{1, 2}, // parallel edge
	)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 6)

	pos := make(map[core.VertexID]int)
	for i, v := range order {
		pos[v] = i
	}
	for _, eid := range g.Edges() {
		e, _ := g.Edge(eid)
		assert.Less(t, pos[e.Src], pos[e.Dst], "edge %d→%d", e.Src, e.Dst)
	}
	assert.Equal(t, []core.VertexID{5, 6, 3, 4, 1, 2}, order)
	assert.False(t, dfs.HasCycle(g))
}

// TestTopo_Cycle ensures a 3-cycle fails with ErrCycleDetected.
func TestTopo_Cycle(t *testing.T) {
	g := build(t, 3, [2]core.VertexID{1, 2}, [2]core.VertexID{2, 3}, [2]core.VertexID{3, 1})
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.True(t, dfs.HasCycle(g))
}

// TestTopo_SelfLoop counts a self-loop as a cycle.
func TestTopo_SelfLoop(t *testing.T) {
	g := build(t, 2, [2]core.VertexID{1, 2}, [2]core.VertexID{2, 2})
	assert.True(t, dfs.HasCycle(g))
}

// TestTopo_Empty sorts the empty graph trivially.
func TestTopo_Empty(t *testing.T) {
	order, err := dfs.TopologicalSort(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, order)
	_, err = dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
