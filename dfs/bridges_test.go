// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/dfs"
)

// TestBridges_Path reports both edges of v1-v2-v3.
func TestBridges_Path(t *testing.T) {
	g := build(t, 3, [2]core.VertexID{1, 2}, [2]core.VertexID{2, 3})
	assert.Equal(t, []core.EdgeID{1, 2}, dfs.Bridges(g))
}

// TestBridges_Triangle reports none for v1-v2-v3-v1, regardless of direction.
func TestBridges_Triangle(t *testing.T) {
	g := build(t, 3, [2]core.VertexID{1, 2}, [2]core.VertexID{2, 3}, [2]core.VertexID{3, 1})
	assert.Empty(t, dfs.Bridges(g))

	mixed := build(t, 3, [2]core.VertexID{1, 2}, [2]core.VertexID{3, 2}, [2]core.VertexID{1, 3})
	assert.Empty(t, dfs.Bridges(mixed))
}

// TestBridges_ParallelAndLoops ignores loops and never reports parallel edges.
func TestBridges_ParallelAndLoops(t *testing.T) {
	g := build(t, 4,
		[2]core.VertexID{1, 2}, [2]core.VertexID{2, 1}, // reciprocal pair
		[2]core.VertexID{2, 3}, [2]core.VertexID{3, 3}, // bridge + loop
		[2]core.VertexID{3, 4}, [2]core.VertexID{3, 4}, // parallel pair
	)
	assert.Equal(t, []core.EdgeID{3}, dfs.Bridges(g))
}

// TestBridges_TwoTrees handles a forest and returns sorted IDs.
func TestBridges_TwoTrees(t *testing.T) {
	g := build(t, 5, [2]core.VertexID{4, 5}, [2]core.VertexID{1, 2}, [2]core.VertexID{3, 2})
	assert.Equal(t, []core.EdgeID{1, 2, 3}, dfs.Bridges(g))
	assert.Nil(t, dfs.Bridges(nil))
}
