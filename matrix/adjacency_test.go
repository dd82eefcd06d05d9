// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/matrix"
)

// TestNewAdjacency_Counts checks multigraph counts, loops and the symmetric view.
func TestNewAdjacency_Counts(t *testing.T) {
	g := core.NewGraph(core.WithIDBase(10))
	a := g.AddVertex(core.VertexData{})
	b := g.AddVertex(core.VertexData{})
	c := g.AddVertex(core.VertexData{})
	_, _ = g.AddEdge(core.EdgeData{Src: a, Dst: b})
	_, _ = g.AddEdge(core.EdgeData{Src: a, Dst: b})
	_, _ = g.AddEdge(core.EdgeData{Src: c, Dst: c})

	m, err := matrix.NewAdjacency(g)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, 0, m.VertexIndex[a])
	assert.Equal(t, c, m.VertexAt(2))
	assert.Equal(t, 2, m.Count(0, 1))
	assert.False(t, m.Has(1, 0))
	assert.True(t, m.Symmetric(1, 0))
	assert.Equal(t, 1, m.Count(2, 2))
	assert.Equal(t, 2, m.OutDegree(0))
	assert.Equal(t, 2, m.InDegree(1))
	assert.Equal(t, []int{1, 1}, m.Out(0))
	assert.Equal(t, []int{0, 0}, m.In(1))
}

// TestNewAdjacency_Nil returns the sentinel for nil input.
func TestNewAdjacency_Nil(t *testing.T) {
	_, err := matrix.NewAdjacency(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

// TestFromCounts synthesizes IDs 1..n.
func TestFromCounts(t *testing.T) {
	m, err := matrix.FromCounts(2, []int{0, 1, 0, 0})
	require.NoError(t, err)
	assert.True(t, m.Has(0, 1))
	assert.Equal(t, core.VertexID(2), m.VertexAt(1))

	_, err = matrix.FromCounts(2, []int{0})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
