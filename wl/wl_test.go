// SPDX-License-Identifier: MIT

package wl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/wl"
)

// graphOf builds n vertices and the given edges, with IDs starting at base.
func graphOf(base uint64, n int, edges ...[2]int) *core.Graph {
	g := core.NewGraph(core.WithIDBase(base))
	ids := make([]core.VertexID, n)
	for i := range ids {
		ids[i] = g.AddVertex(core.VertexData{})
	}
	for _, e := range edges {
		_, _ = g.AddEdge(core.EdgeData{Src: ids[e[0]], Dst: ids[e[1]]})
	}

	return g
}

// TestComputeColoring_Values pins the color strings on a 2-path.
func TestComputeColoring_Values(t *testing.T) {
	g := graphOf(1, 3, [2]int{0, 1}, [2]int{1, 2})
	assert.Equal(t, []string{"deg_1", "deg_2", "deg_1"}, wl.New(0).ComputeColoring(g))
	assert.Equal(t, []string{"deg_1_deg_2", "deg_2_deg_1", "deg_1_"}, wl.New(1).ComputeColoring(g))
}

// TestComputeColoring_ParallelEdges repeats a neighbor once per edge.
func TestComputeColoring_ParallelEdges(t *testing.T) {
	g := graphOf(1, 2, [2]int{0, 1}, [2]int{0, 1})
	assert.Equal(t, "deg_2_deg_2,deg_2", wl.New(1).ComputeColoring(g)[0])
}

// TestAreIsomorphic_Relabeled accepts a relabeled copy and rejects different structure.
func TestAreIsomorphic_Relabeled(t *testing.T) {
	w := wl.New(wl.DefaultIterations)
	a := graphOf(1, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	b := graphOf(100, 4, [2]int{3, 2}, [2]int{2, 1}, [2]int{1, 0})
	assert.True(t, w.AreIsomorphic(a, a))
	assert.True(t, w.AreIsomorphic(a, b))

	star := graphOf(1, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	assert.False(t, w.AreIsomorphic(a, star))

	assert.False(t, w.AreIsomorphic(a, graphOf(1, 3)))
	assert.False(t, w.AreIsomorphic(a, graphOf(1, 4, [2]int{0, 1})))
}

// TestAreIsomorphic_RegularFalsePositive documents incompleteness: a 6-cycle
// and two 3-cycles refine identically.
func TestAreIsomorphic_RegularFalsePositive(t *testing.T) {
	c6 := graphOf(1, 6, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 0})
	two := graphOf(1, 6, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 3})
	assert.True(t, wl.New(5).AreIsomorphic(c6, two))
}

// TestCompression preserves the equality structure of the coloring.
func TestCompression(t *testing.T) {
	g := graphOf(1, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	raw := wl.New(3).ComputeColoring(g)
	short := wl.New(3, wl.WithCompression()).ComputeColoring(g)
	for i := range raw {
		for j := range raw {
			assert.Equal(t, raw[i] == raw[j], short[i] == short[j])
		}
		assert.Len(t, short[i], 17)
	}
	assert.Equal(t, 0, wl.New(-1).Iterations())
}

// TestNilGraph compares nil as the empty graph.
func TestNilGraph(t *testing.T) {
	w := wl.New(wl.DefaultIterations)
	assert.Empty(t, w.ComputeColoring(nil))
	assert.Empty(t, w.Histogram(nil))
	assert.True(t, w.AreIsomorphic(nil, core.NewGraph()))
	assert.True(t, w.AreIsomorphic(nil, nil))
	assert.False(t, w.AreIsomorphic(nil, graphOf(1, 1)))
	assert.False(t, w.AreIsomorphic(graphOf(1, 2), nil))
}
