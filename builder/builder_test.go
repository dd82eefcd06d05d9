// SPDX-License-Identifier: MIT

// Package builder_test verifies topology counts, option effects and the
// relabeled-copy guarantee of shuffled builds.
package builder_test

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphseal/builder"
	"github.com/katalvlaran/graphseal/canon"
	"github.com/katalvlaran/graphseal/core"
)

// TestBuilders_Counts runs table-driven count checks for each constructor.
func TestBuilders_Counts(t *testing.T) {
	tests := []struct {
		name         string
		ctor         builder.Constructor
		opts         []builder.BuilderOption
		wantV, wantE int
	}{
		{"Path(4)", builder.Path(4), nil, 4, 3},
		{"Cycle(5)", builder.Cycle(5), nil, 5, 5},
		{"Cycle(5) bidirectional", builder.Cycle(5), []builder.BuilderOption{builder.WithBidirectional()}, 5, 10},
		{"Star(6)", builder.Star(6), nil, 6, 5},
		{"Wheel(5)", builder.Wheel(5), nil, 5, 8},
		{"Complete(4)", builder.Complete(4), nil, 4, 6},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), nil, 5, 6},
		{"Grid(2,3)", builder.Grid(2, 3), nil, 6, 7},
		{"RandomSparse(5,1) with loops", builder.RandomSparse(5, 1), nil, 5, 25},
		{"RandomSparse(5,0)", builder.RandomSparse(5, 0), nil, 5, 0},
		{"Cube", builder.PlatonicSolid(builder.Cube), nil, 8, 12},
		{"Octahedron", builder.PlatonicSolid(builder.Octahedron), nil, 6, 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(tc.ctor, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

// TestBuilders_Validation checks sentinel errors for bad parameters.
func TestBuilders_Validation(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"path", builder.Path(1), builder.ErrTooFewVertices},
		{"cycle", builder.Cycle(2), builder.ErrTooFewVertices},
		{"star", builder.Star(1), builder.ErrTooFewVertices},
		{"wheel", builder.Wheel(3), builder.ErrTooFewVertices},
		{"complete", builder.Complete(0), builder.ErrTooFewVertices},
		{"bipartite", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"grid", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"probability", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"platonic", builder.PlatonicSolid(builder.PlatonicName(42)), builder.ErrConstructFailed},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

// TestBuilders_Properties checks names, labels and weights.
func TestBuilders_Properties(t *testing.T) {
	g, err := builder.Build(builder.Star(3),
		builder.WithDefaultIDs(),
		builder.WithVertexLabel("Node"),
		builder.WithEdgeLabel("spoke"),
		builder.WithConstantWeight(2.5),
	)
	require.NoError(t, err)

	hub, ok := g.Vertex(1)
	require.True(t, ok)
	assert.Equal(t, []string{"Node", builder.HubLabel}, hub.Labels)
	name, _ := hub.Properties[builder.PropName].AsString()
	assert.Equal(t, builder.CenterName, name)

	leaf, _ := g.Vertex(3)
	name, _ = leaf.Properties[builder.PropName].AsString()
	assert.Equal(t, "2", name)

	for _, id := range g.Edges() {
		e, _ := g.Edge(id)
		assert.Equal(t, "spoke", e.Label)
		w, _ := e.Properties[builder.PropWeight].AsNumber()
		assert.Equal(t, 2.5, w)
	}

	bi, err := builder.Build(builder.CompleteBipartite(1, 2), builder.WithPartitionPrefix("A", ""))
	require.NoError(t, err)
	assert.Len(t, bi.VerticesByLabel("A"), 1)
	assert.Len(t, bi.VerticesByLabel("R"), 2)

	grid, err := builder.Build(builder.Grid(2, 2), builder.WithExcelColumnIDs())
	require.NoError(t, err)
	last, _ := grid.Vertex(4)
	name, _ = last.Properties[builder.PropName].AsString()
	assert.Equal(t, "1,1", name, "grid cells keep coordinate names")
}

// TestBuilders_ShuffleIsRelabeling: shuffled builds canonicalize identically.
func TestBuilders_ShuffleIsRelabeling(t *testing.T) {
	l, _ := test.NewNullLogger()
	c := canon.New(canon.Nauty, canon.WithLogger(l))
	opts := []builder.BuilderOption{builder.WithDefaultIDs(), builder.WithUniformIntWeight(1, 9)}

	for _, ctor := range []builder.Constructor{builder.Wheel(6), builder.Grid(3, 3), builder.CompleteBipartite(2, 3)} {
		plain, err := builder.Build(ctor, append(opts, builder.WithSeed(7))...)
		require.NoError(t, err)
		shuffled, err := builder.Build(ctor, append(opts, builder.WithSeed(7), builder.WithShuffle())...)
		require.NoError(t, err)

		assert.Equal(t, c.Canonicalize(plain).Hash, c.Canonicalize(shuffled).Hash)
	}
}

// TestBuilders_ShuffleReorders checks identifiers really move.
func TestBuilders_ShuffleReorders(t *testing.T) {
	plain, err := builder.Build(builder.Grid(3, 3), builder.WithDefaultIDs())
	require.NoError(t, err)
	shuffled, err := builder.Build(builder.Grid(3, 3), builder.WithDefaultIDs(), builder.WithSeed(7), builder.WithShuffle())
	require.NoError(t, err)
	assert.NotEqual(t, vertexNames(plain), vertexNames(shuffled))
	assert.ElementsMatch(t, vertexNames(plain), vertexNames(shuffled))
}

// TestBuilders_SeedDeterminism repeats a seeded random build.
func TestBuilders_SeedDeterminism(t *testing.T) {
	a, err := builder.Build(builder.RandomSparse(12, 0.3), builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.Build(builder.RandomSparse(12, 0.3), builder.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, edgePairs(a), edgePairs(b))
}

// TestBuilders_ComposeAndSimple composes components and honors core options.
func TestBuilders_ComposeAndSimple(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())

	g2, err := builder.BuildGraph([]core.GraphOption{core.WithoutLoops()}, nil, builder.RandomSparse(3, 1))
	require.NoError(t, err)
	assert.Equal(t, 6, g2.EdgeCount())

	require.NoError(t, builder.Apply(g, nil, builder.Path(2)))
	assert.Equal(t, 8, g.VertexCount())

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
}

// vertexNames lists "name" properties in VertexID order.
func vertexNames(g *core.Graph) []string {
	var out []string
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		s, _ := v.Properties[builder.PropName].AsString()
		out = append(out, s)
	}

	return out
}

func edgePairs(g *core.Graph) [][2]core.VertexID {
	var out [][2]core.VertexID
	for _, id := range g.Edges() {
		e, _ := g.Edge(id)
		out = append(out, [2]core.VertexID{e.Src, e.Dst})
	}

	return out
}
