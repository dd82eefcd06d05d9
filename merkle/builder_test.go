// SPDX-License-Identifier: MIT

package merkle_test

import (
	"sync"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphseal/canon"
	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/merkle"
)

func newBuilder(opts ...merkle.BuilderOption) *merkle.Builder {
	l, _ := test.NewNullLogger()
	c := canon.New(canon.Bliss, canon.WithLogger(l))

	return merkle.NewBuilder(append([]merkle.BuilderOption{merkle.WithLogger(l), merkle.WithCanonicalizer(c)}, opts...)...)
}

// social builds a small labeled graph; base shifts every identifier and
// reverse flips the insertion order.
func social(t testing.TB, base uint64, reverse bool) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithIDBase(base))
	names := []string{"ann", "bob", "cy"}
	if reverse {
		names = []string{"cy", "bob", "ann"}
	}
	ids := map[string]core.VertexID{}
	for _, n := range names {
		ids[n] = g.AddVertex(core.VertexData{
			Labels:     []string{"Person"},
			Properties: map[string]core.Value{"name": core.String(n)},
		})
	}
	pairs := [][2]string{{"ann", "bob"}, {"bob", "cy"}, {"cy", "ann"}, {"ann", "cy"}}
	if reverse {
		pairs = [][2]string{{"ann", "cy"}, {"cy", "ann"}, {"bob", "cy"}, {"ann", "bob"}}
	}
	for _, p := range pairs {
		_, err := g.AddEdge(core.EdgeData{Label: "knows", Src: ids[p[0]], Dst: ids[p[1]]})
		require.NoError(t, err)
	}

	return g
}

// TestBuilder_ChunkOrder fixes the six leaves and their names.
func TestBuilder_ChunkOrder(t *testing.T) {
	b := newBuilder()
	chunks, res := b.Chunks(social(t, 1, false))
	require.Len(t, chunks, 6)
	for i, c := range chunks {
		assert.Equal(t, merkle.ChunkNames[i], c.Name)
	}
	assert.Equal(t, 3, res.NodeOrdering.Len())

	seen := map[[32]byte]bool{}
	for _, c := range chunks {
		assert.False(t, seen[c.Hash], "chunk %s collides", c.Name)
		seen[c.Hash] = true
	}

	empty, _ := b.Chunks(nil)
	assert.Len(t, empty, 6)
}

// TestBuilder_RelabelInvariantRoot: identifiers never reach a leaf.
func TestBuilder_RelabelInvariantRoot(t *testing.T) {
	b := newBuilder()
	r1, _ := b.BuildFromGraph(social(t, 1, false)).RootHash()
	b.ClearCache()
	r2, _ := b.BuildFromGraph(social(t, 700, true)).RootHash()
	assert.Equal(t, r1, r2)
}

// TestBuilder_Cache reuses trees for structurally identical graphs.
func TestBuilder_Cache(t *testing.T) {
	b := newBuilder()
	t1 := b.BuildFromGraph(social(t, 1, false))
	assert.Equal(t, 1, b.CacheLen())
	t2 := b.BuildFromGraph(social(t, 50, true))
	assert.Same(t, t1, t2)
	assert.Equal(t, 1, b.CacheLen())

	g := social(t, 1, false)
	_, _ = g.AddEdge(core.EdgeData{Label: "knows", Src: 1, Dst: 1})
	assert.NotSame(t, t1, b.BuildFromGraph(g))
	assert.Equal(t, 2, b.CacheLen())

	b.ClearCache()
	assert.Equal(t, 0, b.CacheLen())
}

// TestBuilder_ConcurrentBuilds races many builders on one key.
func TestBuilder_ConcurrentBuilds(t *testing.T) {
	b := newBuilder()
	want, _ := newBuilder().BuildFromGraph(social(t, 1, false)).RootHash()

	var wg sync.WaitGroup
	roots := make([][32]byte, 16)
	for i := range roots {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, _ := b.BuildFromGraph(social(t, uint64(1+i*10), i%2 == 0)).RootHash()
			roots[i] = r
		}(i)
	}
	wg.Wait()

	for _, r := range roots {
		assert.Equal(t, [32]byte(want), r)
	}
	assert.Equal(t, 1, b.CacheLen())
}

// TestBuilder_CanonicalBytes splits the encoding into fixed-size leaves.
func TestBuilder_CanonicalBytes(t *testing.T) {
	b := newBuilder(merkle.WithChunkSize(16))
	_, res := b.Chunks(social(t, 1, false))
	tr := b.BuildFromCanonicalBytes(res)
	want := (len(res.CanonicalGraph) + 15) / 16
	assert.Equal(t, want, tr.LeafCount())

	whole := newBuilder().BuildFromCanonicalBytes(res)
	assert.Equal(t, 1, whole.LeafCount(), "default chunk size holds a small graph")
}
