// SPDX-License-Identifier: MIT

package merkle

import (
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/graphseal/canon"
	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/digest"
)

// DefaultChunkSize is the byte length of each leaf in BuildFromCanonicalBytes.
const DefaultChunkSize = 1024

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithCanonicalizer sets the canonicalizer that orders chunk contents.
func WithCanonicalizer(c *canon.GraphCanonicalizer) BuilderOption {
	return func(b *Builder) {
		if c != nil {
			b.canon = c
		}
	}
}

// WithLogger sets the diagnostics logger; nil is ignored.
func WithLogger(l logrus.FieldLogger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithChunkSize sets the byte chunk size; values below 1 are ignored.
func WithChunkSize(n int) BuilderOption {
	return func(b *Builder) {
		if n >= 1 {
			b.chunkSize = n
		}
	}
}

// Builder turns graphs into Merkle trees and caches the results.
//
// Thread Safety:
//
//	Builder is safe for concurrent use. The cache is guarded by an RWMutex
//	and concurrent builds of the same key share a single computation.
type Builder struct {
	canon     *canon.GraphCanonicalizer
	log       logrus.FieldLogger
	chunkSize int

	mu     sync.RWMutex
	cache  map[digest.Hash]*Tree
	flight singleflight.Group
}

// NewBuilder returns a Builder using a bliss canonicalizer by default.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		log:       logrus.StandardLogger(),
		chunkSize: DefaultChunkSize,
		cache:     make(map[digest.Hash]*Tree),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.canon == nil {
		b.canon = canon.New(canon.Bliss, canon.WithLogger(b.log))
	}

	return b
}

// Canonicalizer returns the canonicalizer the builder orders chunks with.
func (b *Builder) Canonicalizer() *canon.GraphCanonicalizer { return b.canon }

// Chunks returns the six graph chunks of g together with the canonical
// result they were ordered by. A nil graph is treated as empty.
func (b *Builder) Chunks(g *core.Graph) ([]Chunk, *canon.CanonicalizationResult) {
	if g == nil {
		g = core.NewGraph()
	}
	res := b.canon.Canonicalize(g)

	return graphChunks(g, res), res
}

// BuildFromGraph returns the chunk tree of g. Trees are cached by a digest
// of the vertex count, edge count and the first four chunk digests; the
// returned tree is shared and must not be modified.
func (b *Builder) BuildFromGraph(g *core.Graph) *Tree {
	t, _, _ := b.build(g)

	return t
}

func (b *Builder) build(g *core.Graph) (*Tree, []Chunk, *canon.CanonicalizationResult) {
	chunks, res := b.Chunks(g)
	n, m := res.NodeOrdering.Len(), res.EdgeOrdering.Len()
	key := cacheKey(n, m, chunks)
	log := b.log.WithField("key", key.Hex()[:16])

	b.mu.RLock()
	t, ok := b.cache[key]
	b.mu.RUnlock()
	if ok {
		builderCacheHits.Inc()
		log.Debug("merkle cache hit")
		return t, chunks, res
	}

	v, _, shared := b.flight.Do(key.Hex(), func() (interface{}, error) {
		b.mu.RLock()
		cached, ok := b.cache[key]
		b.mu.RUnlock()
		if ok {
			return cached, nil
		}
		builderCacheMisses.Inc()
		leaves := make([]digest.Hash, len(chunks))
		for i, c := range chunks {
			leaves[i] = c.Hash
		}
		built := NewTree(leaves)
		treeLeaves.Observe(float64(len(leaves)))

		b.mu.Lock()
		b.cache[key] = built
		b.mu.Unlock()
		log.WithFields(logrus.Fields{"vertices": n, "edges": m}).Debug("merkle tree built")

		return built, nil
	})
	if shared {
		log.Debug("merkle build shared with concurrent caller")
	}

	return v.(*Tree), chunks, res
}

// BuildFromCanonicalBytes splits the canonical encoding into ChunkSize
// pieces (the last may be shorter) and builds an uncached tree over them.
func (b *Builder) BuildFromCanonicalBytes(res *canon.CanonicalizationResult) *Tree {
	data := res.CanonicalGraph
	var blocks [][]byte
	for len(data) > 0 {
		n := min(b.chunkSize, len(data))
		blocks = append(blocks, data[:n])
		data = data[n:]
	}
	t := NewTreeFromData(blocks)
	treeLeaves.Observe(float64(len(blocks)))

	return t
}

// ClearCache drops every cached tree.
func (b *Builder) ClearCache() {
	b.mu.Lock()
	b.cache = make(map[digest.Hash]*Tree)
	b.mu.Unlock()
}

// CacheLen returns the number of cached trees.
func (b *Builder) CacheLen() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.cache)
}
