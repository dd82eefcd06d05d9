// SPDX-License-Identifier: MIT

package merkle

import (
	"github.com/katalvlaran/graphseal/canon"
	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/digest"
)

// GraphRef ties a tree to the canonical form it was built from.
type GraphRef struct {
	Hash          digest.Hash `json:"hash"`
	CanonicalForm string      `json:"isomorphism_class"`
}

// GraphTree is a chunk tree bound to a canonicalization result.
type GraphTree struct {
	Tree *Tree
	Ref  GraphRef

	// ChunkMapping maps each leaf digest to its chunk name.
	ChunkMapping map[digest.Hash]string

	chunks  []Chunk
	builder *Builder
}

// NewGraphTree builds (or fetches from b's cache) the chunk tree of g.
func NewGraphTree(g *core.Graph, b *Builder) *GraphTree {
	t, chunks, res := b.build(g)

	return bindGraphTree(t, chunks, res, b)
}

func bindGraphTree(t *Tree, chunks []Chunk, res *canon.CanonicalizationResult, b *Builder) *GraphTree {
	gt := &GraphTree{
		Tree:         t,
		Ref:          GraphRef{Hash: res.Hash, CanonicalForm: res.IsomorphismClass},
		ChunkMapping: make(map[digest.Hash]string, len(chunks)),
		chunks:       chunks,
		builder:      b,
	}
	for _, c := range chunks {
		gt.ChunkMapping[c.Hash] = c.Name
	}

	return gt
}

// RootHash returns the tree root.
func (gt *GraphTree) RootHash() digest.Hash {
	h, _ := gt.Tree.RootHash()

	return h
}

// VerifyIntegrity reports whether g still matches this tree: same
// canonical hash, same chunk digests and same root. Any change to
// vertices, edges, labels or properties makes it false; relabeling does not.
func (gt *GraphTree) VerifyIntegrity(g *core.Graph) bool {
	chunks, res := gt.builder.Chunks(g)
	if res.Hash != gt.Ref.Hash || len(chunks) != gt.Tree.LeafCount() {
		return false
	}
	leaves := make([]digest.Hash, len(chunks))
	for i, c := range chunks {
		want, _ := gt.Tree.Leaf(i)
		if c.Hash != want {
			return false
		}
		leaves[i] = c.Hash
	}
	got, _ := NewTree(leaves).RootHash()

	return got == gt.RootHash()
}

// ComponentNames returns the chunk names in leaf order.
func (gt *GraphTree) ComponentNames() []string {
	names := make([]string, len(gt.chunks))
	for i, c := range gt.chunks {
		names[i] = c.Name
	}

	return names
}

// Component returns the chunk called name.
func (gt *GraphTree) Component(name string) (Chunk, bool) {
	for _, c := range gt.chunks {
		if c.Name == name {
			return c, true
		}
	}

	return Chunk{}, false
}

// ComponentProof returns the inclusion proof of chunk name.
func (gt *GraphTree) ComponentProof(name string) (*Proof, bool) {
	for i, c := range gt.chunks {
		if c.Name == name {
			return gt.Tree.GenerateProof(i)
		}
	}

	return nil, false
}
