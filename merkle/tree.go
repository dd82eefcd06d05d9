// SPDX-License-Identifier: MIT

package merkle

import (
	"github.com/katalvlaran/graphseal/digest"
)

// Node is one vertex of the explicit hash tree. Leaves have no children; a
// promoted odd node appears on two consecutive levels as the same *Node.
type Node struct {
	Hash        digest.Hash
	Left, Right *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Tree is an immutable Merkle tree. Level slices give O(1) sibling lookup
// for proof generation; the Node tree mirrors them for traversal.
type Tree struct {
	levels [][]digest.Hash
	nodes  [][]*Node
}

// NewTree builds a tree over the given leaf digests (copied).
//
// Complexity: O(n) hashes.
func NewTree(leaves []digest.Hash) *Tree {
	t := &Tree{}
	if len(leaves) == 0 {
		return t
	}
	level := append([]digest.Hash(nil), leaves...)
	nodes := make([]*Node, len(level))
	for i, h := range level {
		nodes[i] = &Node{Hash: h}
	}
	t.levels = append(t.levels, level)
	t.nodes = append(t.nodes, nodes)

	for len(level) > 1 {
		nextLevel := make([]digest.Hash, 0, (len(level)+1)/2)
		nextNodes := make([]*Node, 0, cap(nextLevel))
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				nextLevel = append(nextLevel, level[i])
				nextNodes = append(nextNodes, nodes[i])
				continue
			}
			h := digest.Combine(level[i], level[i+1])
			nextLevel = append(nextLevel, h)
			nextNodes = append(nextNodes, &Node{Hash: h, Left: nodes[i], Right: nodes[i+1]})
		}
		level, nodes = nextLevel, nextNodes
		t.levels = append(t.levels, level)
		t.nodes = append(t.nodes, nodes)
	}

	return t
}

// NewTreeFromData hashes every data block and builds a tree over them.
func NewTreeFromData(blocks [][]byte) *Tree {
	leaves := make([]digest.Hash, len(blocks))
	for i, b := range blocks {
		leaves[i] = digest.Sum(b)
	}

	return NewTree(leaves)
}

// RootHash returns the root digest; ok is false for the empty tree.
func (t *Tree) RootHash() (digest.Hash, bool) {
	if len(t.levels) == 0 {
		return digest.Hash{}, false
	}

	return t.levels[len(t.levels)-1][0], true
}

// Root returns the root node, or nil for the empty tree.
func (t *Tree) Root() *Node {
	if len(t.nodes) == 0 {
		return nil
	}

	return t.nodes[len(t.nodes)-1][0]
}

// LeafCount returns the number of leaves.
func (t *Tree) LeafCount() int {
	if len(t.levels) == 0 {
		return 0
	}

	return len(t.levels[0])
}

// LeafHashes returns a copy of the leaf digests.
func (t *Tree) LeafHashes() []digest.Hash {
	if len(t.levels) == 0 {
		return nil
	}

	return append([]digest.Hash(nil), t.levels[0]...)
}

// Leaf returns leaf i.
func (t *Tree) Leaf(i int) (digest.Hash, bool) {
	if i < 0 || i >= t.LeafCount() {
		return digest.Hash{}, false
	}

	return t.levels[0][i], true
}

// Height returns the number of levels: 0 when empty, ⌈log2 n⌉+1 otherwise.
func (t *Tree) Height() int { return len(t.levels) }

// GenerateProof returns the inclusion proof of leaf i; ok is false when i is
// out of range.
//
// Complexity: O(log n).
func (t *Tree) GenerateProof(i int) (*Proof, bool) {
	n := t.LeafCount()
	if i < 0 || i >= n {
		return nil, false
	}
	root, _ := t.RootHash()
	p := &Proof{LeafIndex: i, LeafCount: n, RootHash: root}
	idx := i
	for _, level := range t.levels[:len(t.levels)-1] {
		switch {
		case idx%2 == 1:
			p.ProofHashes = append(p.ProofHashes, level[idx-1])
		case idx+1 < len(level):
			p.ProofHashes = append(p.ProofHashes, level[idx+1])
		}
		idx /= 2
	}

	return p, true
}

// VerifyProof reports whether p proves leaf against this tree: same shape,
// same root and a path that recomputes it.
func (t *Tree) VerifyProof(p *Proof, leaf digest.Hash) bool {
	root, ok := t.RootHash()
	if !ok || p == nil || p.LeafCount != t.LeafCount() || p.RootHash != root {
		return false
	}

	return p.Verify(leaf)
}

// setLeaf overwrites leaf i and rehashes its path to the root.
func (t *Tree) setLeaf(i int, h digest.Hash) {
	t.levels[0][i] = h
	t.nodes[0][i].Hash = h
	idx := i
	for k := 0; k+1 < len(t.levels); k++ {
		level, parent := t.levels[k], idx/2
		left := 2 * parent
		var ph digest.Hash
		if left+1 < len(level) {
			ph = digest.Combine(level[left], level[left+1])
		} else {
			ph = level[left]
		}
		t.levels[k+1][parent] = ph
		t.nodes[k+1][parent].Hash = ph
		idx = parent
	}
}
