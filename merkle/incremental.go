// SPDX-License-Identifier: MIT

package merkle

import (
	"sort"

	"github.com/katalvlaran/graphseal/digest"
)

// IncrementalTree is a Merkle tree whose leaves can be replaced in place.
// Updates are batched: EnsureRootUpdated rehashes only the paths of leaves
// changed since the last call. Not safe for concurrent use.
type IncrementalTree struct {
	tree  *Tree
	dirty map[int]digest.Hash
}

// NewIncremental builds an incremental tree over leaves (copied).
func NewIncremental(leaves []digest.Hash) *IncrementalTree {
	return &IncrementalTree{tree: NewTree(leaves), dirty: make(map[int]digest.Hash)}
}

// UpdateLeaf schedules leaf i to become h. It returns false when i is out
// of range.
func (it *IncrementalTree) UpdateLeaf(i int, h digest.Hash) bool {
	if i < 0 || i >= it.tree.LeafCount() {
		return false
	}
	it.dirty[i] = h

	return true
}

// Pending returns the number of leaves changed since the last rehash.
func (it *IncrementalTree) Pending() int { return len(it.dirty) }

// EnsureRootUpdated applies pending updates in ascending leaf order.
//
// Complexity: O(k log n) for k pending leaves.
func (it *IncrementalTree) EnsureRootUpdated() {
	if len(it.dirty) == 0 {
		return
	}
	idx := make([]int, 0, len(it.dirty))
	for i := range it.dirty {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	for _, i := range idx {
		it.tree.setLeaf(i, it.dirty[i])
	}
	it.dirty = make(map[int]digest.Hash)
}

// RootHash applies pending updates and returns the root.
func (it *IncrementalTree) RootHash() (digest.Hash, bool) {
	it.EnsureRootUpdated()

	return it.tree.RootHash()
}

// Tree applies pending updates and returns the underlying tree. The tree
// changes with later updates.
func (it *IncrementalTree) Tree() *Tree {
	it.EnsureRootUpdated()

	return it.tree
}
