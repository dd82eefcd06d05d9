// SPDX-License-Identifier: MIT

package merkle

import (
	"github.com/katalvlaran/graphseal/digest"
)

// Proof is an inclusion proof for one leaf. It is self-contained: the
// shape of the tree follows from LeafCount.
type Proof struct {
	LeafIndex   int           `json:"leaf_index"`
	LeafCount   int           `json:"leaf_count"`
	ProofHashes []digest.Hash `json:"proof_hashes"`
	RootHash    digest.Hash   `json:"root_hash"`
}

// ComputeRoot folds leaf with the sibling digests. ok is false when the
// proof is malformed: index out of range or the wrong number of siblings.
func (p *Proof) ComputeRoot(leaf digest.Hash) (digest.Hash, bool) {
	if p.LeafIndex < 0 || p.LeafIndex >= p.LeafCount {
		return digest.Hash{}, false
	}
	h, idx, size, used := leaf, p.LeafIndex, p.LeafCount, 0
	for size > 1 {
		switch {
		case idx%2 == 1:
			if used == len(p.ProofHashes) {
				return digest.Hash{}, false
			}
			h = digest.Combine(p.ProofHashes[used], h)
			used++
		case idx+1 < size:
			if used == len(p.ProofHashes) {
				return digest.Hash{}, false
			}
			h = digest.Combine(h, p.ProofHashes[used])
			used++
		}
		idx /= 2
		size = (size + 1) / 2
	}
	if used != len(p.ProofHashes) {
		return digest.Hash{}, false
	}

	return h, true
}

// Verify reports whether leaf recomputes the proof's own RootHash.
func (p *Proof) Verify(leaf digest.Hash) bool {
	return p.VerifyAgainst(leaf, p.RootHash)
}

// VerifyAgainst reports whether leaf recomputes root.
func (p *Proof) VerifyAgainst(leaf, root digest.Hash) bool {
	got, ok := p.ComputeRoot(leaf)

	return ok && got == root
}
