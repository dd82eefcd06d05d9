// SPDX-License-Identifier: MIT

package merkle_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphseal/digest"
	"github.com/katalvlaran/graphseal/merkle"
)

func leaves(n int) []digest.Hash {
	out := make([]digest.Hash, n)
	for i := range out {
		out[i] = digest.Sum([]byte(fmt.Sprintf("leaf-%d", i)))
	}

	return out
}

// TestTree_ProofRoundTrip covers odd promotion and multi-level paths.
func TestTree_ProofRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 8} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			ls := leaves(n)
			tr := merkle.NewTree(ls)
			require.Equal(t, n, tr.LeafCount())
			for i := 0; i < n; i++ {
				p, ok := tr.GenerateProof(i)
				require.True(t, ok)
				assert.True(t, tr.VerifyProof(p, ls[i]), "leaf %d", i)
				assert.True(t, p.Verify(ls[i]))
				assert.False(t, p.Verify(digest.Sum([]byte("other"))), "foreign leaf %d", i)
			}
		})
	}
}

// TestTree_Height follows ⌈log2 n⌉+1.
func TestTree_Height(t *testing.T) {
	want := map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 3, 5: 4, 8: 4, 9: 5}
	for n, h := range want {
		assert.Equal(t, h, merkle.NewTree(leaves(n)).Height(), "n=%d", n)
	}
}

// TestTree_ThreeLeaves checks the promotion rule by hand.
func TestTree_ThreeLeaves(t *testing.T) {
	ls := leaves(3)
	tr := merkle.NewTree(ls)
	root, ok := tr.RootHash()
	require.True(t, ok)
	assert.Equal(t, digest.Combine(digest.Combine(ls[0], ls[1]), ls[2]), root)

	p, _ := tr.GenerateProof(2)
	assert.Equal(t, []digest.Hash{digest.Combine(ls[0], ls[1])}, p.ProofHashes,
		"the promoted leaf needs no sibling at level 0")

	p0, _ := tr.GenerateProof(0)
	assert.Equal(t, []digest.Hash{ls[1], ls[2]}, p0.ProofHashes)

	r := tr.Root()
	require.NotNil(t, r)
	assert.False(t, r.IsLeaf())
	assert.True(t, r.Right.IsLeaf(), "promoted node keeps its identity")
	assert.Equal(t, ls[2], r.Right.Hash)
}

// TestTree_SingleLeaf: one leaf is its own root with an empty proof.
func TestTree_SingleLeaf(t *testing.T) {
	ls := leaves(1)
	tr := merkle.NewTree(ls)
	root, _ := tr.RootHash()
	assert.Equal(t, ls[0], root)
	p, ok := tr.GenerateProof(0)
	require.True(t, ok)
	assert.Empty(t, p.ProofHashes)
	assert.True(t, p.Verify(ls[0]))
}

// TestTree_Empty has no root and issues no proofs.
func TestTree_Empty(t *testing.T) {
	tr := merkle.NewTree(nil)
	_, ok := tr.RootHash()
	assert.False(t, ok)
	assert.Nil(t, tr.Root())
	_, ok = tr.GenerateProof(0)
	assert.False(t, ok)
	assert.False(t, tr.VerifyProof(&merkle.Proof{}, digest.Hash{}))
}

// TestProof_Tampering rejects altered proofs and foreign trees.
func TestProof_Tampering(t *testing.T) {
	ls := leaves(5)
	tr := merkle.NewTree(ls)
	p, _ := tr.GenerateProof(1)

	bad := *p
	bad.ProofHashes = append([]digest.Hash(nil), p.ProofHashes...)
	bad.ProofHashes[0][0] ^= 0xFF
	assert.False(t, bad.Verify(ls[1]))

	short := *p
	short.ProofHashes = p.ProofHashes[:len(p.ProofHashes)-1]
	_, ok := short.ComputeRoot(ls[1])
	assert.False(t, ok)

	moved := *p
	moved.LeafIndex = 7
	_, ok = moved.ComputeRoot(ls[1])
	assert.False(t, ok)

	other := merkle.NewTree(leaves(6))
	assert.False(t, other.VerifyProof(p, ls[1]))

	root, _ := tr.RootHash()
	assert.True(t, p.VerifyAgainst(ls[1], root))
	assert.False(t, p.VerifyAgainst(ls[1], digest.Hash{}))

	_, ok = tr.GenerateProof(5)
	assert.False(t, ok)
	_, ok = tr.GenerateProof(-1)
	assert.False(t, ok)
}

// TestTree_LeafChangeInvalidatesProofs changes one leaf, rebuilds, and
// requires every proof issued by the old tree to fail against the new root.
func TestTree_LeafChangeInvalidatesProofs(t *testing.T) {
	for _, n := range []int{3, 5, 8} {
		for changed := 0; changed < n; changed++ {
			t.Run(fmt.Sprintf("n=%d/leaf=%d", n, changed), func(t *testing.T) {
				ls := leaves(n)
				before := merkle.NewTree(ls)
				oldRoot, _ := before.RootHash()
				proofs := make([]*merkle.Proof, n)
				for i := range proofs {
					p, ok := before.GenerateProof(i)
					require.True(t, ok)
					proofs[i] = p
				}

				edited := append([]digest.Hash(nil), ls...)
				edited[changed] = digest.Sum([]byte("edited"))
				newRoot, _ := merkle.NewTree(edited).RootHash()
				require.NotEqual(t, oldRoot, newRoot)

				for i, p := range proofs {
					assert.True(t, p.VerifyAgainst(ls[i], oldRoot), "leaf %d", i)
					assert.False(t, p.VerifyAgainst(ls[i], newRoot), "leaf %d", i)
				}
			})
		}
	}
}

// TestTree_FromData hashes blocks before building.
func TestTree_FromData(t *testing.T) {
	tr := merkle.NewTreeFromData([][]byte{[]byte("a"), []byte("b")})
	root, _ := tr.RootHash()
	assert.Equal(t, digest.Combine(digest.Sum([]byte("a")), digest.Sum([]byte("b"))), root)
	assert.Equal(t, []digest.Hash{digest.Sum([]byte("a")), digest.Sum([]byte("b"))}, tr.LeafHashes())
}

// TestIncremental_MatchesRebuild compares in-place rehashing to a fresh tree.
func TestIncremental_MatchesRebuild(t *testing.T) {
	for _, n := range []int{1, 3, 5, 8} {
		ls := leaves(n)
		it := merkle.NewIncremental(ls)
		updated := append([]digest.Hash(nil), ls...)
		for i := 0; i < n; i += 2 {
			h := digest.Sum([]byte(fmt.Sprintf("new-%d", i)))
			require.True(t, it.UpdateLeaf(i, h))
			updated[i] = h
		}
		assert.Equal(t, (n+1)/2, it.Pending())

		want, _ := merkle.NewTree(updated).RootHash()
		got, ok := it.RootHash()
		require.True(t, ok)
		assert.Equal(t, want, got, "n=%d", n)
		assert.Equal(t, 0, it.Pending())
		assert.Equal(t, updated, it.Tree().LeafHashes(), "untouched leaves keep their digests")

		for i := 0; i < n; i++ {
			p, _ := it.Tree().GenerateProof(i)
			assert.True(t, p.Verify(updated[i]))
		}
	}
	assert.False(t, merkle.NewIncremental(leaves(2)).UpdateLeaf(2, digest.Hash{}))
}
