// SPDX-License-Identifier: MIT

package partition

import "github.com/katalvlaran/graphseal/matrix"

// CanonicalLabeling pairs a working partition with the automorphism
// generators discovered while searching for a canonical order.
type CanonicalLabeling struct {
	Partition  Partition
	Generators []Permutation
}

// NewCanonicalLabeling starts from the trivial partition on n vertices.
func NewCanonicalLabeling(n int) *CanonicalLabeling {
	return &CanonicalLabeling{Partition: Trivial(n)}
}

// Refine refines the working partition against adj.
func (c *CanonicalLabeling) Refine(adj *matrix.Adjacency) bool {
	return c.Partition.Refine(adj)
}

// AddGenerator records an automorphism. Identity and duplicates are ignored.
func (c *CanonicalLabeling) AddGenerator(p Permutation) {
	if p.IsIdentity() {
		return
	}
	for _, g := range c.Generators {
		if g.Equal(p) {
			return
		}
	}
	c.Generators = append(c.Generators, p)
}

// Labeling returns the permutation position→vertex read off a discrete
// partition. ok is false while the partition still has a non-singleton cell.
func (c *CanonicalLabeling) Labeling() (Permutation, bool) {
	if !c.Partition.IsDiscrete() {
		return Permutation{}, false
	}

	return Permutation{Mapping: c.Partition.Order()}, true
}
