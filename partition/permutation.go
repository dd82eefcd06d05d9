// SPDX-License-Identifier: MIT

package partition

import (
	"errors"
	"fmt"
)

// ErrNotBijection is returned by NewPermutation for a mapping that is not
// a bijection on 0..n-1.
var ErrNotBijection = errors.New("partition: mapping is not a bijection")

// Permutation is a bijection on 0..n-1. Mapping[i] is the index that
// position i maps to.
type Permutation struct {
	Mapping []int
}

// Identity returns the identity permutation on n points.
func Identity(n int) Permutation {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}

	return Permutation{Mapping: m}
}

// NewPermutation validates mapping and wraps a copy of it.
func NewPermutation(mapping []int) (Permutation, error) {
	seen := make([]bool, len(mapping))
	for i, x := range mapping {
		if x < 0 || x >= len(mapping) || seen[x] {
			return Permutation{}, fmt.Errorf("%w: position %d maps to %d", ErrNotBijection, i, x)
		}
		seen[x] = true
	}
	m := make([]int, len(mapping))
	copy(m, mapping)

	return Permutation{Mapping: m}, nil
}

// Len returns the number of points.
func (p Permutation) Len() int { return len(p.Mapping) }

// Apply returns the image of i.
func (p Permutation) Apply(i int) int { return p.Mapping[i] }

// Compose returns the permutation "p, then q": r[i] = q[p[i]].
// Both permutations must have the same length.
func (p Permutation) Compose(q Permutation) Permutation {
	r := make([]int, len(p.Mapping))
	for i, x := range p.Mapping {
		r[i] = q.Mapping[x]
	}

	return Permutation{Mapping: r}
}

// Inverse returns p⁻¹.
func (p Permutation) Inverse() Permutation {
	r := make([]int, len(p.Mapping))
	for i, x := range p.Mapping {
		r[x] = i
	}

	return Permutation{Mapping: r}
}

// IsIdentity reports whether p fixes every point.
func (p Permutation) IsIdentity() bool {
	for i, x := range p.Mapping {
		if i != x {
			return false
		}
	}

	return true
}

// Equal reports whether p and q map every point identically.
func (p Permutation) Equal(q Permutation) bool {
	if len(p.Mapping) != len(q.Mapping) {
		return false
	}
	for i := range p.Mapping {
		if p.Mapping[i] != q.Mapping[i] {
			return false
		}
	}

	return true
}
