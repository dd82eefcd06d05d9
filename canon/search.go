// SPDX-License-Identifier: MIT

package canon

import (
	"bytes"

	"github.com/katalvlaran/graphseal/partition"
)

// search is the state of one individualization-refinement run. The first
// leaf and the best leaf are kept; a later leaf equal to either of them
// yields an automorphism used to prune sibling branches, and the search
// jumps back to where the current path left the matching one.
type search struct {
	inst      *instance
	maxLeaves int

	leaves    int
	truncated bool

	// path holds the vertices individualized on the way to the current node.
	path []int
	// jumpTo, when >= 0, unwinds every node deeper than that level.
	jumpTo int

	firstBytes []byte
	firstOrder []int
	firstPath  []int

	bestBytes []byte
	bestOrder []int
	bestEdges []int
	bestPath  []int

	gens []generator
	// twin maps each vertex to its twin class representative.
	twin []int
}

// generator is an automorphism together with the points it moves.
type generator struct {
	perm  partition.Permutation
	moved []int
}

// level tracks the orbits of the automorphisms fixing one node's path.
// Orbits are merged lazily: seen counts the generators already applied.
type level struct {
	fixed []int
	uf    *unionFind
	seen  int
}

func newSearch(inst *instance, maxLeaves int) *search {
	return &search{inst: inst, maxLeaves: maxLeaves, jumpTo: -1, twin: inst.twinClasses()}
}

// run explores the subtree rooted at p.
func (s *search) run(p partition.Partition) {
	if s.leaves >= s.maxLeaves {
		s.truncated = true
		return
	}
	p.Refine(s.inst.adj)
	ci := p.FirstNonSingleton()
	if ci < 0 {
		s.leaf(p.Order())
		return
	}

	depth := len(s.path)
	lv := &level{fixed: s.path[:depth:depth]}
	var explored []int
	for _, v := range p.Cell(ci) {
		if len(explored) > 0 && s.sameOrbit(lv, v, explored) {
			continue
		}
		explored = append(explored, v)
		s.path = append(s.path[:depth], v)
		s.run(p.Individualize(ci, v))
		s.path = s.path[:depth]
		if s.truncated {
			return
		}
		if s.jumpTo >= 0 {
			if s.jumpTo < depth {
				return
			}
			s.jumpTo = -1
		}
	}
}

func (s *search) leaf(order []int) {
	s.leaves++
	enc, edges := s.inst.serialize(order)
	path := append([]int(nil), s.path...)
	if s.firstOrder == nil {
		s.firstBytes, s.firstOrder, s.firstPath = enc, order, path
		s.bestBytes, s.bestOrder, s.bestEdges, s.bestPath = enc, order, edges, path
		return
	}

	jump := -1
	if bytes.Equal(enc, s.firstBytes) {
		s.addAutomorphism(s.firstOrder, order)
		jump = commonPrefix(s.firstPath, path)
	}
	switch c := bytes.Compare(enc, s.bestBytes); {
	case c == 0:
		s.addAutomorphism(s.bestOrder, order)
		if at := commonPrefix(s.bestPath, path); jump < 0 || at < jump {
			jump = at
		}
	case c < 0:
		s.bestBytes, s.bestOrder, s.bestEdges, s.bestPath = enc, order, edges, path
	}
	// The subtree hanging below the divergence point is the image of one
	// already explored, so nothing in it can produce a new leaf.
	if jump >= 0 {
		s.jumpTo = jump
	}
}

// addAutomorphism records γ with γ(a[k]) = b[k]. Equal encodings under two
// orders mean that relabeling is structure preserving.
func (s *search) addAutomorphism(a, b []int) {
	m := make([]int, len(a))
	for k := range a {
		m[a[k]] = b[k]
	}
	g := partition.Permutation{Mapping: m}
	var moved []int
	for i, j := range g.Mapping {
		if i != j {
			moved = append(moved, i)
		}
	}
	if len(moved) == 0 {
		return
	}
	for _, h := range s.gens {
		if h.perm.Equal(g) {
			return
		}
	}
	s.gens = append(s.gens, generator{perm: g, moved: moved})
}

// automorphisms returns the recorded generators as permutations.
func (s *search) automorphisms() []partition.Permutation {
	out := make([]partition.Permutation, len(s.gens))
	for i, g := range s.gens {
		out[i] = g.perm
	}

	return out
}

// sameOrbit reports whether v shares an orbit with an explored vertex under
// the group generated by twin transpositions and the automorphisms that fix
// every vertex of lv. Two twins sharing a non-singleton cell are both off
// the path, so their transposition fixes it.
func (s *search) sameOrbit(lv *level, v int, explored []int) bool {
	for _, u := range explored {
		if s.twin[u] == s.twin[v] {
			return true
		}
	}
	if lv.seen < len(s.gens) {
		if lv.uf == nil {
			lv.uf = newUnionFind(len(s.inst.vids))
			for i, r := range s.twin {
				lv.uf.union(i, r)
			}
		}
		for _, g := range s.gens[lv.seen:] {
			if !fixesAll(g.perm, lv.fixed) {
				continue
			}
			for _, i := range g.moved {
				lv.uf.union(i, g.perm.Mapping[i])
			}
		}
		lv.seen = len(s.gens)
	}
	if lv.uf == nil {
		return false
	}
	root := lv.uf.find(v)
	for _, u := range explored {
		if lv.uf.find(u) == root {
			return true
		}
	}

	return false
}

func commonPrefix(a, b []int) int {
	k := 0
	for k < len(a) && k < len(b) && a[k] == b[k] {
		k++
	}

	return k
}

func fixesAll(g partition.Permutation, fixed []int) bool {
	for _, v := range fixed {
		if g.Mapping[v] != v {
			return false
		}
	}

	return true
}

type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}
