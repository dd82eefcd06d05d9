// SPDX-License-Identifier: MIT

package partition

import (
	"sort"

	"github.com/katalvlaran/graphseal/matrix"
)

// Partition is an ordered sequence of disjoint cells covering 0..n-1.
type Partition struct {
	cells [][]int
}

// Discrete returns n singleton cells [0] [1] … [n-1].
func Discrete(n int) Partition {
	cells := make([][]int, n)
	for i := range cells {
		cells[i] = []int{i}
	}

	return Partition{cells: cells}
}

// Trivial returns a single cell holding every index (no cells when n == 0).
func Trivial(n int) Partition {
	if n == 0 {
		return Partition{}
	}
	cell := make([]int, n)
	for i := range cell {
		cell[i] = i
	}

	return Partition{cells: [][]int{cell}}
}

// FromRanks groups indices by rank; cells appear in ascending rank order.
// ranks[i] is the rank of vertex i.
func FromRanks(ranks []int) Partition {
	byRank := make(map[int][]int)
	keys := make([]int, 0)
	for i, r := range ranks {
		if _, ok := byRank[r]; !ok {
			keys = append(keys, r)
		}
		byRank[r] = append(byRank[r], i)
	}
	sort.Ints(keys)
	cells := make([][]int, len(keys))
	for i, r := range keys {
		cells[i] = byRank[r]
	}

	return Partition{cells: cells}
}

// Len returns the number of cells.
func (p Partition) Len() int { return len(p.cells) }

// Cell returns a copy of cell i.
func (p Partition) Cell(i int) []int {
	out := make([]int, len(p.cells[i]))
	copy(out, p.cells[i])

	return out
}

// Cells returns a deep copy of all cells.
func (p Partition) Cells() [][]int {
	out := make([][]int, len(p.cells))
	for i := range p.cells {
		out[i] = p.Cell(i)
	}

	return out
}

// IsDiscrete reports whether every cell is a singleton.
func (p Partition) IsDiscrete() bool {
	for _, c := range p.cells {
		if len(c) != 1 {
			return false
		}
	}

	return true
}

// CellOf returns, for every vertex index, the position of its cell.
func (p Partition) CellOf() []int {
	n := 0
	for _, c := range p.cells {
		n += len(c)
	}
	of := make([]int, n)
	for ci, c := range p.cells {
		for _, v := range c {
			of[v] = ci
		}
	}

	return of
}

// Order flattens the cells into a vertex sequence. On a discrete partition
// this is the labeling: Order()[k] is the vertex placed at position k.
func (p Partition) Order() []int {
	var out []int
	for _, c := range p.cells {
		out = append(out, c...)
	}

	return out
}

// FirstNonSingleton returns the index of the first cell with more than one
// member, or -1 when p is discrete.
func (p Partition) FirstNonSingleton() int {
	for i, c := range p.cells {
		if len(c) > 1 {
			return i
		}
	}

	return -1
}

// SplitCell replaces cell i by the given parts, in order. The parts must
// partition the cell exactly; SplitCell panics otherwise since that is a
// programming error, not a data error.
func (p *Partition) SplitCell(i int, parts [][]int) {
	total := 0
	for _, part := range parts {
		total += len(part)
	}
	if total != len(p.cells[i]) {
		panic("partition: split parts do not cover the cell")
	}
	next := make([][]int, 0, len(p.cells)+len(parts)-1)
	next = append(next, p.cells[:i]...)
	next = append(next, parts...)
	next = append(next, p.cells[i+1:]...)
	p.cells = next
}

// Individualize returns a copy of p where v is moved out of cell i into a
// singleton placed directly before the rest of that cell.
func (p Partition) Individualize(i, v int) Partition {
	q := p.clone()
	if len(q.cells[i]) < 2 {
		return q
	}
	rest := make([]int, 0, len(q.cells[i])-1)
	for _, x := range q.cells[i] {
		if x != v {
			rest = append(rest, x)
		}
	}
	if len(rest) == len(q.cells[i]) {
		return q
	}
	q.SplitCell(i, [][]int{{v}, rest})

	return q
}

// Refine splits cells until the partition is equitable with respect to adj.
// It returns true when at least one cell was split.
//
// The signature of vertex v is the sorted multiset of codes 2·cell(u) for
// every edge v→u and 2·cell(u)+1 for every edge u→v, cells taken from the
// partition as it stood at the start of the pass. Vertices of one cell with
// equal signatures stay together; the sub-cells replace the old cell in
// ascending signature order. Passes repeat until one splits nothing.
//
// Complexity: O(m log m) per pass, at most n passes.
func (p *Partition) Refine(adj *matrix.Adjacency) bool {
	changed := false
	for {
		of := p.CellOf()
		next := make([][]int, 0, len(p.cells))
		split := false
		for _, cell := range p.cells {
			if len(cell) == 1 {
				next = append(next, cell)
				continue
			}
			parts := splitBySignature(adj, cell, of)
			if len(parts) > 1 {
				split = true
			}
			next = append(next, parts...)
		}
		p.cells = next
		if !split {
			return changed
		}
		changed = true
	}
}

// signature returns the sorted cell-relative edge codes of v.
func signature(adj *matrix.Adjacency, v int, of []int) []int {
	out, in := adj.Out(v), adj.In(v)
	sig := make([]int, 0, len(out)+len(in))
	for _, u := range out {
		sig = append(sig, 2*of[u])
	}
	for _, u := range in {
		sig = append(sig, 2*of[u]+1)
	}
	sort.Ints(sig)

	return sig
}

// splitBySignature groups the cell's vertices by signature and returns the
// groups ordered by signature.
func splitBySignature(adj *matrix.Adjacency, cell []int, of []int) [][]int {
	sigs := make([][]int, len(cell))
	for idx, v := range cell {
		sigs[idx] = signature(adj, v, of)
	}

	order := make([]int, len(cell))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return compareInts(sigs[order[a]], sigs[order[b]]) < 0
	})

	var parts [][]int
	for i, oi := range order {
		if i == 0 || compareInts(sigs[order[i-1]], sigs[oi]) != 0 {
			parts = append(parts, nil)
		}
		parts[len(parts)-1] = append(parts[len(parts)-1], cell[oi])
	}
	for _, part := range parts {
		sort.Ints(part)
	}

	return parts
}

func compareInts(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

func (p Partition) clone() Partition {
	return Partition{cells: p.Cells()}
}
