// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/graphseal/core"
)

// ErrGraphNil is returned when a nil graph is passed to NewAdjacency.
var ErrGraphNil = errors.New("matrix: graph is nil")

// ErrDimensionMismatch is returned by FromCounts for a slice that is not n×n.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// pair is an ordered (row, col) cell key.
type pair struct{ i, j int }

// Adjacency is an n×n edge-count matrix in row-sparse form.
type Adjacency struct {
	n     int
	out   [][]int // out[i]: column of every edge leaving i, ascending
	in    [][]int // in[j]: row of every edge entering j, ascending
	count map[pair]int

	// VertexIndex maps VertexID → row/col.
	VertexIndex map[core.VertexID]int

	vertexByIndex []core.VertexID
}

// NewAdjacency BUILDS the edge-count relation of g.
// Implementation:
//   - Stage 1: index vertices in ascending ID order.
//   - Stage 2: walk edges in ascending ID order, appending to the
//     endpoint lists and bumping the pair count.
//
// Errors:
//   - ErrGraphNil.
//
// Complexity:
//   - Time O(n + m log m), Space O(n + m).
func NewAdjacency(g *core.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	a := newAdjacency(len(ids))
	a.vertexByIndex = ids
	for i, id := range ids {
		a.VertexIndex[id] = i
	}
	for _, eid := range g.Edges() {
		e, _ := g.Edge(eid)
		a.add(a.VertexIndex[e.Src], a.VertexIndex[e.Dst], 1)
	}
	a.sortLists()

	return a, nil
}

// FromCounts builds an Adjacency from a row-major n×n count slice.
// Vertex IDs are synthesized as 1..n. Mostly useful in tests.
func FromCounts(n int, counts []int) (*Adjacency, error) {
	if len(counts) != n*n {
		return nil, fmt.Errorf("%w: want %d cells, got %d", ErrDimensionMismatch, n*n, len(counts))
	}
	a := newAdjacency(n)
	for i := 0; i < n; i++ {
		id := core.VertexID(i + 1)
		a.VertexIndex[id] = i
		a.vertexByIndex[i] = id
		for j := 0; j < n; j++ {
			if c := counts[i*n+j]; c > 0 {
				a.add(i, j, c)
			}
		}
	}
	a.sortLists()

	return a, nil
}

func newAdjacency(n int) *Adjacency {
	return &Adjacency{
		n:             n,
		out:           make([][]int, n),
		in:            make([][]int, n),
		count:         make(map[pair]int),
		VertexIndex:   make(map[core.VertexID]int, n),
		vertexByIndex: make([]core.VertexID, n),
	}
}

func (a *Adjacency) add(i, j, c int) {
	for k := 0; k < c; k++ {
		a.out[i] = append(a.out[i], j)
		a.in[j] = append(a.in[j], i)
	}
	a.count[pair{i, j}] += c
}

func (a *Adjacency) sortLists() {
	for i := 0; i < a.n; i++ {
		sort.Ints(a.out[i])
		sort.Ints(a.in[i])
	}
}

// Size returns n.
func (a *Adjacency) Size() int { return a.n }

// Count returns the number of edges i→j.
func (a *Adjacency) Count(i, j int) int { return a.count[pair{i, j}] }

// Has reports whether at least one edge i→j exists.
func (a *Adjacency) Has(i, j int) bool { return a.count[pair{i, j}] > 0 }

// Symmetric reports whether i and j are adjacent in either direction.
func (a *Adjacency) Symmetric(i, j int) bool { return a.Has(i, j) || a.Has(j, i) }

// Out returns the targets of the edges leaving i, one entry per edge.
// The slice is shared and must not be modified.
func (a *Adjacency) Out(i int) []int { return a.out[i] }

// In returns the sources of the edges entering j, one entry per edge.
// The slice is shared and must not be modified.
func (a *Adjacency) In(j int) []int { return a.in[j] }

// OutDegree returns the number of edges leaving i.
func (a *Adjacency) OutDegree(i int) int { return len(a.out[i]) }

// InDegree returns the number of edges entering j.
func (a *Adjacency) InDegree(j int) int { return len(a.in[j]) }

// VertexAt returns the VertexID at index i.
func (a *Adjacency) VertexAt(i int) core.VertexID { return a.vertexByIndex[i] }
