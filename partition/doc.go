// SPDX-License-Identifier: MIT

// Package partition implements the refinement primitives behind canonical
// labeling: ordered vertex partitions, equitable refinement over an
// adjacency matrix, and permutations.
//
// A Partition is an ordered sequence of cells over the vertex indices
// 0..n-1. Cells never overlap and together cover every index. Refine
// repeatedly splits any cell whose members disagree on their signature
// relative to the current cells: the multiset of (cell, direction) pairs
// over the vertex's incident edges, which is the same information as the
// number of edges the vertex sends into and receives from every cell.
// Sub-cells are placed where the old cell stood, ordered by signature. When
// every cell is a singleton the signature is exactly the vertex's
// adjacency row and column.
//
// Because signatures only mention cell positions, refinement commutes with
// any relabeling of the vertices: two isomorphic graphs started from
// corresponding partitions end in corresponding partitions.
//
// Known incompleteness: refinement alone stalls on graphs whose vertices
// look alike at every depth (regular graphs being the classic case), and a
// stalled partition is not a canonical labeling. Individualize is the hook
// for the individualization-refinement search that resolves such ties; the
// canon package drives that search.
package partition
