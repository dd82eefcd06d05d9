// SPDX-License-Identifier: MIT

// Package matrix builds the adjacency relation of a core.Graph in index
// space.
//
// Rows and columns are indexed by the position of each vertex in
// g.Vertices() (ascending VertexID), so index i is stable for a given
// graph. Cells count edges: on a multigraph Count(i,j) may exceed 1, and a
// self-loop lands on the diagonal.
//
// Storage is row-sparse: every row keeps its out-list and in-list (one entry
// per edge) plus a pair-count map, so memory is O(n + m) rather than O(n²).
// Partition refinement walks the lists; Count/Has/Symmetric answer point
// queries in O(1).
package matrix
