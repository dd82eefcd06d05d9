// SPDX-License-Identifier: MIT

// Package canon computes canonical forms of property graphs: a vertex and
// edge ordering that depends only on structure and content, the canonical
// byte encoding (see package codec) written in that ordering, its SHA-256
// hash and an isomorphism-class string "<algorithm>_<hex hash>".
//
// Algorithms
//
// The algorithm picks the initial vertex coloring; everything after it is
// shared.
//
//	bliss   degree-sorted: total degree, then out-degree, then vertex content.
//	nauty   content only; the adjacency structure is left entirely to refinement.
//	custom  first label (default "Node"), then degree descending, then content.
//	        Edges are ordered by label before endpoints.
//
// Search
//
//  1. Color vertices by the algorithm key and equitably refine the
//     partition over the directed edge relation (package partition).
//  2. If cells remain, individualize each vertex of the first
//     non-singleton cell in turn and refine again, recursively.
//  3. Every discrete leaf is serialized; the lexicographically smallest
//     serialization wins.
//  4. Two leaves with identical bytes reveal an automorphism. Children of a
//     search node that lie in one orbit of the automorphisms found so far
//     (restricted to those fixing the node's individualized vertices) are
//     equivalent and explored once. A leaf equal to the first or best
//     leaf also ends the subtree where its path left that leaf's path,
//     since the whole subtree is an image of one already explored.
//  5. Twins (equal content, equal neighborhoods in both directions) are
//     interchangeable, so only one twin per cell is ever individualized.
//
// Because every step reads only structure and content, relabeled graphs
// produce byte-identical forms. The search stops after MaxLeaves leaves;
// the result then reports Exhaustive=false and is the best leaf seen, which
// is repeatable for one graph but no longer guaranteed relabel-invariant.
//
// Node ordering positions index into g.Vertices(); edge ordering positions
// index into g.Edges().
package canon
