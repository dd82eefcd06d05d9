// SPDX-License-Identifier: MIT

// Package merkle builds SHA-256 Merkle trees over graphs and verifies
// inclusion proofs against them.
//
// Tree shape
//
// Level 0 holds the leaf digests in order. Each higher level pairs
// neighbours left to right, parent = SHA-256(left || right). When a level
// has an odd number of nodes the last one is promoted unchanged, so a
// single leaf is its own root and a tree over n ≥ 1 leaves has
// ⌈log2 n⌉+1 levels. The empty tree has no root.
//
// Proofs
//
// A Proof lists one sibling digest per level where the path node has a
// sibling. Bit k of the leaf index says whether the path node is a right
// child at level k; a level where the path node is the promoted odd node
// consumes no digest. Verification needs only the leaf count, the index and
// the sibling list.
//
// Graph chunks
//
// Builder splits a graph into six identifier-free chunks in a fixed order:
//
//	vertices       vertex records in canonical order
//	edges          edge records in canonical order, endpoints as positions
//	adj_out        per position: out-degree then sorted target positions
//	adj_in         per position: in-degree then sorted source positions
//	vertex_labels  per distinct label: sorted positions carrying it
//	edge_labels    per distinct label: sorted edge positions carrying it
//
// Every chunk starts with its own name, so no two chunks of one graph share
// a digest. Positions come from the canonical ordering (package canon),
// which makes the root identical for relabeled copies of a graph.
package merkle
