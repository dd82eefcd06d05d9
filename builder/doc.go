// SPDX-License-Identifier: MIT

// Package builder assembles deterministic graph fixtures on top of core.Graph.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        create a graph and apply constructors in order.
//     – Constructor:       one topology added as a disjoint component.
//   - Topologies:
//     – Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomSparse, PlatonicSolid.
//   - Configuration (BuilderOption):
//     – WithSeed / WithRand:  RNG for RandomSparse, weights and shuffling.
//     – WithShuffle:          permute vertex and edge insertion order.
//     – WithIDScheme:         write a "name" property from the vertex index.
//     – WithVertexLabel, WithEdgeLabel, WithPartitionPrefix.
//     – WithBidirectional:    emit every topology edge in both directions.
//     – WithWeightFn:         write a numeric "weight" edge property.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs,
//     identifiers included.
//   - Shuffled builds assign identifiers in a permuted order while every
//     property stays tied to the topological index, so a shuffled build is
//     a relabeled copy of the plain one.
//   - Fast-fail on meaningless option values via panics in option
//     constructors; constructors themselves return sentinel errors.
//
// Edges follow the core graph's direction: a Cycle is a directed ring
// 0→1→…→n-1→0 unless WithBidirectional is set.
package builder
