// Package graphseal computes canonical forms, isomorphism verdicts and
// Merkle integrity proofs for labeled, property-carrying directed multigraphs.
//
// 🚀 What is graphseal?
//
//	A deterministic graph-integrity engine that brings together:
//		• Core primitives: vertices with ordered labels, edges with one label,
//		  tagged property values, adjacency indices kept in lockstep
//		• Algorithms: BFS, DFS, topological sort, SCCs, bridges, statistics
//		• Canonical labeling: individualization-refinement over colour
//		  partitions, three ordering algorithms (bliss, nauty, custom)
//		• Isomorphism: cheap invariants, then Weisfeiler-Lehman, then
//		  canonical hash comparison
//		• Merkle trees: inclusion proofs over canonical bytes or over named
//		  graph components, incremental leaf updates, a build cache
//
// ✨ Why graphseal?
//
//   - Relabel-invariant: the same graph hashes the same whatever ids it carries
//   - Content-sensitive: any change to labels, properties or structure shows
//   - Self-contained proofs: a Proof verifies with nothing but the leaf digest
//
// Packages:
//
//	core/      - Graph, VertexData, EdgeData, Value
//	bfs/, dfs/ - traversals, shortest paths, topological order, SCC, bridges
//	stats/     - one-call structural summary
//	matrix/    - dense adjacency view used by refinement
//	partition/ - ordered partitions, permutations, equitable refinement
//	wl/        - Weisfeiler-Lehman colour refinement
//	codec/     - canonical byte encoding and its decoder
//	digest/    - SHA-256 digests and pair combination
//	canon/     - GraphCanonicalizer
//	iso/       - isomorphism Checker
//	merkle/    - Tree, Proof, Builder, GraphTree, IncrementalTree
//	builder/   - deterministic topology generators
//	graphjson/ - JSON documents in and out
//	store/     - BadgerDB record store keyed by canonical hash
//	config/    - YAML configuration and component wiring
//
// Quick ASCII example:
//
//	    A───B        X───Y
//	    │   │   ≅    │   │
//	    C───D        Z───W
//
//	two squares with different identifiers share one isomorphism class and
//	one Merkle root.
//
//	go install github.com/katalvlaran/graphseal/cmd/graphseal@latest
package graphseal
