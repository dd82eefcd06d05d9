// SPDX-License-Identifier: MIT

// Package dfs implements depth-first algorithms on core.Graph: traversal,
// topological sort, cycle detection, strongly connected components and
// bridge finding.
//
// Every algorithm runs on an explicit stack, so depth is bounded by heap
// memory rather than by the goroutine stack; a million-vertex path is fine.
//
// Key features:
//   - DFS(g, start, opts...): pre-order visit sequence along out-edges, with
//     post-order, depth and parent data; WithFullTraversal covers the forest.
//   - TopologicalSort(g): Kahn's algorithm; ErrCycleDetected is its only
//     failure and HasCycle is defined as that failure.
//   - FindCycles(g): every simple directed cycle once, each in its minimal
//     rotation.
//   - StronglyConnectedComponents(g): Tarjan's algorithm over directed edges.
//   - Bridges(g): low-link bridge detection on the undirected view.
//
// Determinism:
//
//	Roots and neighbors are taken in ascending ID order, so every result is
//	reproducible for a given graph.
//
// Complexity:
//
//   - Time:   O(V + E) for DFS, TopologicalSort, SCC and Bridges.
//   - Memory: O(V) plus the explicit stack.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - ErrCycleDetected          from TopologicalSort on a cyclic graph.
//   - context errors and any error returned by OnVisit or OnExit.
package dfs
