// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// visit order, hop distances and parent links, plus the two classic
// consumers of BFS: unweighted shortest paths and connected components.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start
//     vertex, following out-edges only. A vertex is never visited twice.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Hooks at three stages (OnEnqueue, OnDequeue, OnVisit), neighbor
//     filtering, a MaxDepth limit and an undirected mode that follows
//     in-edges as well.
//
// Connectivity
//
//	ConnectedComponents runs the undirected mode from every unvisited vertex,
//	so it reports weakly connected components: two vertices share a component
//	iff they are linked by a path that ignores edge direction. Directed
//	strong connectivity lives in dfs.StronglyConnectedComponents.
//
// Determinism
//
//	Neighbors are expanded in ascending VertexID order, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
