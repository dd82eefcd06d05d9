// SPDX-License-Identifier: MIT

// Package dijkstra computes weighted shortest paths over a core.Graph.
//
// Edge weights are read from a numeric edge property ("weight" by default).
// Edges without the property cost DefaultWeight, so an unweighted graph
// yields hop counts. Walks follow edge direction unless WithUndirected is
// given.
//
// Complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key on a binary heap.
//   - Space: O(V + E).
//
// Errors (sentinel):
//
//   - ErrNilGraph        nil graph pointer.
//   - ErrVertexNotFound  source absent from the graph.
//   - ErrNegativeWeight  an edge weight below zero (checked before the walk).
//   - ErrBadWeight       a weight property that is not a finite number.
//   - ErrBadMaxDistance  negative WithMaxDistance.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, src, dijkstra.WithUndirected())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, ok := res.PathTo(dst)
package dijkstra
