// SPDX-License-Identifier: MIT

// Package core provides the property Graph used by every other graphseal
// package: labeled vertices, labeled directed edges, and the adjacency
// indices that keep them consistent.
//
// Storage is arena-style. Vertices and edges live in owning maps keyed by
// numeric identifiers; adjacency is a pair of back-reference indices
//
//	adjOut[src][dst][edgeID] = struct{}{}
//	adjIn[dst][src][edgeID]  = struct{}{}
//
// so parallel edges between the same ordered pair are kept distinct and
// counted separately (multigraph fidelity). No entity holds a pointer to
// another entity.
//
// Identifiers
//
//   - VertexID and EdgeID are assigned by the Graph from monotonic counters
//     starting at 1. An identifier is never reused after deletion.
//   - WithIDBase moves the starting point of both counters, which is handy
//     for building relabeled copies of a graph in tests.
//
// Configuration (GraphOption):
//
//	– WithSimpleEdges()
//	    At most one edge per ordered pair; a second AddEdge(src,dst)
//	    returns ErrMultiEdgeNotAllowed. Default: parallel edges allowed.
//
//	– WithoutLoops()
//	    Reject src == dst with ErrLoopNotAllowed. Default: loops allowed.
//
//	– WithIDBase(n)
//	    First assigned identifier (default 1).
//
// Determinism
//
//	Vertices(), Edges(), OutNeighbors(), InNeighbors(), OutEdges(), InEdges()
//	and the label queries all return ascending slices, so every algorithm
//	built on top of core iterates in a reproducible order.
//
// Concurrency
//
//	Graph is not synchronized. A Graph is owned by its caller; share it
//	across goroutines only behind an external sync.RWMutex.
//
// Errors:
//
//	ErrVertexNotFound       - AddEdge referenced a missing endpoint.
//	ErrLoopNotAllowed       - self-loop on a WithoutLoops graph.
//	ErrMultiEdgeNotAllowed  - parallel edge on a WithSimpleEdges graph.
//	ErrUnsupportedValue     - FromAny met a Go value it cannot represent.
package core
