// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/Edge/Edges/EdgeCount,
//       EdgesByLabel and EdgeLabels.
// Determinism:
//   - Edges() returns edges sorted by EdgeID asc.
//   - nextEdgeID is monotonic; removed IDs are never handed out again.

package core

import (
	"fmt"
	"sort"
)

// AddEdge stores a copy of e under a fresh EdgeID and links it into both
// adjacency indices in the same step.
//
// Steps:
//  1. Both endpoints must exist (else ErrVertexNotFound).
//  2. Loop and multi-edge constraints are checked against the graph options.
//  3. The edge is inserted into edges, adjOut, adjIn and the label index.
//
// Complexity: O(|properties|).
func (g *Graph) AddEdge(e EdgeData) (EdgeID, error) {
	if _, ok := g.vertices[e.Src]; !ok {
		return 0, fmt.Errorf("%w: src %d", ErrVertexNotFound, e.Src)
	}
	if _, ok := g.vertices[e.Dst]; !ok {
		return 0, fmt.Errorf("%w: dst %d", ErrVertexNotFound, e.Dst)
	}
	if e.Src == e.Dst && g.noLoops {
		return 0, ErrLoopNotAllowed
	}
	if g.simple && len(g.adjOut[e.Src][e.Dst]) > 0 {
		return 0, ErrMultiEdgeNotAllowed
	}

	id := g.nextEdgeID
	g.nextEdgeID++
	e.ID = id
	g.putEdge(&e)

	return id, nil
}

// RemoveEdge deletes the edge with the given id. Returns false if absent.
func (g *Graph) RemoveEdge(id EdgeID) bool {
	e, ok := g.edges[id]
	if !ok {
		return false
	}
	unlink(g.adjOut, e.Src, e.Dst, id)
	unlink(g.adjIn, e.Dst, e.Src, id)
	if set, ok := g.edgeLabels[e.Label]; ok {
		delete(set, id)
		if len(set) == 0 {
			delete(g.edgeLabels, e.Label)
		}
	}
	delete(g.edges, id)

	return true
}

// HasEdge reports whether id exists.
func (g *Graph) HasEdge(id EdgeID) bool {
	_, ok := g.edges[id]

	return ok
}

// Edge returns the stored edge (read-only).
func (g *Graph) Edge(id EdgeID) (*EdgeData, bool) {
	e, ok := g.edges[id]

	return e, ok
}

// EdgeCount returns |E|, counting parallel edges separately.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns every EdgeID in ascending order.
func (g *Graph) Edges() []EdgeID {
	ids := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sortEdgeIDs(ids)

	return ids
}

// EdgesByLabel returns the edges labeled l, ascending.
func (g *Graph) EdgesByLabel(l string) []EdgeID {
	set := g.edgeLabels[l]
	ids := make([]EdgeID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sortEdgeIDs(ids)

	return ids
}

// EdgeLabels returns every distinct edge label in ascending order.
func (g *Graph) EdgeLabels() []string {
	out := make([]string, 0, len(g.edgeLabels))
	for l := range g.edgeLabels {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

func link(adj map[VertexID]map[VertexID]edgeSet, a, b VertexID, id EdgeID) {
	inner, ok := adj[a]
	if !ok {
		inner = make(map[VertexID]edgeSet)
		adj[a] = inner
	}
	set, ok := inner[b]
	if !ok {
		set = make(edgeSet)
		inner[b] = set
	}
	set[id] = struct{}{}
}

func unlink(adj map[VertexID]map[VertexID]edgeSet, a, b VertexID, id EdgeID) {
	inner := adj[a]
	set := inner[b]
	delete(set, id)
	if len(set) == 0 {
		delete(inner, b)
	}
	if len(inner) == 0 {
		delete(adj, a)
	}
}
