// SPDX-License-Identifier: MIT

// File: methods_adjacent.go
// Role: Adjacency queries: Degree, Out/InNeighbors, Out/InEdges, EdgesBetween.
// Determinism:
//   - All returned slices are sorted ascending.

package core

// Degree returns the in- and out-degree of id, counting every edge
// (parallel edges and loops included). ok is false if id is absent.
func (g *Graph) Degree(id VertexID) (in, out int, ok bool) {
	if _, ok = g.vertices[id]; !ok {
		return 0, 0, false
	}
	for _, set := range g.adjOut[id] {
		out += len(set)
	}
	for _, set := range g.adjIn[id] {
		in += len(set)
	}

	return in, out, true
}

// OutNeighbors returns the distinct targets of edges leaving id.
func (g *Graph) OutNeighbors(id VertexID) []VertexID {
	return neighborKeys(g.adjOut[id])
}

// InNeighbors returns the distinct sources of edges entering id.
func (g *Graph) InNeighbors(id VertexID) []VertexID {
	return neighborKeys(g.adjIn[id])
}

// OutEdges returns the edges leaving id.
func (g *Graph) OutEdges(id VertexID) []EdgeID {
	return edgeKeys(g.adjOut[id])
}

// InEdges returns the edges entering id.
func (g *Graph) InEdges(id VertexID) []EdgeID {
	return edgeKeys(g.adjIn[id])
}

// EdgesBetween returns the edges src→dst (more than one on a multigraph).
func (g *Graph) EdgesBetween(src, dst VertexID) []EdgeID {
	set := g.adjOut[src][dst]
	ids := make([]EdgeID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sortEdgeIDs(ids)

	return ids
}

func neighborKeys(inner map[VertexID]edgeSet) []VertexID {
	ids := make([]VertexID, 0, len(inner))
	for id := range inner {
		ids = append(ids, id)
	}
	sortVertexIDs(ids)

	return ids
}

func edgeKeys(inner map[VertexID]edgeSet) []EdgeID {
	var ids []EdgeID
	for _, set := range inner {
		for id := range set {
			ids = append(ids, id)
		}
	}
	sortEdgeIDs(ids)

	return ids
}
