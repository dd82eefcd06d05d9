// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/RemoveVertex/Vertex/Vertices/VertexCount,
//       label index maintenance and VerticesByLabel.
// Determinism:
//   - Vertices() and VerticesByLabel() return IDs sorted ascending.

package core

import "sort"

// AddVertex stores a copy of v under a freshly assigned VertexID and returns it.
// v.ID is ignored. Labels and properties are copied so later caller mutation
// cannot reach into the graph.
//
// Complexity: O(|labels| + |properties|).
func (g *Graph) AddVertex(v VertexData) VertexID {
	id := g.nextVertexID
	g.nextVertexID++
	v.ID = id
	g.putVertex(&v)

	return id
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id VertexID) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the stored vertex. The pointer is owned by the graph and
// must be treated as read-only.
func (g *Graph) Vertex(id VertexID) (*VertexData, bool) {
	v, ok := g.vertices[id]

	return v, ok
}

// RemoveVertex deletes id together with every incident edge.
// Returns false if id does not exist.
//
// Complexity: O(deg(id) + |labels|).
func (g *Graph) RemoveVertex(id VertexID) bool {
	v, ok := g.vertices[id]
	if !ok {
		return false
	}
	for _, eid := range g.OutEdges(id) {
		g.RemoveEdge(eid)
	}
	for _, eid := range g.InEdges(id) {
		g.RemoveEdge(eid)
	}
	for _, l := range v.Labels {
		if set, ok := g.vertexLabels[l]; ok {
			delete(set, id)
			if len(set) == 0 {
				delete(g.vertexLabels, l)
			}
		}
	}
	delete(g.adjOut, id)
	delete(g.adjIn, id)
	delete(g.vertices, id)

	return true
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertices returns every VertexID in ascending order.
func (g *Graph) Vertices() []VertexID {
	ids := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sortVertexIDs(ids)

	return ids
}

// VerticesByLabel returns the vertices carrying label l, ascending.
func (g *Graph) VerticesByLabel(l string) []VertexID {
	set := g.vertexLabels[l]
	ids := make([]VertexID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sortVertexIDs(ids)

	return ids
}

// VertexLabels returns every distinct vertex label in ascending order.
func (g *Graph) VertexLabels() []string {
	out := make([]string, 0, len(g.vertexLabels))
	for l := range g.vertexLabels {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

func sortVertexIDs(ids []VertexID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

func sortEdgeIDs(ids []EdgeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
