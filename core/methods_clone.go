// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Clone (deep copy, identifiers preserved) and InducedSubgraph.

package core

// Clone returns a deep copy of g. Identifiers and the ID counters are
// preserved, so the clone hands out the same next IDs as g would.
func (g *Graph) Clone() *Graph {
	c := g.cloneEmpty()
	for _, id := range g.Vertices() {
		c.putVertex(g.vertices[id])
	}
	for _, id := range g.Edges() {
		c.putEdge(g.edges[id])
	}

	return c
}

// InducedSubgraph returns a copy of g restricted to keep and the edges whose
// both endpoints are in keep. Identifiers are preserved; unknown IDs in keep
// are ignored.
func (g *Graph) InducedSubgraph(keep []VertexID) *Graph {
	c := g.cloneEmpty()
	in := make(map[VertexID]struct{}, len(keep))
	for _, id := range keep {
		if v, ok := g.vertices[id]; ok {
			in[id] = struct{}{}
			c.putVertex(v)
		}
	}
	for _, id := range g.Edges() {
		e := g.edges[id]
		_, a := in[e.Src]
		_, b := in[e.Dst]
		if a && b {
			c.putEdge(e)
		}
	}

	return c
}

func (g *Graph) cloneEmpty() *Graph {
	c := NewGraph()
	c.simple, c.noLoops = g.simple, g.noLoops
	c.nextVertexID, c.nextEdgeID = g.nextVertexID, g.nextEdgeID

	return c
}

// putVertex inserts a copy of v keeping v.ID.
func (g *Graph) putVertex(v *VertexData) {
	labels := make([]string, len(v.Labels))
	copy(labels, v.Labels)
	g.vertices[v.ID] = &VertexData{ID: v.ID, Labels: labels, Properties: copyProps(v.Properties)}
	for _, l := range labels {
		set, ok := g.vertexLabels[l]
		if !ok {
			set = make(map[VertexID]struct{})
			g.vertexLabels[l] = set
		}
		set[v.ID] = struct{}{}
	}
}

// putEdge inserts a copy of e keeping e.ID. Endpoints must already exist.
func (g *Graph) putEdge(e *EdgeData) {
	g.edges[e.ID] = &EdgeData{ID: e.ID, Label: e.Label, Src: e.Src, Dst: e.Dst, Properties: copyProps(e.Properties)}
	link(g.adjOut, e.Src, e.Dst, e.ID)
	link(g.adjIn, e.Dst, e.Src, e.ID)
	set, ok := g.edgeLabels[e.Label]
	if !ok {
		set = make(map[EdgeID]struct{})
		g.edgeLabels[e.Label] = set
	}
	set[e.ID] = struct{}{}
}
