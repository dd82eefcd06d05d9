// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted on a simple graph.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrUnsupportedValue indicates FromAny received a type with no Value kind.
	ErrUnsupportedValue = errors.New("core: unsupported property value")
)

// VertexID identifies a vertex within one Graph. Zero is never assigned.
type VertexID uint64

// EdgeID identifies an edge within one Graph. Zero is never assigned.
type EdgeID uint64

// VertexData is a vertex with its ordered labels and property map.
type VertexData struct {
	// ID is assigned by Graph.AddVertex; any incoming value is ignored.
	ID VertexID

	// Labels keep their insertion order; the order is part of the vertex content.
	Labels []string

	// Properties maps keys to tagged values.
	Properties map[string]Value
}

// EdgeData is a directed edge Src→Dst with a single label.
type EdgeData struct {
	// ID is assigned by Graph.AddEdge; any incoming value is ignored.
	ID EdgeID

	Label string
	Src   VertexID
	Dst   VertexID

	Properties map[string]Value
}

// HasLabel reports whether l is one of the vertex labels.
func (v *VertexData) HasLabel(l string) bool {
	for _, x := range v.Labels {
		if x == l {
			return true
		}
	}

	return false
}

// edgeSet is the innermost adjacency level: the edges joining one ordered pair.
type edgeSet map[EdgeID]struct{}

// Graph is an arena-backed directed property multigraph.
//
// Invariant: for every edge e=(src,dst), e.ID ∈ adjOut[src][dst] and
// e.ID ∈ adjIn[dst][src], and both endpoints exist in vertices.
type Graph struct {
	simple  bool // reject parallel edges
	noLoops bool // reject self-loops

	nextVertexID VertexID
	nextEdgeID   EdgeID

	vertices map[VertexID]*VertexData
	edges    map[EdgeID]*EdgeData

	adjOut map[VertexID]map[VertexID]edgeSet
	adjIn  map[VertexID]map[VertexID]edgeSet

	vertexLabels map[string]map[VertexID]struct{}
	edgeLabels   map[string]map[EdgeID]struct{}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithSimpleEdges forbids more than one edge per ordered vertex pair.
func WithSimpleEdges() GraphOption {
	return func(g *Graph) { g.simple = true }
}

// WithoutLoops forbids self-loops.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.noLoops = true }
}

// WithIDBase sets the first identifier handed out for vertices and edges.
// Values below 1 are ignored.
func WithIDBase(base uint64) GraphOption {
	return func(g *Graph) {
		if base >= 1 {
			g.nextVertexID = VertexID(base)
			g.nextEdgeID = EdgeID(base)
		}
	}
}

// NewGraph creates an empty Graph configured by opts.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nextVertexID: 1,
		nextEdgeID:   1,
		vertices:     make(map[VertexID]*VertexData),
		edges:        make(map[EdgeID]*EdgeData),
		adjOut:       make(map[VertexID]map[VertexID]edgeSet),
		adjIn:        make(map[VertexID]map[VertexID]edgeSet),
		vertexLabels: make(map[string]map[VertexID]struct{}),
		edgeLabels:   make(map[string]map[EdgeID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Simple reports whether parallel edges are rejected.
func (g *Graph) Simple() bool { return g.simple }

// Looped reports whether self-loops are accepted.
func (g *Graph) Looped() bool { return !g.noLoops }
