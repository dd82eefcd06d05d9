// SPDX-License-Identifier: MIT

package graphjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/graphseal/core"
)

// Sentinel errors for document decoding.
var (
	// ErrMalformed wraps JSON syntax and type errors.
	ErrMalformed = errors.New("graphjson: malformed document")

	// ErrMissingID is returned for a vertex without an id.
	ErrMissingID = errors.New("graphjson: vertex id is required")

	// ErrDuplicateID is returned when two vertices (or two edges) share an id.
	ErrDuplicateID = errors.New("graphjson: duplicate id")

	// ErrDanglingEdge is returned when an edge endpoint names no vertex.
	ErrDanglingEdge = errors.New("graphjson: edge endpoint not found")
)

// ID is an external identifier; JSON strings and numbers are both accepted.
type ID string

// UnmarshalJSON accepts "abc" or 42.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())

	return nil
}

// Vertex is the wire form of one vertex.
type Vertex struct {
	ID         ID             `json:"id"`
	Labels     []string       `json:"labels,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Edge is the wire form of one edge. ID is optional on input.
type Edge struct {
	ID         ID             `json:"id,omitempty"`
	Label      string         `json:"label,omitempty"`
	Src        ID             `json:"src"`
	Dst        ID             `json:"dst"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Document is the top-level wire form.
type Document struct {
	Vertices []Vertex `json:"vertices"`
	Edges    []Edge   `json:"edges"`
}

// IDMap records which core identifier each external identifier became.
type IDMap struct {
	Vertices map[ID]core.VertexID
	Edges    map[ID]core.EdgeID
}

// Decode reads one document from r into a new graph built with opts.
//
// Errors: ErrMalformed, ErrMissingID, ErrDuplicateID, ErrDanglingEdge,
// core.ErrUnsupportedValue and core insertion errors (loops or parallel
// edges forbidden by opts), all wrapped with the offending position.
func Decode(r io.Reader, opts ...core.GraphOption) (*core.Graph, *IDMap, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return FromDocument(&doc, opts...)
}

// FromDocument builds a graph from an already decoded document.
func FromDocument(doc *Document, opts ...core.GraphOption) (*core.Graph, *IDMap, error) {
	g := core.NewGraph(opts...)
	ids := &IDMap{
		Vertices: make(map[ID]core.VertexID, len(doc.Vertices)),
		Edges:    make(map[ID]core.EdgeID, len(doc.Edges)),
	}

	for i, v := range doc.Vertices {
		if v.ID == "" {
			return nil, nil, fmt.Errorf("%w: vertices[%d]", ErrMissingID, i)
		}
		if _, dup := ids.Vertices[v.ID]; dup {
			return nil, nil, fmt.Errorf("%w: vertex %q", ErrDuplicateID, v.ID)
		}
		props, err := properties(v.Properties)
		if err != nil {
			return nil, nil, fmt.Errorf("vertices[%d]: %w", i, err)
		}
		ids.Vertices[v.ID] = g.AddVertex(core.VertexData{Labels: v.Labels, Properties: props})
	}

	for i, e := range doc.Edges {
		src, ok := ids.Vertices[e.Src]
		if !ok {
			return nil, nil, fmt.Errorf("%w: edges[%d].src %q", ErrDanglingEdge, i, e.Src)
		}
		dst, ok := ids.Vertices[e.Dst]
		if !ok {
			return nil, nil, fmt.Errorf("%w: edges[%d].dst %q", ErrDanglingEdge, i, e.Dst)
		}
		if e.ID != "" {
			if _, dup := ids.Edges[e.ID]; dup {
				return nil, nil, fmt.Errorf("%w: edge %q", ErrDuplicateID, e.ID)
			}
		}
		props, err := properties(e.Properties)
		if err != nil {
			return nil, nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
		eid, err := g.AddEdge(core.EdgeData{Label: e.Label, Src: src, Dst: dst, Properties: props})
		if err != nil {
			return nil, nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
		if e.ID != "" {
			ids.Edges[e.ID] = eid
		}
	}

	return g, ids, nil
}

// ToDocument renders g with decimal core identifiers as external ids.
func ToDocument(g *core.Graph) *Document {
	doc := &Document{Vertices: []Vertex{}, Edges: []Edge{}}
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		doc.Vertices = append(doc.Vertices, Vertex{
			ID:         vertexRef(id),
			Labels:     v.Labels,
			Properties: anyProps(v.Properties),
		})
	}
	for _, id := range g.Edges() {
		e, _ := g.Edge(id)
		doc.Edges = append(doc.Edges, Edge{
			ID:         ID(strconv.FormatUint(uint64(id), 10)),
			Label:      e.Label,
			Src:        vertexRef(e.Src),
			Dst:        vertexRef(e.Dst),
			Properties: anyProps(e.Properties),
		})
	}

	return doc
}

// Encode writes g as an indented JSON document. It fails only for values
// JSON cannot carry (NaN, ±Inf).
func Encode(w io.Writer, g *core.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDocument(g)); err != nil {
		return fmt.Errorf("graphjson: encode: %w", err)
	}

	return nil
}

func vertexRef(id core.VertexID) ID { return ID(strconv.FormatUint(uint64(id), 10)) }

func properties(in map[string]any) (map[string]core.Value, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[string]core.Value, len(in))
	for k, x := range in {
		v, err := core.FromAny(x)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
		out[k] = v
	}

	return out, nil
}

func anyProps(in map[string]core.Value) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v.Any()
	}

	return out
}
