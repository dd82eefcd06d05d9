// SPDX-License-Identifier: MIT

package graphjson_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphseal/canon"
	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/graphjson"
)

const social = `{
  "vertices": [
    {"id": "alice", "labels": ["Person"], "properties": {"age": 41, "tags": ["x", true]}},
    {"id": 7, "labels": ["Person"]},
    {"id": "acme", "labels": ["Company"], "properties": {"hq": {"city": "Oslo"}}}
  ],
  "edges": [
    {"id": "k", "label": "knows", "src": "alice", "dst": 7},
    {"label": "works_at", "src": 7, "dst": "acme", "properties": {"since": 2019}}
  ]
}`

// TestDecode_Social maps external ids and carries labels and properties.
func TestDecode_Social(t *testing.T) {
	g, ids, err := graphjson.Decode(strings.NewReader(social))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())

	alice, ok := ids.Vertices["alice"]
	require.True(t, ok)
	bob, ok := ids.Vertices["7"]
	require.True(t, ok, "numeric ids are keyed by their decimal text")

	v, _ := g.Vertex(alice)
	assert.Equal(t, []string{"Person"}, v.Labels)
	assert.True(t, v.Properties["age"].Equal(core.Number(41)))

	k, ok := ids.Edges["k"]
	require.True(t, ok)
	e, _ := g.Edge(k)
	assert.Equal(t, alice, e.Src)
	assert.Equal(t, bob, e.Dst)
	assert.Len(t, ids.Edges, 1, "edges without an id are not mapped")
}

// TestDecode_Errors covers each rejection path.
func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		opts []core.GraphOption
		want error
	}{
		{"syntax", `{"vertices": [`, nil, graphjson.ErrMalformed},
		{"unknown field", `{"nodes": []}`, nil, graphjson.ErrMalformed},
		{"bad id type", `{"vertices": [{"id": true}]}`, nil, graphjson.ErrMalformed},
		{"missing id", `{"vertices": [{"labels": ["A"]}]}`, nil, graphjson.ErrMissingID},
		{"duplicate vertex", `{"vertices": [{"id": 1}, {"id": "1"}]}`, nil, graphjson.ErrDuplicateID},
		{"duplicate edge", `{"vertices": [{"id": "a"}], "edges": [{"id": "e", "src": "a", "dst": "a"}, {"id": "e", "src": "a", "dst": "a"}]}`, nil, graphjson.ErrDuplicateID},
		{"dangling src", `{"vertices": [{"id": "a"}], "edges": [{"src": "z", "dst": "a"}]}`, nil, graphjson.ErrDanglingEdge},
		{"dangling dst", `{"vertices": [{"id": "a"}], "edges": [{"src": "a", "dst": "z"}]}`, nil, graphjson.ErrDanglingEdge},
		{"loop forbidden", `{"vertices": [{"id": "a"}], "edges": [{"src": "a", "dst": "a"}]}`, []core.GraphOption{core.WithoutLoops()}, core.ErrLoopNotAllowed},
		{"parallel forbidden", `{"vertices": [{"id": "a"}, {"id": "b"}], "edges": [{"src": "a", "dst": "b"}, {"src": "a", "dst": "b"}]}`, []core.GraphOption{core.WithSimpleEdges()}, core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := graphjson.Decode(strings.NewReader(tc.doc), tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestEncode_Deterministic writes identical bytes for identical graphs.
func TestEncode_Deterministic(t *testing.T) {
	g1, _, err := graphjson.Decode(strings.NewReader(social))
	require.NoError(t, err)
	g2, _, err := graphjson.Decode(strings.NewReader(social))
	require.NoError(t, err)

	var b1, b2 bytes.Buffer
	require.NoError(t, graphjson.Encode(&b1, g1))
	require.NoError(t, graphjson.Encode(&b2, g2))
	assert.Equal(t, b1.String(), b2.String())
}

// TestEncode_RoundTrip re-decodes the encoded form into the same canonical class.
func TestEncode_RoundTrip(t *testing.T) {
	g, _, err := graphjson.Decode(strings.NewReader(social))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphjson.Encode(&buf, g))
	back, _, err := graphjson.Decode(&buf)
	require.NoError(t, err)

	c := canon.New(canon.Bliss)
	assert.Equal(t, c.Canonicalize(g).Hash, c.Canonicalize(back).Hash)
}

// TestEncode_Empty emits empty arrays rather than null.
func TestEncode_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphjson.Encode(&buf, core.NewGraph()))
	assert.JSONEq(t, `{"vertices": [], "edges": []}`, buf.String())
}
