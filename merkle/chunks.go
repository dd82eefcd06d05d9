// SPDX-License-Identifier: MIT

package merkle

import (
	"sort"

	"github.com/katalvlaran/graphseal/canon"
	"github.com/katalvlaran/graphseal/codec"
	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/digest"
)

// Chunk names, in leaf order.
const (
	ChunkVertices     = "vertices"
	ChunkEdges        = "edges"
	ChunkAdjOut       = "adj_out"
	ChunkAdjIn        = "adj_in"
	ChunkVertexLabels = "vertex_labels"
	ChunkEdgeLabels   = "edge_labels"
)

// ChunkNames lists the graph chunks in leaf order.
var ChunkNames = []string{
	ChunkVertices, ChunkEdges, ChunkAdjOut, ChunkAdjIn, ChunkVertexLabels, ChunkEdgeLabels,
}

// Chunk is one leaf payload.
type Chunk struct {
	Name string
	Data []byte
	Hash digest.Hash
}

func newChunk(name string, data []byte) Chunk {
	return Chunk{Name: name, Data: data, Hash: digest.Sum(data)}
}

// graphChunks encodes g in the canonical ordering of res.
func graphChunks(g *core.Graph, res *canon.CanonicalizationResult) []Chunk {
	vids := res.CanonicalVertices(g)
	eids := res.CanonicalEdges(g)
	pos := make(map[core.VertexID]int, len(vids))
	for k, id := range vids {
		pos[id] = k
	}

	vertices := codec.AppendString(nil, ChunkVertices)
	vertices = codec.AppendUvarint(vertices, uint64(len(vids)))
	vlabels := make(map[string][]int)
	for k, id := range vids {
		v, _ := g.Vertex(id)
		vertices = codec.AppendVertex(vertices, v)
		for _, l := range v.Labels {
			vlabels[l] = append(vlabels[l], k)
		}
	}

	edges := codec.AppendString(nil, ChunkEdges)
	edges = codec.AppendUvarint(edges, uint64(len(eids)))
	out := make([][]int, len(vids))
	in := make([][]int, len(vids))
	elabels := make(map[string][]int)
	for k, id := range eids {
		e, _ := g.Edge(id)
		s, d := pos[e.Src], pos[e.Dst]
		edges = codec.AppendEdge(edges, e, s, d)
		out[s] = append(out[s], d)
		in[d] = append(in[d], s)
		elabels[e.Label] = append(elabels[e.Label], k)
	}

	return []Chunk{
		newChunk(ChunkVertices, vertices),
		newChunk(ChunkEdges, edges),
		newChunk(ChunkAdjOut, appendLists(codec.AppendString(nil, ChunkAdjOut), out)),
		newChunk(ChunkAdjIn, appendLists(codec.AppendString(nil, ChunkAdjIn), in)),
		newChunk(ChunkVertexLabels, appendIndex(codec.AppendString(nil, ChunkVertexLabels), vlabels)),
		newChunk(ChunkEdgeLabels, appendIndex(codec.AppendString(nil, ChunkEdgeLabels), elabels)),
	}
}

// appendLists writes one sorted position list per vertex position.
func appendLists(dst []byte, lists [][]int) []byte {
	dst = codec.AppendUvarint(dst, uint64(len(lists)))
	for _, l := range lists {
		sort.Ints(l)
		dst = appendInts(dst, l)
	}

	return dst
}

// appendIndex writes label → positions entries in ascending label order.
// Positions are collected in ascending order already.
func appendIndex(dst []byte, index map[string][]int) []byte {
	labels := make([]string, 0, len(index))
	for l := range index {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	dst = codec.AppendUvarint(dst, uint64(len(labels)))
	for _, l := range labels {
		dst = codec.AppendString(dst, l)
		dst = appendInts(dst, index[l])
	}

	return dst
}

func appendInts(dst []byte, xs []int) []byte {
	dst = codec.AppendUvarint(dst, uint64(len(xs)))
	for _, x := range xs {
		dst = codec.AppendUvarint(dst, uint64(x))
	}

	return dst
}

// cacheKey digests the structural part of the chunk set.
func cacheKey(n, m int, chunks []Chunk) digest.Hash {
	key := codec.AppendUvarint(nil, uint64(n))
	key = codec.AppendUvarint(key, uint64(m))
	for _, c := range chunks[:4] {
		key = append(key, c.Hash[:]...)
	}

	return digest.Sum(key)
}
