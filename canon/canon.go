// SPDX-License-Identifier: MIT

package canon

import (
	"bytes"
	"encoding/binary"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphseal/codec"
	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/digest"
	"github.com/katalvlaran/graphseal/matrix"
	"github.com/katalvlaran/graphseal/partition"
)

// CanonicalizationResult is produced fresh per call and never mutated afterwards.
type CanonicalizationResult struct {
	// CanonicalGraph is the codec encoding in canonical order.
	CanonicalGraph []byte

	// Hash is SHA-256 of CanonicalGraph.
	Hash digest.Hash

	// IsomorphismClass is "<algorithm>_<hex(Hash)>".
	IsomorphismClass string

	// NodeOrdering maps canonical position → index into g.Vertices().
	NodeOrdering partition.Permutation

	// EdgeOrdering maps canonical position → index into g.Edges().
	EdgeOrdering partition.Permutation

	Algorithm Algorithm

	// Exhaustive is false when the search stopped at the leaf budget.
	Exhaustive bool

	// Leaves counts serialized search leaves.
	Leaves int

	// Automorphisms are the non-trivial automorphisms (over vertex indices)
	// discovered at equal leaves. Together with the transpositions of twin
	// vertices they generate a subgroup of the full automorphism group.
	Automorphisms []partition.Permutation
}

// CanonicalVertices returns the vertex IDs of g in canonical order.
// g must be the graph the result was computed from.
func (r *CanonicalizationResult) CanonicalVertices(g *core.Graph) []core.VertexID {
	ids := g.Vertices()
	out := make([]core.VertexID, len(r.NodeOrdering.Mapping))
	for k, i := range r.NodeOrdering.Mapping {
		out[k] = ids[i]
	}

	return out
}

// CanonicalEdges returns the edge IDs of g in canonical order.
func (r *CanonicalizationResult) CanonicalEdges(g *core.Graph) []core.EdgeID {
	ids := g.Edges()
	out := make([]core.EdgeID, len(r.EdgeOrdering.Mapping))
	for k, i := range r.EdgeOrdering.Mapping {
		out[k] = ids[i]
	}

	return out
}

// GraphCanonicalizer computes canonical forms with one fixed algorithm.
// It holds no per-call state and is safe for concurrent use.
type GraphCanonicalizer struct {
	alg  Algorithm
	opts Options
}

// New returns a canonicalizer for alg.
func New(alg Algorithm, opts ...Option) *GraphCanonicalizer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &GraphCanonicalizer{alg: alg, opts: o}
}

// Algorithm returns the configured algorithm.
func (c *GraphCanonicalizer) Algorithm() Algorithm { return c.alg }

// Canonicalize computes the canonical form of g. It is total over graphs
// and never fails; a nil graph is treated as empty.
//
// Complexity: O(L · (m log m + refinement)) for L searched leaves.
func (c *GraphCanonicalizer) Canonicalize(g *core.Graph) *CanonicalizationResult {
	start := time.Now()
	if g == nil {
		g = core.NewGraph()
	}
	inst := newInstance(c.alg, g, c.opts.DefaultLabel)

	s := newSearch(inst, c.opts.MaxLeaves)
	s.run(partition.FromRanks(inst.initialRanks()))

	res := &CanonicalizationResult{
		CanonicalGraph: s.bestBytes,
		Hash:           digest.Sum(s.bestBytes),
		NodeOrdering:   partition.Permutation{Mapping: s.bestOrder},
		EdgeOrdering:   partition.Permutation{Mapping: s.bestEdges},
		Algorithm:      c.alg,
		Exhaustive:     !s.truncated,
		Leaves:         s.leaves,
		Automorphisms:  s.automorphisms(),
	}
	res.IsomorphismClass = c.alg.String() + "_" + res.Hash.Hex()

	tag := c.alg.String()
	canonicalizeDuration.WithLabelValues(tag).Observe(time.Since(start).Seconds())
	canonicalizeLeaves.WithLabelValues(tag).Observe(float64(s.leaves))
	log := c.opts.Logger.WithFields(logrus.Fields{
		"algorithm": tag,
		"vertices":  len(inst.vids),
		"edges":     len(inst.eids),
		"leaves":    s.leaves,
	})
	if s.truncated {
		canonicalizeTruncated.WithLabelValues(tag).Inc()
		log.Warn("canonical search hit leaf budget; form is best-effort")
	} else {
		log.Debug("canonicalized graph")
	}

	return res
}

// instance is the index-space view of one graph being canonicalized.
type instance struct {
	alg Algorithm

	vids []core.VertexID
	eids []core.EdgeID
	adj  *matrix.Adjacency

	vrec  [][]byte // encoded vertex record per vertex index
	first []string // first label per vertex index, or the default
	edata []*core.EdgeData
	econt []string // encoded edge content (no endpoints) per edge index
	esrc  []int
	edst  []int
}

func newInstance(alg Algorithm, g *core.Graph, defaultLabel string) *instance {
	adj, _ := matrix.NewAdjacency(g) // g is non-nil here
	in := &instance{
		alg:  alg,
		vids: g.Vertices(),
		eids: g.Edges(),
		adj:  adj,
	}
	in.vrec = make([][]byte, len(in.vids))
	in.first = make([]string, len(in.vids))
	for i, id := range in.vids {
		v, _ := g.Vertex(id)
		in.vrec[i] = codec.AppendVertex(nil, v)
		in.first[i] = defaultLabel
		if len(v.Labels) > 0 {
			in.first[i] = v.Labels[0]
		}
	}
	m := len(in.eids)
	in.edata = make([]*core.EdgeData, m)
	in.econt = make([]string, m)
	in.esrc = make([]int, m)
	in.edst = make([]int, m)
	for k, id := range in.eids {
		e, _ := g.Edge(id)
		in.edata[k] = e
		in.econt[k] = string(codec.AppendEdgeContent(nil, e))
		in.esrc[k] = adj.VertexIndex[e.Src]
		in.edst[k] = adj.VertexIndex[e.Dst]
	}

	return in
}

// initialRanks colors every vertex by its algorithm key.
func (in *instance) initialRanks() []int {
	n := len(in.vids)
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = string(in.vertexKey(i))
	}
	uniq := append([]string(nil), keys...)
	sort.Strings(uniq)
	rank := make(map[string]int, n)
	for _, k := range uniq {
		if _, ok := rank[k]; !ok {
			rank[k] = len(rank)
		}
	}
	ranks := make([]int, n)
	for i, k := range keys {
		ranks[i] = rank[k]
	}

	return ranks
}

// vertexKey is the byte key whose lexicographic order drives the initial
// coloring. Numbers are fixed-width big-endian so byte order is numeric order.
func (in *instance) vertexKey(i int) []byte {
	out, inn := in.adj.OutDegree(i), in.adj.InDegree(i)
	total := uint64(out + inn)
	var key []byte
	switch in.alg {
	case Bliss:
		key = binary.BigEndian.AppendUint64(key, total)
		key = binary.BigEndian.AppendUint64(key, uint64(out))
	case Custom:
		key = codec.AppendString(key, in.first[i])
		key = binary.BigEndian.AppendUint64(key, ^total)
	}

	return append(key, in.vrec[i]...)
}

// twinClasses returns, per vertex, the smallest index of its twin class.
// Twins have equal content and equal multisets of (neighbor, edge content)
// in both directions, with loops recorded as self references. An edge
// between a and b would appear in only one of the two multisets, so twins
// are never adjacent and the transposition of two twins is an automorphism.
func (in *instance) twinClasses() []int {
	n := len(in.vids)
	out := make([][][]byte, n)
	inc := make([][][]byte, n)
	item := func(self, other, k int) []byte {
		ref := int64(other)
		if other == self {
			ref = -1
		}
		b := binary.BigEndian.AppendUint64(nil, uint64(ref))
		return codec.AppendString(b, in.econt[k])
	}
	for k := range in.eids {
		a, b := in.esrc[k], in.edst[k]
		out[a] = append(out[a], item(a, b, k))
		inc[b] = append(inc[b], item(b, a, k))
	}

	rep := make([]int, n)
	first := make(map[string]int, n)
	for v := 0; v < n; v++ {
		key := codec.AppendString(nil, string(in.vrec[v]))
		for _, side := range [][][]byte{out[v], inc[v]} {
			sort.Slice(side, func(i, j int) bool { return bytes.Compare(side[i], side[j]) < 0 })
			key = binary.BigEndian.AppendUint64(key, uint64(len(side)))
			for _, it := range side {
				key = append(key, it...)
			}
		}
		r, ok := first[string(key)]
		if !ok {
			r = v
			first[string(key)] = v
		}
		rep[v] = r
	}

	return rep
}

// serialize writes the canonical encoding for a discrete vertex order and
// returns it with the induced edge order.
func (in *instance) serialize(order []int) ([]byte, []int) {
	n, m := len(order), len(in.eids)
	pos := make([]int, n)
	for k, v := range order {
		pos[v] = k
	}

	edges := make([]int, m)
	for k := range edges {
		edges[k] = k
	}
	sort.Slice(edges, func(a, b int) bool {
		x, y := edges[a], edges[b]
		if in.alg == Custom && in.edata[x].Label != in.edata[y].Label {
			return in.edata[x].Label < in.edata[y].Label
		}
		if ps, qs := pos[in.esrc[x]], pos[in.esrc[y]]; ps != qs {
			return ps < qs
		}
		if pd, qd := pos[in.edst[x]], pos[in.edst[y]]; pd != qd {
			return pd < qd
		}
		if in.econt[x] != in.econt[y] {
			return in.econt[x] < in.econt[y]
		}

		return x < y
	})

	w := codec.NewWriter()
	w.Header(n, m)
	for _, v := range order {
		w.Record(in.vrec[v])
	}
	for _, k := range edges {
		w.Edge(in.edata[k], pos[in.esrc[k]], pos[in.edst[k]])
	}

	return w.Bytes(), edges
}
