// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/graphseal/core"
)

// Dijkstra computes shortest distances from src to every reachable vertex.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain src (ErrVertexNotFound).
//  4. Every edge weight must be a finite, non-negative number
//     (ErrBadWeight, ErrNegativeWeight).
//
// Ties between equal-distance vertices are broken by ascending VertexID and
// relaxation follows ascending EdgeID, so the predecessor tree is deterministic.
func Dijkstra(g *core.Graph, src core.VertexID, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, src)
	}

	weights := make(map[core.EdgeID]float64, g.EdgeCount())
	for _, id := range g.Edges() {
		e, _ := g.Edge(id)
		w, err := cfg.weight(e)
		if err != nil {
			return nil, err
		}
		weights[id] = w
	}

	r := &runner{
		g:       g,
		options: cfg,
		weights: weights,
		res: &Result{
			Source: src,
			Dist:   map[core.VertexID]float64{src: 0},
			Prev:   make(map[core.VertexID]core.VertexID),
			Via:    make(map[core.VertexID]core.EdgeID),
		},
		visited: make(map[core.VertexID]bool, g.VertexCount()),
	}
	heap.Push(&r.pq, &nodeItem{id: src})
	r.process()

	return r.res, nil
}

func (o *Options) weight(e *core.EdgeData) (float64, error) {
	v, ok := e.Properties[o.WeightKey]
	w := o.DefaultWeight
	if ok {
		n, isNum := v.AsNumber()
		if !isNum || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%w: edge %d %q", ErrBadWeight, e.ID, o.WeightKey)
		}
		w = n
	}
	if w < 0 {
		return 0, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.Src, e.Dst, w)
	}

	return w, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	weights map[core.EdgeID]float64
	res     *Result
	visited map[core.VertexID]bool
	pq      nodePQ
}

// process pops the closest unvisited vertex until the heap drains or the
// next candidate lies beyond MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id, item.dist)
	}
}

// relax tries every edge leaving u (and entering u when undirected).
func (r *runner) relax(u core.VertexID, du float64) {
	for _, id := range r.g.OutEdges(u) {
		e, _ := r.g.Edge(id)
		r.try(u, e.Dst, id, du)
	}
	if !r.options.Undirected {
		return
	}
	for _, id := range r.g.InEdges(u) {
		e, _ := r.g.Edge(id)
		r.try(u, e.Src, id, du)
	}
}

func (r *runner) try(u, v core.VertexID, via core.EdgeID, du float64) {
	if r.visited[v] {
		return
	}
	nd := du + r.weights[via]
	if nd > r.options.MaxDistance {
		return
	}
	if cur, seen := r.res.Dist[v]; seen && nd >= cur {
		return
	}
	r.res.Dist[v] = nd
	r.res.Prev[v] = u
	r.res.Via[v] = via
	heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
}

// nodeItem is a heap entry; stale entries are skipped when popped.
type nodeItem struct {
	id   core.VertexID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
