// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphseal/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// frame is one entry of the explicit DFS stack: a vertex and the index of
// the next neighbor to try.
type frame struct {
	id    core.VertexID
	depth int
	nbrs  []core.VertexID
	next  int
}

// DFS performs depth-first search on g along out-edges. With
// WithFullTraversal it covers all vertices in ascending root order;
// otherwise it starts only from start.
// Returns the partial result together with any hook or context error.
func DFS(g *core.Graph, start core.VertexID, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &dfsWalker{graph: g, opts: o, res: &DFSResult{
		Order:     make([]core.VertexID, 0, n),
		PostOrder: make([]core.VertexID, 0, n),
		Depth:     make(map[core.VertexID]int, n),
		Parent:    make(map[core.VertexID]core.VertexID, n),
		Visited:   make(map[core.VertexID]bool, n),
	}}

	if !o.FullTraversal {
		return w.res, w.traverse(start)
	}
	for _, v := range g.Vertices() {
		if !w.res.Visited[v] {
			if err := w.traverse(v); err != nil {
				return w.res, err
			}
		}
	}

	return w.res, nil
}

// Preorder is the plain DFS visit sequence from start (nil if start is absent).
func Preorder(g *core.Graph, start core.VertexID) []core.VertexID {
	res, err := DFS(g, start)
	if err != nil {
		return nil
	}

	return res.Order
}

// traverse runs one DFS tree rooted at root.
func (w *dfsWalker) traverse(root core.VertexID) error {
	if err := w.discover(root, 0, 0); err != nil {
		return err
	}
	stack := []frame{{id: root, nbrs: w.graph.OutNeighbors(root)}}
	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		canDescend := w.opts.MaxDepth < 0 || top.depth < w.opts.MaxDepth
		if canDescend && top.next < len(top.nbrs) {
			nb := top.nbrs[top.next]
			top.next++
			if w.res.Visited[nb] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
				continue
			}
			depth, parent := top.depth+1, top.id
			if err := w.discover(nb, depth, parent); err != nil {
				return err
			}
			stack = append(stack, frame{id: nb, depth: depth, nbrs: w.graph.OutNeighbors(nb)})
			continue
		}

		stack = stack[:len(stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(top.id); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %d: %w", top.id, err)
			}
		}
		w.res.PostOrder = append(w.res.PostOrder, top.id)
	}

	return nil
}

// discover marks id visited and runs the pre-order hook.
func (w *dfsWalker) discover(id core.VertexID, depth int, parent core.VertexID) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if parent != 0 {
		w.res.Parent[id] = parent
	}
	w.res.Order = append(w.res.Order, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	return nil
}
