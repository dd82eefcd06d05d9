// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphseal/core"
)

var (
	// ErrStartVertexNotFound: the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil: BFS was handed a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation wraps every rejected option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// errStop is returned from an OnVisit hook by helpers that are done
	// before the queue drains (ShortestPath). BFS hands it back wrapped,
	// together with the partial result, and the helper ignores it.
	errStop = errors.New("bfs: stop")
)

// VisitFunc observes a vertex at its hop distance from the start.
type VisitFunc func(id core.VertexID, depth int)

// Option mutates Options. A rejected value is remembered and reported by
// BFS as ErrOptionViolation before any vertex is touched.
type Option func(*Options)

// Options is the resolved walk configuration. Hooks are never nil after
// DefaultOptions; the With* setters ignore nil functions.
type Options struct {
	// Ctx is polled once per dequeued vertex.
	Ctx context.Context

	// OnEnqueue runs when a vertex is first discovered.
	OnEnqueue VisitFunc

	// OnDequeue runs when a vertex leaves the queue, just before OnVisit.
	OnDequeue VisitFunc

	// OnVisit runs after the vertex is appended to Order; a non-nil error
	// ends the walk.
	OnVisit func(id core.VertexID, depth int) error

	// MaxDepth bounds discovery: vertices deeper than MaxDepth are never
	// enqueued. 0 means unbounded.
	MaxDepth int

	// FilterNeighbor vetoes the step curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor core.VertexID) bool

	// Undirected also steps from a vertex to its in-neighbors, which turns
	// the walk into a weak-connectivity sweep (ConnectedComponents).
	Undirected bool

	err error
}

// DefaultOptions walks out-edges only, without a depth bound or filter,
// under context.Background and with no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(core.VertexID, int) {},
		OnDequeue:      func(core.VertexID, int) {},
		OnVisit:        func(core.VertexID, int) error { return nil },
		FilterNeighbor: func(_, _ core.VertexID) bool { return true },
	}
}

// WithContext cancels the walk when ctx is done; nil keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue sets the discovery hook.
func WithOnEnqueue(fn VisitFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue sets the hook that fires as a vertex leaves the queue.
func WithOnDequeue(fn VisitFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit sets the visit hook. Its error is returned by BFS wrapped
// with the vertex id.
func WithOnVisit(fn func(id core.VertexID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the hop distance of discovered vertices. 0 removes
// the bound; a negative d is rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs a step veto.
func WithFilterNeighbor(fn func(curr, neighbor core.VertexID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithUndirected follows in-edges as well as out-edges.
func WithUndirected() Option {
	return func(o *Options) { o.Undirected = true }
}

// BFSResult is the BFS tree of one walk. Depth and Parent hold exactly the
// discovered vertices; the start has depth 0 and no Parent entry. Order
// lists the visited ones, which may be fewer when a hook stopped the walk.
type BFSResult struct {
	Order  []core.VertexID
	Depth  map[core.VertexID]int
	Parent map[core.VertexID]core.VertexID
}

// PathTo follows Parent links from dest back to the start and returns the
// path start-first. ok is false when dest was never discovered.
func (r *BFSResult) PathTo(dest core.VertexID) ([]core.VertexID, bool) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, false
	}
	var rev []core.VertexID
	for cur, ok := dest, true; ok; cur, ok = r.Parent[cur] {
		rev = append(rev, cur)
	}
	path := make([]core.VertexID, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path, true
}
