// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/graphseal/core"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current stack.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that TopologicalSort emitted fewer vertices
	// than the graph holds.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id core.VertexID) error

	// OnExit, if non-nil, is invoked after all descendants are explored
	// (post-order). Returning an error aborts traversal.
	OnExit func(id core.VertexID) error

	// MaxDepth, if non-negative, limits the search depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before descending.
	// Return false to skip it.
	FilterNeighbor func(id core.VertexID) bool

	// FullTraversal runs DFS from every unvisited vertex in ascending order.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit sets the pre-order hook.
func WithOnVisit(fn func(id core.VertexID) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit sets the post-order hook.
func WithOnExit(fn func(id core.VertexID) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; negative means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(id core.VertexID) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over all vertices.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult holds the outcome of a DFS traversal.
type DFSResult struct {
	// Order lists vertices in discovery (pre-order) sequence.
	Order []core.VertexID

	// PostOrder lists vertices in finishing sequence.
	PostOrder []core.VertexID

	// Depth maps each visited vertex to its depth in the DFS tree.
	Depth map[core.VertexID]int

	// Parent maps each non-root visited vertex to its DFS parent.
	Parent map[core.VertexID]core.VertexID

	// Visited marks every vertex reached.
	Visited map[core.VertexID]bool
}
