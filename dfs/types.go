// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, edge filtering,
// full-grid (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current walk (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGridNil is returned when a nil *gridgraph.Grid is passed to DFS or TreePath.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrVertexOutOfBounds indicates that the start vertex lies outside the grid.
	ErrVertexOutOfBounds = errors.New("dfs: start vertex out of bounds")

	// ErrUnreachable indicates that the requested destination was never visited.
	ErrUnreachable = errors.New("dfs: vertex not reached")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v gridgraph.Vertex, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(v gridgraph.Vertex) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterEdge decides which edges may be walked. Default: Tree edges only.
	FilterEdge func(e gridgraph.Edge) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in the grid,
	// covering disconnected components (forest traversal). Default is false.
	FullTraversal bool

	// SkippedEdges counts edges rejected by FilterEdge.
	SkippedEdges int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - Tree-only edge filter
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:        context.Background(),
		MaxDepth:   -1,
		FilterEdge: func(e gridgraph.Edge) bool { return e.State == gridgraph.Tree },
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v gridgraph.Vertex, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(v gridgraph.Vertex) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterEdge replaces the edge filter. A nil fn is ignored.
func WithFilterEdge(fn func(e gridgraph.Edge) bool) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithFullTraversal returns an Option that enables full-grid traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []gridgraph.Vertex

	// Depth maps each vertex to its distance (#edges) from its tree root.
	Depth map[gridgraph.Vertex]int

	// Parent maps each vertex to the vertex it was discovered from.
	// Roots do not appear in this map.
	Parent map[gridgraph.Vertex]gridgraph.Vertex

	// ParentEdge maps each non-root vertex to the id of the edge it was reached by.
	ParentEdge map[gridgraph.Vertex]int

	// Visited flags vertices by row-major id.
	Visited []bool

	// SkippedEdges mirrors DFSOptions.SkippedEdges after the walk.
	SkippedEdges int
}

// PathTo returns the vertices and edge ids from dest's root down to dest.
func (r *DFSResult) PathTo(dest gridgraph.Vertex) ([]gridgraph.Vertex, []int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	n := r.Depth[dest]
	verts := make([]gridgraph.Vertex, n+1)
	ids := make([]int, n)
	cur := dest
	for i := n; i > 0; i-- {
		verts[i] = cur
		ids[i-1] = r.ParentEdge[cur]
		cur = r.Parent[cur]
	}
	verts[0] = cur

	return verts, ids, nil
}
