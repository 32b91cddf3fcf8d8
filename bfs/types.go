// Package bfs provides tunable options and error definitions
// for breadth-first search over a maze grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrVertexOutOfBounds is returned when the start or target vertex lies outside the grid.
	ErrVertexOutOfBounds = errors.New("bfs: vertex out of bounds")

	// ErrUnreachable is returned by PathTo when the destination was never reached.
	ErrUnreachable = errors.New("bfs: vertex not reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	OnEnqueue func(v gridgraph.Vertex, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v gridgraph.Vertex, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v gridgraph.Vertex, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterEdge decides which edges can be crossed. Defaults to Tree edges.
	FilterEdge func(e gridgraph.Edge) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - only Tree edges are crossed
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		OnEnqueue:  func(gridgraph.Vertex, int) {},
		OnDequeue:  func(gridgraph.Vertex, int) {},
		OnVisit:    func(gridgraph.Vertex, int) error { return nil },
		MaxDepth:   0,
		FilterEdge: func(e gridgraph.Edge) bool { return e.State == gridgraph.Tree },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v gridgraph.Vertex, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v gridgraph.Vertex, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v gridgraph.Vertex, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterEdge replaces the edge filter. Passing a filter that accepts
// every edge turns the search into a plain grid BFS.
func WithFilterEdge(fn func(e gridgraph.Edge) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	Start      gridgraph.Vertex
	Order      []gridgraph.Vertex
	Depth      map[gridgraph.Vertex]int
	Parent     map[gridgraph.Vertex]gridgraph.Vertex
	ParentEdge map[gridgraph.Vertex]int
}

// PathTo reconstructs the vertex sequence from the start vertex to dest.
// Returns ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest gridgraph.Vertex) ([]gridgraph.Vertex, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	// build reversed path
	path := []gridgraph.Vertex{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// EdgesTo returns the ids of the edges along the path from the start vertex
// to dest, in walking order.
func (r *Result) EdgesTo(dest gridgraph.Vertex) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	ids := make([]int, r.Depth[dest])
	for cur, i := dest, len(ids)-1; i >= 0; i-- {
		ids[i] = r.ParentEdge[cur]
		cur = r.Parent[cur]
	}

	return ids, nil
}
