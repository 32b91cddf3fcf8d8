package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     gridgraph.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.Grid
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil or ErrVertexOutOfBounds for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *gridgraph.Grid, start gridgraph.Vertex, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrVertexOutOfBounds, start)
	}

	n := g.VertexCount()
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Start:      start,
			Order:      make([]gridgraph.Vertex, 0, n),
			Depth:      make(map[gridgraph.Vertex]int, n),
			Parent:     make(map[gridgraph.Vertex]gridgraph.Vertex, n),
			ParentEdge: make(map[gridgraph.Vertex]int, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// TreePath returns the vertices from g.Start() to g.Goal() along Tree edges.
// On a finished maze this is the one and only route between the terminals.
func TreePath(ctx context.Context, g *gridgraph.Grid) ([]gridgraph.Vertex, []int, error) {
	if g == nil {
		return nil, nil, ErrGridNil
	}
	goal := g.Goal()
	res, err := BFS(g, g.Start(), WithContext(ctx), WithOnVisit(func(v gridgraph.Vertex, _ int) error {
		if v == goal {
			return errStop
		}
		return nil
	}))
	if err != nil && !errors.Is(err, errStop) {
		return nil, nil, err
	}
	verts, err := res.PathTo(goal)
	if err != nil {
		return nil, nil, err
	}
	ids, err := res.EdgesTo(goal)
	if err != nil {
		return nil, nil, err
	}

	return verts, ids, nil
}

// errStop ends a search early once the target was visited.
var errStop = errors.New("bfs: target reached")

// enqueue marks v visited at depth d, records how it was reached,
// calls OnEnqueue, and adds it to the queue. via < 0 marks the root.
func (w *walker) enqueue(v gridgraph.Vertex, d int, via int) {
	w.visited[w.grid.Index(v)] = true
	w.res.Depth[v] = d
	if via >= 0 {
		w.res.Parent[v] = w.grid.Edges[via].Other(v)
		w.res.ParentEdge[v] = via
	}
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		if errors.Is(err, errStop) {
			return err
		}
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors crosses every accepted incident edge, honoring MaxDepth,
// and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, id := range w.grid.Incident(item.v) {
		e := w.grid.Edges[id]
		if !w.opts.FilterEdge(e) {
			continue
		}
		nbr := e.Other(item.v)
		if !w.visited[w.grid.Index(nbr)] {
			w.enqueue(nbr, nextDepth, id)
		}
	}
}
