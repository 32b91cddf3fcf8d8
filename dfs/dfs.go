package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid *gridgraph.Grid
	opts DFSOptions
	res  *DFSResult
}

// DFS performs depth‑first search on grid g. If opts include WithFullTraversal,
// it covers all components in row-major order of their first vertex; otherwise
// it starts only from start.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *gridgraph.Grid, start gridgraph.Vertex, opts ...Option) (*DFSResult, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single‑source mode: verify start
	if !dopts.FullTraversal && !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrVertexOutOfBounds, start)
	}

	// 4. Initialize result with capacity hint
	n := g.VertexCount()
	res := &DFSResult{
		Order:      make([]gridgraph.Vertex, 0, n),
		Depth:      make(map[gridgraph.Vertex]int, n),
		Parent:     make(map[gridgraph.Vertex]gridgraph.Vertex, n),
		ParentEdge: make(map[gridgraph.Vertex]int, n),
		Visited:    make([]bool, n),
	}

	walker := &dfsWalker{grid: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range g.Vertices() {
			if !res.Visited[g.Index(v)] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := walker.traverse(start, 0); err != nil {
			return res, err
		}
	}

	// 6. Expose diagnostics
	res.SkippedEdges = walker.opts.SkippedEdges

	return res, nil
}

// traverse visits v at the given depth, recursing into unvisited neighbors.
func (w *dfsWalker) traverse(v gridgraph.Vertex, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[w.grid.Index(v)] = true
	w.res.Depth[v] = depth

	// 4. Pre‑order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	// 5. Explore each incident edge
	for _, id := range w.grid.Incident(v) {
		e := w.grid.Edges[id]
		if !w.opts.FilterEdge(e) {
			w.opts.SkippedEdges++
			continue
		}
		next := e.Other(v)
		if w.res.Visited[w.grid.Index(next)] {
			continue
		}
		w.res.Parent[next] = v
		w.res.ParentEdge[next] = id
		if err := w.traverse(next, depth+1); err != nil {
			return err
		}
	}

	// 6. Post‑order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, v)

	return nil
}

// errFound stops the walk once the goal has been discovered.
var errFound = errors.New("dfs: goal found")

// TreePath returns the Start→Goal route along Tree edges, found depth first.
// The walk stops as soon as Goal is discovered.
func TreePath(ctx context.Context, g *gridgraph.Grid) ([]gridgraph.Vertex, []int, error) {
	if g == nil {
		return nil, nil, ErrGridNil
	}
	goal := g.Goal()
	res, err := DFS(g, g.Start(), WithContext(ctx), WithOnVisit(func(v gridgraph.Vertex, _ int) error {
		if v == goal {
			return errFound
		}
		return nil
	}))
	if err != nil && !errors.Is(err, errFound) {
		return nil, nil, err
	}

	return res.PathTo(goal)
}
