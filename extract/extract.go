package extract

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/tidwall/btree"
)

// Extractor holds the candidate path set of one maze.
//
// The candidate set is kept ordered by edge id so that passes, hooks and
// Path output are deterministic.
type Extractor struct {
	grid       *gridgraph.Grid
	opts       Options
	candidates *btree.BTreeG[int]
	phase      Phase
	passes     int
	lastPruned []int
}

func idLess(a, b int) bool { return a < b }

// New returns an Idle extractor over g's Tree edges.
func New(g *gridgraph.Grid, opts ...Option) (*Extractor, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Extractor{
		grid:       g,
		opts:       o,
		candidates: btree.NewBTreeG[int](idLess),
		phase:      Idle,
	}, nil
}

// Seed fills the candidate set with every Tree edge, marks each of them
// Solved, and moves the extractor to Active. Seeding a Converged or Active
// extractor starts over from the full tree.
// Complexity: O(E log E).
func (x *Extractor) Seed() {
	x.candidates = btree.NewBTreeG[int](idLess)
	for i := range x.grid.Edges {
		e := &x.grid.Edges[i]
		if e.State != gridgraph.Tree {
			continue
		}
		e.Solved = true
		x.candidates.Set(e.ID)
	}
	x.phase = Active
	x.passes = 0
	x.lastPruned = nil
}

// Step runs one pruning pass and returns the number of edges it removed.
//
// Steps:
//  1. Idle or Converged: nothing to do, return 0.
//  2. Mark every candidate whose non-terminal endpoint has degree 1; degrees
//     are read from the untouched candidate set, so marking order is irrelevant.
//  3. Remove the marked edges.
//  4. A pass that removed nothing moves the extractor to Converged.
func (x *Extractor) Step() int {
	if x.phase != Active {
		return 0
	}

	var pruned []int
	x.candidates.Scan(func(id int) bool {
		e := &x.grid.Edges[id]
		if x.deadEnd(e.Begin) || x.deadEnd(e.End) {
			e.Solved = false
			pruned = append(pruned, id)
			x.opts.OnPrune(*e)
		}
		return true
	})
	for _, id := range pruned {
		x.candidates.Delete(id)
	}

	x.passes++
	x.lastPruned = pruned
	if len(pruned) == 0 {
		x.phase = Converged
	}
	x.opts.OnPass(x.passes, len(pruned))

	return len(pruned)
}

// deadEnd reports whether v is a leaf of the candidate set that may be cut.
func (x *Extractor) deadEnd(v gridgraph.Vertex) bool {
	return !x.grid.IsTerminal(v) && x.Degree(v) == 1
}

// Degree returns the number of candidate edges touching v.
// Complexity: O(log C), at most four lookups.
func (x *Extractor) Degree(v gridgraph.Vertex) int {
	n := 0
	for _, id := range x.grid.Incident(v) {
		if _, ok := x.candidates.Get(id); ok {
			n++
		}
	}

	return n
}

// AllConnected reports that no pruning fired in the last pass: every
// candidate edge is still Solved and none was cut. It holds right after Seed
// and again once the extractor converged.
func (x *Extractor) AllConnected() bool {
	if len(x.lastPruned) > 0 {
		return false
	}
	ok := true
	x.candidates.Scan(func(id int) bool {
		ok = x.grid.Edges[id].Solved
		return ok
	})

	return ok
}

// Phase returns the current state.
func (x *Extractor) Phase() Phase {
	return x.phase
}

// Passes returns the number of passes run since the last Seed.
func (x *Extractor) Passes() int {
	return x.passes
}

// Len returns the size of the candidate set.
func (x *Extractor) Len() int {
	return x.candidates.Len()
}

// Contains reports whether edge id is still a candidate.
func (x *Extractor) Contains(id int) bool {
	_, ok := x.candidates.Get(id)
	return ok
}

// Path returns the candidate edge ids in ascending order.
func (x *Extractor) Path() []int {
	return x.candidates.Items()
}

// LastPruned returns the ids removed by the most recent pass.
func (x *Extractor) LastPruned() []int {
	return append([]int(nil), x.lastPruned...)
}

// Route returns the converged path as a vertex sequence from Start to Goal.
// A 1×1 maze yields the single vertex.
//
// Returns ErrNotConverged before convergence, ErrBrokenPath if the candidate
// set does not walk from Start to Goal through every candidate exactly once.
func (x *Extractor) Route() ([]gridgraph.Vertex, error) {
	if x.phase != Converged {
		return nil, ErrNotConverged
	}
	start, goal := x.grid.Start(), x.grid.Goal()
	route := make([]gridgraph.Vertex, 0, x.Len()+1)
	route = append(route, start)
	used := make(map[int]bool, x.Len())

	for cur := start; cur != goal; {
		next, found := cur, false
		for _, id := range x.grid.Incident(cur) {
			if used[id] || !x.Contains(id) {
				continue
			}
			if found {
				return nil, fmt.Errorf("%w: branch at %v", ErrBrokenPath, cur)
			}
			used[id] = true
			next, found = x.grid.Edges[id].Other(cur), true
		}
		if !found {
			return nil, fmt.Errorf("%w: dead end at %v", ErrBrokenPath, cur)
		}
		route = append(route, next)
		cur = next
	}
	if len(used) != x.Len() {
		return nil, fmt.Errorf("%w: %d candidate edges off the route", ErrBrokenPath, x.Len()-len(used))
	}

	return route, nil
}
