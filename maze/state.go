package maze

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/extract"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/spanning"
)

// ErrInvalidDimensions is returned by Construct and Reset when width or
// height is below one.
var ErrInvalidDimensions = gridgraph.ErrInvalidDimensions

// ErrNotSolving is returned by Step before BeginSolve was called.
var ErrNotSolving = errors.New("maze: solve has not begun")

// Phase re-exports the extractor phases for front ends.
type Phase = extract.Phase

// Extractor phases.
const (
	Idle      = extract.Idle
	Active    = extract.Active
	Converged = extract.Converged
)

// State is one maze instance: the classified grid plus the path extraction
// in progress. Obtain one from Construct or Reset.
type State struct {
	id        string
	grid      *gridgraph.Grid
	tree      *spanning.Result
	extractor *extract.Extractor
	ticks     int
	log       *zap.Logger
	observer  Observer
}

// Construct builds a width×height maze with fresh random weights.
//
// Steps:
//  1. Build the grid (ErrInvalidDimensions on bad input).
//  2. Carve the spanning tree.
//  3. Check the tree spans the grid in one component without cycles; panic
//     otherwise.
//  4. Attach an Idle extractor whose passes feed the logger and observer.
func Construct(width, height int, opts ...Option) (*State, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	started := time.Now()

	gopts := []gridgraph.Option{gridgraph.WithMaxWeight(o.maxWeight)}
	if o.rng != nil {
		gopts = append(gopts, gridgraph.WithRand(o.rng))
	}
	g, err := gridgraph.NewGrid(width, height, gopts...)
	if err != nil {
		return nil, fmt.Errorf("maze: construct: %w", err)
	}
	tree, err := spanning.Build(g)
	if err != nil {
		return nil, fmt.Errorf("maze: construct: %w", err)
	}
	if comps := g.Components(isTree); len(comps) != 1 {
		panic(fmt.Sprintf("maze: spanning tree splits the %dx%d grid into %d components", width, height, len(comps)))
	}
	if cycle, found := dfs.FindCycle(g, isTree); found {
		panic(fmt.Sprintf("maze: spanning tree contains cycle %v", cycle))
	}

	s := &State{
		id:       uuid.NewString(),
		grid:     g,
		tree:     tree,
		log:      o.logger,
		observer: o.observer,
	}
	s.log = s.log.With(zap.String("maze_id", s.id))
	s.extractor, err = extract.New(g, extract.WithOnPass(s.onPass))
	if err != nil {
		return nil, fmt.Errorf("maze: construct: %w", err)
	}

	elapsed := time.Since(started)
	s.observer.MazeBuilt(width, height, elapsed)
	s.log.Debug("maze constructed",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("tree_edges", len(tree.Tree)),
		zap.Int("walls", len(tree.Walls)),
		zap.Duration("elapsed", elapsed))

	return s, nil
}

func isTree(e gridgraph.Edge) bool { return e.State == gridgraph.Tree }

// Reset discards any previous state and constructs a new maze. Weights are
// drawn again, so the new maze generally differs from the old one.
func Reset(width, height int, opts ...Option) (*State, error) {
	s, err := Construct(width, height, opts...)
	if err != nil {
		return nil, err
	}
	s.log.Info("maze reset", zap.Int("width", width), zap.Int("height", height))

	return s, nil
}

// BeginSolve seeds the candidate path with every tree edge and runs the first
// pruning pass. Calling it again restarts extraction from the full tree.
func (s *State) BeginSolve() {
	s.ticks = 0
	s.extractor.Seed()
	s.log.Debug("solve started", zap.Int("candidates", s.extractor.Len()))
	s.extractor.Step()
}

// Step runs one pruning pass and returns the number of edges it removed.
// After convergence it is a no-op returning 0. Before BeginSolve it returns
// ErrNotSolving.
func (s *State) Step() (int, error) {
	switch s.extractor.Phase() {
	case extract.Idle:
		return 0, ErrNotSolving
	case extract.Converged:
		return 0, nil
	}
	s.ticks++

	return s.extractor.Step(), nil
}

// onPass forwards extractor passes to the logger and observer.
func (s *State) onPass(pass, removed int) {
	s.observer.PassCompleted(removed)
	s.log.Debug("prune pass", zap.Int("pass", pass), zap.Int("removed", removed))
	if removed == 0 {
		s.observer.SolveConverged(pass, s.extractor.Len())
		s.log.Info("path converged",
			zap.Int("passes", pass),
			zap.Int("path_edges", s.extractor.Len()),
			zap.Int("ticks", s.ticks))
	}
}

// ID identifies this maze instance in logs.
func (s *State) ID() string { return s.id }

// Width returns the grid width.
func (s *State) Width() int { return s.grid.Width }

// Height returns the grid height.
func (s *State) Height() int { return s.grid.Height }

// Grid exposes the classified grid. Front ends must treat it as read-only.
func (s *State) Grid() *gridgraph.Grid { return s.grid }

// Vertices returns every vertex in row-major order.
func (s *State) Vertices() []gridgraph.Vertex { return s.grid.Vertices() }

// Edges returns a copy of all candidate edges with their current state.
func (s *State) Edges() []gridgraph.Edge {
	return append([]gridgraph.Edge(nil), s.grid.Edges...)
}

// TreeEdges returns the ids of the passable edges in processing order.
func (s *State) TreeEdges() []int { return append([]int(nil), s.tree.Tree...) }

// WallEdges returns the ids of the blocked edges in processing order.
func (s *State) WallEdges() []int { return append([]int(nil), s.tree.Walls...) }

// Path returns the candidate path edge ids in ascending order. Empty while Idle.
func (s *State) Path() []int { return s.extractor.Path() }

// Pruned returns the edge ids removed by the latest pass.
func (s *State) Pruned() []int { return s.extractor.LastPruned() }

// OnPath reports whether edge id is still in the candidate path.
func (s *State) OnPath(id int) bool { return s.extractor.Contains(id) }

// Phase returns the extraction phase.
func (s *State) Phase() Phase { return s.extractor.Phase() }

// Converged reports whether the candidate path reached its fixed point.
func (s *State) Converged() bool { return s.extractor.Phase() == extract.Converged }

// Ticks counts Step calls that ran a pass since the last BeginSolve.
func (s *State) Ticks() int { return s.ticks }

// Passes counts pruning passes since the last BeginSolve, including the one
// BeginSolve runs itself.
func (s *State) Passes() int { return s.extractor.Passes() }

// Route returns the converged path as vertices from Start to Goal.
func (s *State) Route() ([]gridgraph.Vertex, error) { return s.extractor.Route() }

// DirectPath computes the Start→Goal route in one BFS over the tree, without
// touching the extraction state.
func (s *State) DirectPath(ctx context.Context) ([]gridgraph.Vertex, []int, error) {
	return bfs.TreePath(ctx, s.grid)
}

// DepthFirstPath is DirectPath computed by a depth-first walk. On a tree both
// walks find the same route.
func (s *State) DepthFirstPath(ctx context.Context) ([]gridgraph.Vertex, []int, error) {
	return dfs.TreePath(ctx, s.grid)
}
