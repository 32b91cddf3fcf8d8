// Package render draws a maze.State as ASCII art.
//
// Every cell takes one character and every passage between two cells takes
// one more, so a W×H maze is drawn on a (2W+1)×(2H+1) canvas:
//
//	+-+-+-+
//	|S****|
//	+x+x+*+
//	|x|x|G|
//	+-+-+-+
//
// Walls are '|' and '-', corners '+'. S and G mark the terminals, '*' the
// candidate path and, when enabled, 'x' what the latest pass pruned.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
)

// Glyphs used on the canvas.
const (
	Corner     = '+'
	WallH      = '-'
	WallV      = '|'
	Open       = ' '
	StartMark  = 'S'
	GoalMark   = 'G'
	PathMark   = '*'
	PrunedMark = 'x'
)

// Option tweaks what ASCII draws.
type Option func(*options)

type options struct {
	path   bool
	pruned bool
}

// WithPath toggles the candidate path overlay (default on).
func WithPath(on bool) Option {
	return func(o *options) { o.path = on }
}

// WithPruned toggles marking the edges removed by the latest pass (default off).
func WithPruned(on bool) Option {
	return func(o *options) { o.pruned = on }
}

// ASCII writes the maze to w, one canvas row per line.
func ASCII(w io.Writer, s *maze.State, opts ...Option) error {
	o := options{path: true}
	for _, opt := range opts {
		opt(&o)
	}

	canvas := draw(s, o)
	for _, row := range canvas {
		if _, err := w.Write(append(row, '\n')); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}

	return nil
}

// String renders the maze with default options.
func String(s *maze.State) string {
	var buf bytes.Buffer
	_ = ASCII(&buf, s)

	return buf.String()
}

// draw fills the canvas.
//
// Steps:
//  1. Border and corners; every passage slot starts as a wall.
//  2. Open the slots of Tree edges.
//  3. Overlay pruned edges, then path edges, then the terminals, so later
//     layers win.
func draw(s *maze.State, o options) [][]byte {
	g := s.Grid()
	cols, rows := 2*g.Width+1, 2*g.Height+1
	canvas := make([][]byte, rows)
	for r := range canvas {
		canvas[r] = bytes.Repeat([]byte{Open}, cols)
		for c := range canvas[r] {
			switch {
			case r%2 == 0 && c%2 == 0:
				canvas[r][c] = Corner
			case r%2 == 0:
				canvas[r][c] = WallH
			case c%2 == 0:
				canvas[r][c] = WallV
			}
		}
	}

	for _, e := range g.Edges {
		if e.State == gridgraph.Tree {
			r, c := slot(e)
			canvas[r][c] = Open
		}
	}
	if o.pruned {
		for _, id := range s.Pruned() {
			paint(canvas, g.Edges[id], PrunedMark)
		}
	}
	if o.path {
		for _, id := range s.Path() {
			paint(canvas, g.Edges[id], PathMark)
		}
	}
	goal := g.Goal()
	canvas[2*goal.Y+1][2*goal.X+1] = GoalMark
	canvas[1][1] = StartMark

	return canvas
}

// slot returns the canvas position of the passage an edge controls.
func slot(e gridgraph.Edge) (row, col int) {
	return e.Begin.Y + e.End.Y + 1, e.Begin.X + e.End.X + 1
}

// paint marks an edge's passage and both of its cells.
func paint(canvas [][]byte, e gridgraph.Edge, mark byte) {
	r, c := slot(e)
	canvas[r][c] = mark
	canvas[2*e.Begin.Y+1][2*e.Begin.X+1] = mark
	canvas[2*e.End.Y+1][2*e.End.X+1] = mark
}
