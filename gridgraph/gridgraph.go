package gridgraph

import (
	"fmt"
	"math/rand"
	"time"
)

// forwardOffsets are the right and bottom neighbor offsets. Emitting only
// these per vertex enumerates every unordered neighbor pair exactly once.
var forwardOffsets = [2][2]int{{1, 0}, {0, 1}}

// NewGrid builds a width×height lattice and its candidate edges.
//
// Steps:
//  1. Validate dimensions (fail fast; no partial work).
//  2. Apply options; surface ErrOptionViolation.
//  3. For each vertex in row-major order emit the right edge, then the bottom
//     edge, drawing each weight independently from [0, maxWeight).
//  4. Record incident edge ids per vertex for O(1) neighborhood queries.
//
// Returns ErrInvalidDimensions when width < 1 or height < 1.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int, opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	o := gridOptions{maxWeight: MaxWeight}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Grid{
		Width:    width,
		Height:   height,
		Edges:    make([]Edge, 0, 2*width*height-width-height),
		incident: make([][]int, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			begin := Vertex{X: x, Y: y}
			for _, d := range forwardOffsets {
				end := Vertex{X: x + d[0], Y: y + d[1]}
				if !g.InBounds(end) {
					continue
				}
				id := len(g.Edges)
				g.Edges = append(g.Edges, Edge{
					ID:     id,
					Begin:  begin,
					End:    end,
					Weight: o.rng.Intn(o.maxWeight),
					State:  Unclassified,
					Solved: true,
				})
				g.incident[g.Index(begin)] = append(g.incident[g.Index(begin)], id)
				g.incident[g.Index(end)] = append(g.incident[g.Index(end)], id)
			}
		}
	}

	return g, nil
}

// InBounds reports whether v lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(v Vertex) bool {
	return v.X >= 0 && v.X < g.Width && v.Y >= 0 && v.Y < g.Height
}

// Index maps v to its row-major id: Y*Width + X.
// Complexity: O(1).
func (g *Grid) Index(v Vertex) int {
	return v.Y*g.Width + v.X
}

// Coordinate converts a row-major id back to its vertex.
// Complexity: O(1).
func (g *Grid) Coordinate(id int) Vertex {
	return Vertex{X: id % g.Width, Y: id / g.Width}
}

// VertexCount returns W×H.
func (g *Grid) VertexCount() int {
	return g.Width * g.Height
}

// Vertices returns every vertex in row-major order.
// Complexity: O(W×H).
func (g *Grid) Vertices() []Vertex {
	vs := make([]Vertex, 0, g.VertexCount())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			vs = append(vs, Vertex{X: x, Y: y})
		}
	}

	return vs
}

// Start is the top-left terminal (0,0).
func (g *Grid) Start() Vertex {
	return Vertex{}
}

// Goal is the bottom-right terminal (W-1,H-1).
func (g *Grid) Goal() Vertex {
	return Vertex{X: g.Width - 1, Y: g.Height - 1}
}

// IsTerminal reports whether v is Start or Goal.
func (g *Grid) IsTerminal(v Vertex) bool {
	return v == g.Start() || v == g.Goal()
}

// Incident returns the ids of all candidate edges touching v, regardless of
// their state. The slice is shared; callers must not modify it.
// Complexity: O(1).
func (g *Grid) Incident(v Vertex) []int {
	if !g.InBounds(v) {
		return nil
	}

	return g.incident[g.Index(v)]
}

// EdgeBetween returns the id of the edge joining a and b, if any.
// Complexity: O(1).
func (g *Grid) EdgeBetween(a, b Vertex) (int, bool) {
	for _, id := range g.Incident(a) {
		if g.Edges[id].Touches(b) {
			return id, true
		}
	}

	return 0, false
}

// EdgesIn returns the ids of edges in state s, ascending.
// Complexity: O(E).
func (g *Grid) EdgesIn(s EdgeState) []int {
	var ids []int
	for _, e := range g.Edges {
		if e.State == s {
			ids = append(ids, e.ID)
		}
	}

	return ids
}

// TreeEdges returns the ids of the passable edges.
func (g *Grid) TreeEdges() []int {
	return g.EdgesIn(Tree)
}

// WallEdges returns the ids of the blocked edges.
func (g *Grid) WallEdges() []int {
	return g.EdgesIn(Wall)
}

// Components finds the groups of vertices joined by edges for which pass
// returns true. Each component is a slice of vertex ids in BFS order; the
// components come out in order of their smallest vertex id.
//
// With pass selecting Tree edges, a finished maze has exactly one component.
//
// Time:   O(W·H), since every vertex has at most four incident edges.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(pass func(Edge) bool) [][]int {
	total := g.VertexCount()
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, id := range g.incident[queue[qi]] {
				e := g.Edges[id]
				if !pass(e) {
					continue
				}
				vi := g.Index(e.Other(u))
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
