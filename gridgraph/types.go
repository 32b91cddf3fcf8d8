package gridgraph

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidDimensions indicates a width or height below one.
	ErrInvalidDimensions = errors.New("gridgraph: width and height must both be at least 1")
	// ErrOptionViolation indicates an Option was given an unusable value.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
)

// MaxWeight is the default exclusive upper bound of random edge weights.
const MaxWeight = 55

// Vertex is a lattice point. Two vertices with the same coordinates are the
// same vertex; use == to compare them.
type Vertex struct {
	X, Y int
}

// String renders the vertex as "(x,y)".
func (v Vertex) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Adjacent reports whether v and u differ by exactly 1 in exactly one coordinate.
func (v Vertex) Adjacent(u Vertex) bool {
	dx, dy := v.X-u.X, v.Y-u.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx+dy == 1
}

// EdgeState is the classification of a candidate edge.
type EdgeState uint8

const (
	// Unclassified edges have not been seen by the spanning-tree builder yet.
	Unclassified EdgeState = iota
	// Tree edges belong to the spanning tree and are passable.
	Tree
	// Wall edges would have closed a cycle and stay blocked.
	Wall
)

// String implements fmt.Stringer.
func (s EdgeState) String() string {
	switch s {
	case Unclassified:
		return "unclassified"
	case Tree:
		return "tree"
	case Wall:
		return "wall"
	}

	return fmt.Sprintf("EdgeState(%d)", uint8(s))
}

// Edge joins two adjacent vertices. Begin is always the left or top endpoint,
// End the right or bottom one.
//
// Weight only orders edges for the builder. State is set once by the builder;
// Solved starts true and is flipped by the path extractor when the edge is
// pruned from the candidate path.
type Edge struct {
	ID     int // index in Grid.Edges
	Begin  Vertex
	End    Vertex
	Weight int
	State  EdgeState
	Solved bool
}

// Horizontal reports whether the edge joins two vertices of the same row.
func (e Edge) Horizontal() bool {
	return e.Begin.Y == e.End.Y
}

// Touches reports whether v is one of the edge's endpoints.
func (e Edge) Touches(v Vertex) bool {
	return e.Begin == v || e.End == v
}

// Other returns the endpoint opposite v. The result is meaningless when v is
// not an endpoint.
func (e Edge) Other(v Vertex) Vertex {
	if e.Begin == v {
		return e.End
	}

	return e.Begin
}

// String renders the edge as "(x,y)-(x,y)".
func (e Edge) String() string {
	return e.Begin.String() + "-" + e.End.String()
}

// Option configures grid construction.
type Option func(*gridOptions)

type gridOptions struct {
	rng       *rand.Rand
	maxWeight int
	err       error
}

// WithRand sets the random source used for edge weights. A nil source is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *gridOptions) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithMaxWeight sets the exclusive upper bound for edge weights.
//
//	n ≥ 1: weights are drawn from [0, n)
//	n < 1: invalid option → ErrOptionViolation
func WithMaxWeight(n int) Option {
	return func(o *gridOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max weight must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.maxWeight = n
	}
}

// Grid is a W×H lattice with its candidate edges.
//
// Edges is owned by the grid; the spanning-tree builder classifies it in place
// and the path extractor flips Solved. incident[id] lists the ids of edges
// touching vertex id.
type Grid struct {
	Width, Height int
	Edges         []Edge
	incident      [][]int
}
