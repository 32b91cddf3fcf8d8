package gridgraph_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// NewGrid Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects non-positive dimensions and bad options.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		opts          []gridgraph.Option
		err           error
	}{
		{"ZeroWidth", 0, 3, nil, gridgraph.ErrInvalidDimensions},
		{"ZeroHeight", 3, 0, nil, gridgraph.ErrInvalidDimensions},
		{"Negative", -2, -2, nil, gridgraph.ErrInvalidDimensions},
		{"BadMaxWeight", 2, 2, []gridgraph.Option{gridgraph.WithMaxWeight(0)}, gridgraph.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.NewGrid(tc.width, tc.height, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%d,%d) error = %v; want %v", tc.width, tc.height, err, tc.err)
			}
			if g != nil {
				t.Errorf("NewGrid(%d,%d) returned a grid alongside an error", tc.width, tc.height)
			}
		})
	}
}

// TestNewGrid_Counts checks |V| = W·H and |E| = 2WH − W − H over a range of shapes.
func TestNewGrid_Counts(t *testing.T) {
	for w := 1; w <= 7; w++ {
		for h := 1; h <= 7; h++ {
			g, err := gridgraph.NewGrid(w, h)
			require.NoError(t, err)
			assert.Equal(t, w*h, g.VertexCount(), "vertices for %dx%d", w, h)
			assert.Len(t, g.Vertices(), w*h, "vertex list for %dx%d", w, h)
			assert.Len(t, g.Edges, 2*w*h-w-h, "edges for %dx%d", w, h)
		}
	}
}

// TestNewGrid_EdgeShape verifies adjacency, orientation, uniqueness and initial state.
func TestNewGrid_EdgeShape(t *testing.T) {
	g, err := gridgraph.NewGrid(6, 4)
	require.NoError(t, err)

	seen := make(map[[2]gridgraph.Vertex]bool, len(g.Edges))
	for i, e := range g.Edges {
		assert.Equal(t, i, e.ID, "edge id must equal its index")
		assert.True(t, e.Begin.Adjacent(e.End), "edge %v is not unit length", e)
		assert.NotEqual(t, e.Begin, e.End, "self-loop %v", e)
		assert.True(t, e.Begin.X <= e.End.X && e.Begin.Y <= e.End.Y, "edge %v not oriented right/down", e)
		assert.Equal(t, gridgraph.Unclassified, e.State)
		assert.True(t, e.Solved)
		assert.True(t, e.Weight >= 0 && e.Weight < gridgraph.MaxWeight, "weight %d out of range", e.Weight)

		key := [2]gridgraph.Vertex{e.Begin, e.End}
		assert.False(t, seen[key], "duplicate edge %v", e)
		seen[key] = true
	}
}

// TestNewGrid_SeededWeights verifies that equal seeds reproduce equal weights
// and that WithMaxWeight bounds them.
func TestNewGrid_SeededWeights(t *testing.T) {
	a, err := gridgraph.NewGrid(5, 5, gridgraph.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	b, err := gridgraph.NewGrid(5, 5, gridgraph.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.Equal(t, a.Edges, b.Edges)

	c, err := gridgraph.NewGrid(5, 5, gridgraph.WithMaxWeight(1))
	require.NoError(t, err)
	for _, e := range c.Edges {
		assert.Zero(t, e.Weight)
	}
}

//----------------------------------------------------------------------------//
// Lookup Tests
//----------------------------------------------------------------------------//

// TestIndexCoordinate round-trips every vertex of a 4×3 grid.
func TestIndexCoordinate(t *testing.T) {
	g, err := gridgraph.NewGrid(4, 3)
	require.NoError(t, err)
	for i, v := range g.Vertices() {
		assert.Equal(t, i, g.Index(v))
		assert.Equal(t, v, g.Coordinate(i))
	}
	assert.Equal(t, gridgraph.Vertex{X: 0, Y: 0}, g.Start())
	assert.Equal(t, gridgraph.Vertex{X: 3, Y: 2}, g.Goal())
	assert.True(t, g.IsTerminal(gridgraph.Vertex{X: 3, Y: 2}))
	assert.False(t, g.IsTerminal(gridgraph.Vertex{X: 1, Y: 1}))
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 2)
	require.NoError(t, err)

	for _, v := range []gridgraph.Vertex{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}} {
		if !g.InBounds(v) {
			t.Errorf("InBounds(%v)=false; want true", v)
		}
	}
	for _, v := range []gridgraph.Vertex{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}} {
		if g.InBounds(v) {
			t.Errorf("InBounds(%v)=true; want false", v)
		}
	}
	assert.Nil(t, g.Incident(gridgraph.Vertex{X: 5, Y: 5}))
}

// TestIncidentAndEdgeBetween verifies degree counts and symmetric lookups.
func TestIncidentAndEdgeBetween(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)

	assert.Len(t, g.Incident(gridgraph.Vertex{X: 0, Y: 0}), 2, "corner")
	assert.Len(t, g.Incident(gridgraph.Vertex{X: 1, Y: 0}), 3, "border")
	assert.Len(t, g.Incident(gridgraph.Vertex{X: 1, Y: 1}), 4, "interior")

	a, b := gridgraph.Vertex{X: 1, Y: 1}, gridgraph.Vertex{X: 1, Y: 2}
	id, ok := g.EdgeBetween(a, b)
	require.True(t, ok)
	back, ok := g.EdgeBetween(b, a)
	require.True(t, ok)
	assert.Equal(t, id, back)
	assert.Equal(t, a, g.Edges[id].Begin)
	assert.Equal(t, b, g.Edges[id].Other(a))

	_, ok = g.EdgeBetween(gridgraph.Vertex{X: 0, Y: 0}, gridgraph.Vertex{X: 1, Y: 1})
	assert.False(t, ok, "diagonal neighbors share no edge")
}

//----------------------------------------------------------------------------//
// Components Tests
//----------------------------------------------------------------------------//

// TestComponents covers the all-edges, no-edges and selected-edges cases.
func TestComponents(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 2)
	require.NoError(t, err)

	all := g.Components(func(gridgraph.Edge) bool { return true })
	require.Len(t, all, 1)
	assert.Len(t, all[0], 6)

	none := g.Components(func(gridgraph.Edge) bool { return false })
	assert.Len(t, none, 6)

	// Keep only the top row's horizontal edges: {0,1,2} plus three singletons.
	top := g.Components(func(e gridgraph.Edge) bool { return e.Horizontal() && e.Begin.Y == 0 })
	require.Len(t, top, 4)
	assert.ElementsMatch(t, []int{0, 1, 2}, top[0])
}

// TestEdgeStateString pins the textual classification names.
func TestEdgeStateString(t *testing.T) {
	assert.Equal(t, "unclassified", gridgraph.Unclassified.String())
	assert.Equal(t, "tree", gridgraph.Tree.String())
	assert.Equal(t, "wall", gridgraph.Wall.String())
	assert.Equal(t, "EdgeState(9)", gridgraph.EdgeState(9).String())
}
