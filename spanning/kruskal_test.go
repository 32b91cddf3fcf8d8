package spanning_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/spanning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// newGrid builds a seeded grid so failures are reproducible.
func newGrid(t *testing.T, w, h int, seed int64) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(w, h, gridgraph.WithRand(rand.New(rand.NewSource(seed))))
	require.NoError(t, err)

	return g
}

// oracle mirrors the Tree edges into a gonum undirected graph, independent of
// the partition tracker used by Build.
func oracle(g *gridgraph.Grid) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for i := 0; i < g.VertexCount(); i++ {
		ug.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges {
		if e.State == gridgraph.Tree {
			ug.SetEdge(simple.Edge{F: simple.Node(g.Index(e.Begin)), T: simple.Node(g.Index(e.End))})
		}
	}

	return ug
}

// TestBuild_Validation verifies the nil-grid and double-build errors.
func TestBuild_Validation(t *testing.T) {
	_, err := spanning.Build(nil)
	assert.ErrorIs(t, err, spanning.ErrGridNil)

	g := newGrid(t, 3, 3, 1)
	_, err = spanning.Build(g)
	require.NoError(t, err)
	_, err = spanning.Build(g)
	assert.ErrorIs(t, err, spanning.ErrAlreadyClassified)
}

// TestBuild_SpanningTree checks counts, connectivity and acyclicity across shapes and seeds.
func TestBuild_SpanningTree(t *testing.T) {
	for w := 1; w <= 9; w++ {
		for h := 1; h <= 9; h++ {
			g := newGrid(t, w, h, int64(w*31+h))
			res, err := spanning.Build(g)
			require.NoError(t, err)

			v := w * h
			assert.Len(t, res.Tree, v-1, "%dx%d tree edges", w, h)
			assert.Len(t, res.Walls, len(g.Edges)-(v-1), "%dx%d wall edges", w, h)
			assert.Len(t, g.TreeEdges(), v-1)
			for _, e := range g.Edges {
				assert.NotEqual(t, gridgraph.Unclassified, e.State, "edge %v left unclassified", e)
			}

			ug := oracle(g)
			comps := topo.ConnectedComponents(ug)
			assert.Len(t, comps, 1, "%dx%d must be connected", w, h)
			// A connected graph with V−1 edges has no cycle.
			assert.Equal(t, v-1, ug.Edges().Len(), "%dx%d must be acyclic", w, h)
		}
	}
}

// TestBuild_TrackerHoldsEveryVertexOnce checks the final partition state.
func TestBuild_TrackerHoldsEveryVertexOnce(t *testing.T) {
	g := newGrid(t, 12, 7, 99)
	res, err := spanning.Build(g)
	require.NoError(t, err)

	require.Equal(t, 1, res.Tracker.Count())
	groups := res.Tracker.Groups()
	require.Len(t, groups, 1)
	for _, members := range groups {
		require.Len(t, members, g.VertexCount())
		seen := make(map[int]bool, len(members))
		for _, m := range members {
			require.False(t, seen[m], "vertex %d appears twice", m)
			seen[m] = true
		}
	}
}

// TestBuild_OrderIsStableByWeight verifies ascending weights with id tie-breaks
// and that OnClassify sees edges in that order.
func TestBuild_OrderIsStableByWeight(t *testing.T) {
	g := newGrid(t, 8, 8, 5)
	var seen []int
	res, err := spanning.Build(g, spanning.WithOnClassify(func(e gridgraph.Edge) {
		assert.NotEqual(t, gridgraph.Unclassified, e.State)
		seen = append(seen, e.ID)
	}))
	require.NoError(t, err)
	require.Equal(t, res.Order, seen)

	for i := 1; i < len(res.Order); i++ {
		prev, cur := g.Edges[res.Order[i-1]], g.Edges[res.Order[i]]
		require.LessOrEqual(t, prev.Weight, cur.Weight)
		if prev.Weight == cur.Weight {
			require.Less(t, prev.ID, cur.ID, "ties must keep id order")
		}
	}
}

// TestBuild_SingleRowAndColumn: a 1-wide or 1-tall grid is already a tree.
func TestBuild_SingleRowAndColumn(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 6}, {6, 1}} {
		g := newGrid(t, dims[0], dims[1], 3)
		res, err := spanning.Build(g)
		require.NoError(t, err)
		assert.Len(t, res.Tree, len(g.Edges))
		assert.Empty(t, res.Walls)
	}
}

// TestBuild_TwoByTwo: four candidate edges, three tree edges, one wall.
func TestBuild_TwoByTwo(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := newGrid(t, 2, 2, seed)
		res, err := spanning.Build(g)
		require.NoError(t, err)
		assert.Len(t, g.Edges, 4)
		assert.Len(t, res.Tree, 3)
		assert.Len(t, res.Walls, 1)
	}
}

// TestBuild_EqualWeights: with every weight 0 the stable order is the id order,
// so the result is fully determined.
func TestBuild_EqualWeights(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 2, gridgraph.WithMaxWeight(1))
	require.NoError(t, err)
	res, err := spanning.Build(g)
	require.NoError(t, err)
	// ids: 0 (0,0)-(1,0), 1 (0,0)-(0,1), 2 (1,0)-(1,1), 3 (0,1)-(1,1) closes the cycle.
	assert.Equal(t, []int{0, 1, 2}, res.Tree)
	assert.Equal(t, []int{3}, res.Walls)
}
