package spanning

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/partition"
)

// Build classifies every edge of g as gridgraph.Tree or gridgraph.Wall so that
// the Tree edges span the grid without cycles.
//
// Error Conditions:
//   - ErrGridNil           : g is nil.
//   - ErrAlreadyClassified : some edge is not Unclassified.
//
// Steps:
//  1. Validate the grid and apply options.
//  2. Stable-sort edge ids by ascending Weight.
//  3. One singleton partition group per vertex.
//  4. Walk the sorted ids: same group → Wall; otherwise Tree and merge.
//     After the last merge the remaining edges are Walls outright.
//  5. Assert the postconditions (one group, V−1 tree edges); panic otherwise.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Build(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrGridNil
	}
	for _, e := range g.Edges {
		if e.State != gridgraph.Unclassified {
			return nil, fmt.Errorf("%w: edge %d %v is %v", ErrAlreadyClassified, e.ID, e, e.State)
		}
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Sort ids by weight; the stable sort keeps id order on ties.
	order := make([]int, len(g.Edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return g.Edges[order[i]].Weight < g.Edges[order[j]].Weight
	})

	// 3. Partition with one group per vertex.
	tracker := partition.New(g.VertexCount())
	res := &Result{
		Order:   order,
		Tree:    make([]int, 0, g.VertexCount()-1),
		Walls:   make([]int, 0, len(g.Edges)-g.VertexCount()+1),
		Tracker: tracker,
	}

	// 4. Classify.
	for _, id := range order {
		e := &g.Edges[id]
		if tracker.Count() > 1 && tracker.Union(g.Index(e.Begin), g.Index(e.End)) {
			e.State = gridgraph.Tree
			res.Tree = append(res.Tree, id)
		} else {
			e.State = gridgraph.Wall
			res.Walls = append(res.Walls, id)
		}
		o.OnClassify(*e)
	}

	// 5. Postconditions.
	if n := tracker.Count(); n != 1 {
		panic(fmt.Sprintf("spanning: %d partition groups remain after classifying %d edges", n, len(order)))
	}
	if len(res.Tree) != g.VertexCount()-1 {
		panic(fmt.Sprintf("spanning: %d tree edges for %d vertices", len(res.Tree), g.VertexCount()))
	}

	return res, nil
}
