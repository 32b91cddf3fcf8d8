package dfs

import (
	"github.com/katalvlaran/lvmaze/gridgraph"
)

// frame is one level of the explicit DFS stack used by FindCycle.
type frame struct {
	v    int // vertex id
	via  int // edge id used to reach v, -1 for a root
	next int // position in v's incident list
}

// FindCycle looks for a cycle among the edges for which pass returns true.
// It returns the closed vertex sequence [v0, v1, …, v0] of the first cycle
// found, or (nil, false) when the selected edges form a forest.
//
// The walk keeps its own stack rather than recursing, so trees as deep as
// they are large cost no goroutine stack growth.
//
// Steps:
//  1. Color every vertex White.
//  2. From each White vertex, walk depth first; vertices on the stack are Gray.
//  3. Reaching a Gray vertex over any edge except the one we came by closes a
//     cycle: the stack segment from that vertex to the top is the cycle.
//  4. Vertices whose edges are exhausted turn Black and are popped.
//
// Complexity: O(V) time and memory on a grid.
func FindCycle(g *gridgraph.Grid, pass func(gridgraph.Edge) bool) ([]gridgraph.Vertex, bool) {
	if g == nil {
		return nil, false
	}
	total := g.VertexCount()
	state := make([]int, total)
	pos := make([]int, total) // stack index of each Gray vertex

	for root := 0; root < total; root++ {
		if state[root] != White {
			continue
		}
		stack := []frame{{v: root, via: -1}}
		state[root] = Gray
		pos[root] = 0

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			u := g.Coordinate(top.v)
			inc := g.Incident(u)
			if top.next == len(inc) {
				state[top.v] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			id := inc[top.next]
			top.next++

			e := g.Edges[id]
			if id == top.via || !pass(e) {
				continue
			}
			w := g.Index(e.Other(u))
			switch state[w] {
			case White:
				state[w] = Gray
				pos[w] = len(stack)
				stack = append(stack, frame{v: w, via: id})
			case Gray:
				cycle := make([]gridgraph.Vertex, 0, len(stack)-pos[w]+1)
				for _, f := range stack[pos[w]:] {
					cycle = append(cycle, g.Coordinate(f.v))
				}
				cycle = append(cycle, g.Coordinate(w))

				return cycle, true
			}
		}
	}

	return nil, false
}
