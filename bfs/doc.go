// Package bfs walks a maze's passages breadth-first from one vertex and
// records parent links, giving the direct, single-shot answer to "which route
// joins these two cells".
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex, moving
//     only across edges accepted by the edge filter (Tree edges by default).
//   - Returns a Result containing:
//   - Order:      visit sequence
//   - Depth:      vertex → hops from start
//   - Parent:     vertex → predecessor in the BFS tree
//   - ParentEdge: vertex → id of the edge it was reached through
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//	Over a spanning tree there is exactly one simple path between two vertices,
//	so the BFS parent chain from one terminal to the other is that path. This
//	is the linear-time counterpart to the steppable pruning in package extract,
//	and the two must agree.
//
// Determinism
//
//	Neighbors are expanded in incident-edge id order, so Order is reproducible.
//
// Complexity (V = W·H)
//
//   - Time:   O(V), every vertex has at most four incident edges.
//   - Memory: O(V) for the queue, visited flags and the result maps.
package bfs
