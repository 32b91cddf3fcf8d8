// Package spanning carves a perfect maze out of a gridgraph.Grid with
// randomized Kruskal: every candidate edge is classified Tree (passable) or
// Wall (blocked), and the Tree edges form a spanning tree of the lattice.
//
// What & Why
//
//   - A perfect maze has exactly one route between any two cells, which is the
//     definition of a spanning tree over the cell graph.
//   - The weights drawn by gridgraph are random, so the minimum spanning tree
//     over them is a random spanning tree: the variety comes from the weights,
//     not from any geometric cost.
//
// Algorithm
//
//   - Build(g) stable-sorts edge ids by ascending Weight (ties keep id order).
//   - Walking that order, an edge whose endpoints already share a partition
//     group would close a cycle and becomes a Wall; any other edge becomes a
//     Tree edge and its endpoints' groups are merged.
//   - Once a single group remains every later edge is a Wall without a lookup.
//
// Guarantees
//
//   - Every edge leaves Build classified; exactly W·H − 1 are Tree edges and
//     the partition ends with one group holding every vertex.
//   - A breach of those postconditions means the algorithm itself is broken,
//     so Build panics instead of returning an error.
//
// Complexity
//
//   - Time:  O(E log E + α(V)·E), dominated by the sort.
//   - Space: O(V + E) for the partition and the processing order.
package spanning
