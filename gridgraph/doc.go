// Package gridgraph models the lattice a maze is carved from: a W×H grid of
// vertices and the candidate edges joining horizontal and vertical neighbors.
//
// What:
//
//   - Vertex is an (X, Y) coordinate compared structurally; its id is the
//     row-major index Y*Width + X.
//   - Every vertex gets an edge to its right neighbor (X+1 < Width) and to its
//     bottom neighbor (Y+1 < Height), giving exactly 2·W·H − W − H edges.
//   - Each edge carries a random weight in [0, MaxWeight) that only orders the
//     edges for the spanning-tree builder; it is not a distance.
//   - Edges start Unclassified and are later marked Tree (passable) or Wall.
//
// Why:
//
//   - The grid is the only topology the maze supports, so the model keeps it
//     explicit: indices are arithmetic, neighbors are offsets, nothing is hashed.
//
// Complexity:
//
//   - NewGrid:    O(W×H) time and memory.
//   - Components: O(W×H) time, O(W×H) memory.
//   - EdgeBetween / Incident: O(1) (at most four incident edges per vertex).
//
// Options:
//
//   - WithRand: supply a *rand.Rand for reproducible weights.
//   - WithMaxWeight: change the exclusive upper bound of weights (default 55).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrOptionViolation: an option received an unusable value.
package gridgraph
