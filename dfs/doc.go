// Package dfs implements depth‑first search and cycle detection on a maze
// grid.
//
// What:
//
//   - DFS: explores as far as possible along each passage before
//     backtracking. Supports:
//   - Pre‑order and post‑order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Edge filtering (Tree edges only by default)
//   - Full traversal of every component
//   - TreePath: the Start→Goal route found by a depth‑first walk, the
//     "depth first" counterpart of bfs.TreePath.
//   - FindCycle: reports one cycle among the edges a predicate selects, using
//     vertex coloring (White, Gray, Black) and back‑edge detection.
//
// Why:
//   - A spanning tree has no cycles by construction; FindCycle is the
//     independent check the maze facade runs after carving.
//   - On a tree, depth‑first and breadth‑first walks find the same route, so
//     either can verify the pruned path.
//
// Complexity:
//
//   - DFS, TreePath: Time O(V), Memory O(V) (grid degree is at most four)
//   - FindCycle:     Time O(V), Memory O(V)
//
// Errors:
//
//   - ErrGridNil            grid pointer is nil
//   - ErrVertexOutOfBounds  start vertex outside the grid
//   - ErrUnreachable        destination not reached by the walk
//   - context.Canceled      DFS canceled via context
//   - hook errors           propagated from OnVisit or OnExit
package dfs
