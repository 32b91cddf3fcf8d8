// Package extract reduces a maze's spanning tree to the single route between
// its terminals, (0,0) and (W-1,H-1), by repeatedly trimming dead ends.
//
// The process is a fixed-point relaxation that a caller advances one pass at a
// time, so a front end can animate the dead ends disappearing:
//
//	Idle ──Seed──▶ Active ──Step (pruned 0)──▶ Converged
//	                 ▲  └─Step (pruned > 0)─┘       │
//	                 └────────────Seed───────────────┘
//
// Pass rule
//
//   - Degrees are taken over the candidate set as it stood when the pass began;
//     an edge counts toward both of its endpoints, so a dead end has degree 1.
//   - An edge is pruned (Solved=false) when one of its endpoints has degree 1
//     and that endpoint is not a terminal.
//   - Pruned edges leave the candidate set when the pass ends.
//
// Termination
//
//	Every pass that prunes something strictly shrinks a finite set, so at most
//	V passes run before one prunes nothing. At that point every non-terminal
//	vertex left has degree 2 and both terminals degree 1: the candidate set is
//	exactly the tree path between them.
//
// Complexity
//
//   - Seed: O(E log E). Step: O(C log C) for C candidate edges.
//   - Worst case to convergence: O(V·C log C); in practice the number of passes
//     equals the length of the longest dead-end branch.
package extract
