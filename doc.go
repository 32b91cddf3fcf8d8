// Package lvmaze generates perfect mazes on a rectangular grid and extracts
// the path between their corners one step at a time.
//
// 🚀 What is lvmaze?
//
//	A small, deterministic-when-seeded toolkit that brings together:
//		• Grid model: vertices, candidate edges and random weights
//		• Randomized Kruskal over a disjoint-set partition
//		• Steppable dead-end pruning down to the Start→Goal path
//		• Breadth- and depth-first tree walks to verify the result
//		• ASCII rendering, Prometheus metrics and a cobra CLI
//
// Under the hood, everything is organized in subpackages:
//
//	gridgraph/  Vertex, Edge, Grid and the candidate edge set
//	partition/  disjoint sets with union by rank and path halving
//	spanning/   randomized Kruskal classifying edges as Tree or Wall
//	extract/    Idle → Active → Converged leaf-pruning state machine
//	bfs/, dfs/  tree walks, reference paths and cycle detection
//	maze/       the State facade: Construct, BeginSolve, Step, Reset
//	render/     ASCII output
//	metrics/    Prometheus observer
//	config/, logging/  YAML settings and zap logger for the CLI
//
// Quick ASCII example (3×2, solved):
//
//	+-+-+-+
//	|S****|
//	+ + +*+
//	| | |G|
//	+-+-+-+
//
//	go install github.com/katalvlaran/lvmaze/cmd/lvmaze@latest
package lvmaze
