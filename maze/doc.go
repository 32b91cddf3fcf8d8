// Package maze is the boundary a front end talks to. It bundles one grid, its
// spanning tree and its path extractor into an explicit State value and
// exposes the four operations a render loop needs:
//
//	Construct(w, h)  build a fresh maze (Idle)
//	s.BeginSolve()   seed the candidate path and run the first pass (Active)
//	s.Step()         one pruning pass per tick until Converged
//	Reset(w, h)      throw everything away and build again
//
// A State has no hidden globals and runs nothing in the background; it is not
// safe for concurrent use. Logging goes through an optional *zap.Logger and
// counters through an optional Observer.
package maze
