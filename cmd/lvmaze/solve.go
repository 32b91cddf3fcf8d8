package main

import (
	"fmt"
	"time"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/render"
)

func newSolveCmd(f *flags) *cobra.Command {
	var (
		instant bool
		pruned  bool
		quiet   bool
		walker  string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build a maze and prune it down to the path between its corners",
		Long: `solve carves a maze, then removes dead-end passages one pass per tick
until only the route from the top-left to the bottom-right corner remains.
Each pass is redrawn unless --quiet is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := f.setup(cmd)
			if err != nil {
				return err
			}
			if pruned {
				e.cfg.ShowPruned = true
			}
			s, err := maze.Construct(e.cfg.Width, e.cfg.Height, e.opts...)
			if err != nil {
				return errors.Trace(err)
			}
			if instant {
				e.cfg.Tick = 0
			}
			if err := runSolve(cmd, s, e.cfg.Tick, e.cfg.ShowPruned, quiet); err != nil {
				return err
			}
			if err := checkRoute(cmd, s, walker, e.logger); err != nil {
				return err
			}

			return e.finish(cmd)
		},
	}
	cmd.Flags().BoolVar(&instant, "instant", false, "skip the tick delay and print only the result")
	cmd.Flags().BoolVar(&pruned, "show-pruned", false, "mark the edges removed by the latest pass")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "draw only the final maze")
	cmd.Flags().StringVar(&walker, "verify", "bfs", "walk used to verify the route: bfs or dfs")

	return cmd
}

// runSolve drives s to convergence, waiting tick between passes. A zero tick
// runs the passes back to back and draws only the result.
func runSolve(cmd *cobra.Command, s *maze.State, tick time.Duration, showPruned, quiet bool) error {
	out := cmd.OutOrStdout()
	draw := func() error {
		fmt.Fprintf(out, "pass %d\n", s.Passes())
		return errors.Trace(render.ASCII(out, s, render.WithPruned(showPruned)))
	}
	live := tick > 0 && !quiet

	s.BeginSolve()
	if live && !s.Converged() {
		if err := draw(); err != nil {
			return err
		}
	}

	var ticks <-chan time.Time
	if tick > 0 {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		ticks = ticker.C
	}
	ctx := cmd.Context()
	for !s.Converged() {
		if ticks != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticks:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.Step(); err != nil {
			return errors.Trace(err)
		}
		if live && !s.Converged() {
			if err := draw(); err != nil {
				return err
			}
		}
	}

	if err := draw(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Time to search: %d ticks\n", s.Ticks())

	return nil
}

// checkRoute compares the pruned path with a direct walk of the tree and
// prints the route.
func checkRoute(cmd *cobra.Command, s *maze.State, walker string, logger *zap.Logger) error {
	walk := s.DirectPath
	switch walker {
	case "bfs":
	case "dfs":
		walk = s.DepthFirstPath
	default:
		return errors.Errorf("unknown --verify walker %q", walker)
	}
	route, err := s.Route()
	if err != nil {
		return errors.Trace(err)
	}
	direct, _, err := walk(cmd.Context())
	if err != nil {
		return errors.Trace(err)
	}
	if len(direct) != len(route) {
		return errors.Errorf("pruned route has %d cells, %s walk has %d", len(route), walker, len(direct))
	}
	for i := range route {
		if route[i] != direct[i] {
			return errors.Errorf("pruned route leaves the %s walk at %v", walker, route[i])
		}
	}
	logger.Debug("route verified",
		zap.String("maze_id", s.ID()),
		zap.String("walker", walker),
		zap.Int("cells", len(route)))
	fmt.Fprintf(cmd.OutOrStdout(), "Route: %d cells %v\n", len(route), route)

	return nil
}
