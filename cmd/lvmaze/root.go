package main

import (
	"math/rand"
	"time"

	"github.com/pingcap/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/logging"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/metrics"
)

// flags holds the raw command-line values; only the ones the user set
// override the config file.
type flags struct {
	configPath string
	width      int
	height     int
	seed       int64
	maxWeight  int
	tick       time.Duration
	logLevel   string
	metrics    bool
}

// env is everything a subcommand needs once flags and config are merged.
type env struct {
	cfg      config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	opts     []maze.Option
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "lvmaze",
		Short:         "Generate perfect mazes and watch their solution path emerge",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	pf.IntVarP(&f.width, "width", "W", 0, "maze width in cells")
	pf.IntVarP(&f.height, "height", "H", 0, "maze height in cells")
	pf.Int64Var(&f.seed, "seed", 0, "random seed for edge weights (0 = clock)")
	pf.IntVar(&f.maxWeight, "max-weight", 0, "exclusive upper bound of edge weights")
	pf.DurationVar(&f.tick, "tick", 0, "delay between pruning passes")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics on exit")

	root.AddCommand(newGenerateCmd(f), newSolveCmd(f))

	return root
}

// setup merges config file and flags and builds logger, registry and maze options.
func (f *flags) setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, errors.Trace(err)
	}
	pf := cmd.Flags()
	if pf.Changed("width") {
		cfg.Width = f.width
	}
	if pf.Changed("height") {
		cfg.Height = f.height
	}
	if pf.Changed("seed") {
		cfg.Seed = f.seed
	}
	if pf.Changed("max-weight") {
		cfg.MaxWeight = f.maxWeight
	}
	if pf.Changed("tick") {
		cfg.Tick = f.tick
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if pf.Changed("metrics") {
		cfg.Metrics = f.metrics
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, errors.Trace(err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	registry := prometheus.NewRegistry()

	return &env{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		opts: []maze.Option{
			maze.WithRand(rand.New(rand.NewSource(seed))),
			maze.WithMaxWeight(cfg.MaxWeight),
			maze.WithLogger(logger),
			maze.WithObserver(metrics.New(registry)),
		},
	}, nil
}

// finish flushes the logger and dumps metrics when asked to.
func (e *env) finish(cmd *cobra.Command) error {
	_ = e.logger.Sync()
	if !e.cfg.Metrics {
		return nil
	}

	return errors.Trace(metrics.Dump(cmd.OutOrStdout(), e.registry))
}
