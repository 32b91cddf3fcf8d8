// Package metrics exports maze build and path-extraction activity as
// Prometheus collectors. A *Collector satisfies maze.Observer, so wiring it
// is one option:
//
//	reg := prometheus.NewRegistry()
//	s, err := maze.Construct(w, h, maze.WithObserver(metrics.New(reg)))
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Collector holds the lvmaze metrics registered on one registry.
type Collector struct {
	// Counts mazes carved by Construct or Reset.
	MazesBuilt prometheus.Counter
	// Grid construction plus spanning tree, in seconds.
	BuildDuration prometheus.Histogram
	// Pruning passes run, including the final empty one.
	PrunePasses prometheus.Counter
	// Edges removed from candidate paths.
	EdgesPruned prometheus.Counter
	// Edge count of the most recently converged path.
	PathLength prometheus.Gauge
	// Cell count of the most recently built maze.
	GridCells prometheus.Gauge
}

// New registers the collectors on reg. A nil reg falls back to the default
// registerer, like promauto does.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		MazesBuilt: f.NewCounter(prometheus.CounterOpts{
			Name: "lvmaze_mazes_built_total",
			Help: "Total number of mazes constructed",
		}),
		BuildDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name: "lvmaze_build_duration_seconds",
			Help: "Time spent building the grid and carving its spanning tree",
			// from tiny grids (microseconds) up to very large ones
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5},
		}),
		PrunePasses: f.NewCounter(prometheus.CounterOpts{
			Name: "lvmaze_prune_passes_total",
			Help: "Total number of path pruning passes",
		}),
		EdgesPruned: f.NewCounter(prometheus.CounterOpts{
			Name: "lvmaze_edges_pruned_total",
			Help: "Total number of tree edges pruned from candidate paths",
		}),
		PathLength: f.NewGauge(prometheus.GaugeOpts{
			Name: "lvmaze_path_length",
			Help: "Number of edges on the most recently converged path",
		}),
		GridCells: f.NewGauge(prometheus.GaugeOpts{
			Name: "lvmaze_grid_cells",
			Help: "Number of cells in the most recently built maze",
		}),
	}
}

// MazeBuilt implements maze.Observer.
func (c *Collector) MazeBuilt(width, height int, elapsed time.Duration) {
	c.MazesBuilt.Inc()
	c.BuildDuration.Observe(elapsed.Seconds())
	c.GridCells.Set(float64(width * height))
}

// PassCompleted implements maze.Observer.
func (c *Collector) PassCompleted(removed int) {
	c.PrunePasses.Inc()
	c.EdgesPruned.Add(float64(removed))
}

// SolveConverged implements maze.Observer.
func (c *Collector) SolveConverged(_, pathLen int) {
	c.PathLength.Set(float64(pathLen))
}

// Dump writes every metric family gathered from g in the Prometheus text
// exposition format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
