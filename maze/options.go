package maze

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Observer receives lifecycle notifications from a State. Implementations
// must be cheap; they run inline with Construct and Step.
type Observer interface {
	// MazeBuilt fires once per Construct/Reset after the tree is carved.
	MazeBuilt(width, height int, elapsed time.Duration)
	// PassCompleted fires after every pruning pass.
	PassCompleted(removed int)
	// SolveConverged fires when a pass prunes nothing.
	SolveConverged(passes, pathLen int)
}

// NopObserver ignores every notification.
type NopObserver struct{}

// MazeBuilt implements Observer.
func (NopObserver) MazeBuilt(int, int, time.Duration) {}

// PassCompleted implements Observer.
func (NopObserver) PassCompleted(int) {}

// SolveConverged implements Observer.
func (NopObserver) SolveConverged(int, int) {}

// Option configures Construct and Reset.
type Option func(*options)

type options struct {
	rng       *rand.Rand
	maxWeight int
	logger    *zap.Logger
	observer  Observer
}

func defaultOptions() options {
	return options{
		maxWeight: gridgraph.MaxWeight,
		logger:    zap.NewNop(),
		observer:  NopObserver{},
	}
}

// WithRand fixes the random source for edge weights, making the maze reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithMaxWeight narrows the random weight range to [0, n). With n == 1 every
// weight is zero and the maze depends only on edge order. n < 1 makes
// Construct fail with gridgraph.ErrOptionViolation.
func WithMaxWeight(n int) Option {
	return func(o *options) {
		o.maxWeight = n
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver sets the lifecycle observer. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}
