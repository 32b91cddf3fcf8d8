package extract

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Sentinel errors for path extraction.
var (
	// ErrGridNil is returned when New receives a nil grid.
	ErrGridNil = errors.New("extract: grid is nil")

	// ErrNotConverged is returned by Route before the extractor converged.
	ErrNotConverged = errors.New("extract: path has not converged")

	// ErrBrokenPath indicates the converged candidate set is not a simple path.
	ErrBrokenPath = errors.New("extract: candidate set is not a simple path")
)

// Phase is the state of an Extractor.
type Phase uint8

const (
	// Idle: no candidate set yet.
	Idle Phase = iota
	// Active: seeded, pruning passes still remove edges.
	Active
	// Converged: the last pass removed nothing; the candidate set is the path.
	Converged
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Converged:
		return "converged"
	}

	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Option configures an Extractor.
type Option func(*Options)

// Options holds the extractor's hooks.
type Options struct {
	// OnPrune is called for every edge pruned during a pass, after its Solved
	// flag was cleared and before it leaves the candidate set.
	OnPrune func(e gridgraph.Edge)

	// OnPass is called after each pass with the 1-based pass number and the
	// number of edges it removed.
	OnPass func(pass, removed int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnPrune: func(gridgraph.Edge) {},
		OnPass:  func(int, int) {},
	}
}

// WithOnPrune registers a per-edge prune hook. A nil fn is ignored.
func WithOnPrune(fn func(e gridgraph.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}

// WithOnPass registers a per-pass hook. A nil fn is ignored.
func WithOnPass(fn func(pass, removed int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}
