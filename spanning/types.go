package spanning

import (
	"errors"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/partition"
)

// ErrGridNil is returned when Build receives a nil grid.
var ErrGridNil = errors.New("spanning: grid is nil")

// ErrAlreadyClassified indicates the grid already went through Build; its
// edges must all be Unclassified.
var ErrAlreadyClassified = errors.New("spanning: grid edges are already classified")

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds the hooks invoked during Build.
type Options struct {
	// OnClassify is called once per edge, in processing order, right after the
	// edge received its Tree or Wall state.
	OnClassify func(e gridgraph.Edge)
}

// DefaultOptions returns Options with a no-op OnClassify hook.
func DefaultOptions() Options {
	return Options{
		OnClassify: func(gridgraph.Edge) {},
	}
}

// WithOnClassify registers a classification hook. A nil fn is ignored.
func WithOnClassify(fn func(e gridgraph.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClassify = fn
		}
	}
}

// Result describes a finished spanning-tree construction.
//
//   - Order:   edge ids in the order they were processed (ascending weight).
//   - Tree:    ids of Tree edges, in processing order.
//   - Walls:   ids of Wall edges, in processing order.
//   - Tracker: the final partition; Count() == 1.
type Result struct {
	Order   []int
	Tree    []int
	Walls   []int
	Tracker *partition.Tracker
}
