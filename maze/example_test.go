package maze_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvmaze/maze"
)

// ExampleState drives a maze through the full lifecycle.
func ExampleState() {
	s, err := maze.Construct(4, 1, maze.WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Phase())

	s.BeginSolve()
	for !s.Converged() {
		if _, err := s.Step(); err != nil {
			panic(err)
		}
	}
	route, _ := s.Route()
	fmt.Println(s.Phase(), route)
	// Output:
	// idle
	// converged [(0,0) (1,0) (2,0) (3,0)]
}
