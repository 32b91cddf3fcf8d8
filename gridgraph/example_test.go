// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// ExampleNewGrid lists the candidate edges of a 2×2 lattice.
// Each vertex emits its right edge, then its bottom edge, in row-major order.
func ExampleNewGrid() {
	g, _ := gridgraph.NewGrid(2, 2)
	fmt.Println("vertices:", g.VertexCount())
	for _, e := range g.Edges {
		fmt.Println(e.ID, e)
	}
	// Output:
	// vertices: 4
	// 0 (0,0)-(1,0)
	// 1 (0,0)-(0,1)
	// 2 (1,0)-(1,1)
	// 3 (0,1)-(1,1)
}
