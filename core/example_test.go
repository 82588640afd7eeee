package core_test

import (
	"fmt"

	"github.com/katalvlaran/primegraph/core"
)

// ExampleGraph demonstrates construction, queries and the complement.
func ExampleGraph() {
	// 1) The 5-cycle 0-1-2-3-4-0
	g, _ := core.FromEdges(5, []core.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})

	// 2) Neighbourhoods are ascending
	nbrs, _ := g.Neighbors(0)
	fmt.Println("N(0):", nbrs)

	// 3) The complement of C5 is again a 5-cycle
	fmt.Println("complement:", g.Complement().Edges())

	// Output:
	// N(0): [1 4]
	// complement: [0-2 0-3 1-3 1-4 2-4]
}

// ExampleDuplicateVertex shows the edge-linked duplication of a triangle corner.
func ExampleDuplicateVertex() {
	g, _ := core.FromEdges(3, []core.Edge{{0, 1}, {1, 2}, {0, 2}})
	h, _ := core.DuplicateVertex(g, 2)

	nbrs, _ := h.Neighbors(3)
	fmt.Println(h.VertexCount(), h.EdgeCount(), nbrs)

	// Output:
	// 4 6 [0 1 2]
}
