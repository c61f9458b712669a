package core_test

import (
	"fmt"

	"github.com/katalvlaran/chromatica/core"
)

// ExampleBuild constructs a small simple graph and inspects it.
// Self-loops are dropped and parallel edges deduplicated, so the
// effective edge set is {0-1, 1-2}.
func ExampleBuild() {
	g, err := core.Build(3, []core.Edge{
		{U: 0, V: 1},
		{U: 1, V: 0}, // parallel: deduplicated
		{U: 1, V: 2},
		{U: 2, V: 2}, // self-loop: discarded
	})
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:   ", g.EdgeCount())
	fmt.Println("N(1):    ", g.Neighbors(1))
	fmt.Println("deg(2):  ", g.Degree(2))
	// Output:
	// vertices: 3
	// edges:    2
	// N(1):     [0 2]
	// deg(2):   1
}
