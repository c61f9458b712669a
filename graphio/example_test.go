package graphio_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/chromatica/chromatic"
	"github.com/katalvlaran/chromatica/graphio"
	"github.com/katalvlaran/chromatica/labeling"
)

// ExampleRead shows the full pipeline: parse a labeled edge list, solve
// exactly, and assemble (label, color) pairs in canonical order.
func ExampleRead() {
	const input = `5 5
a b
b c
c a
c d
d e
`
	g, labels, err := graphio.Read(strings.NewReader(input))
	if err != nil {
		fmt.Println("read failed:", err)

		return
	}

	res, err := chromatic.ChromaticNumber(g)
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}

	pairs, err := labeling.Assemble(labels, res.Coloring)
	if err != nil {
		fmt.Println("assemble failed:", err)

		return
	}

	fmt.Println(res.Colors)
	for _, vc := range pairs {
		fmt.Printf("%s %d\n", vc.Label, vc.Color)
	}
	// Output:
	// 3
	// a 1
	// b 2
	// c 0
	// d 1
	// e 0
}
