// Package greedy - canonical vertex ordering for seeding and search.
package greedy

import (
	"sort"

	"github.com/katalvlaran/chromatica/core"
)

// Order returns every vertex of g sorted by descending degree, ties
// broken by ascending vertex id.
//
// The tie-break is load-bearing: it pins down which of several optimal
// witnesses the exact search returns, keeping results reproducible
// across runs and platforms.
//
// A nil graph yields nil (validation with a proper sentinel happens in
// UpperBound and in the solver entry points).
//
// Complexity: O(V log V) time, O(V) memory.
func Order(g *core.Graph) []core.Vertex {
	if g == nil {
		return nil
	}

	var (
		n     = g.VertexCount()
		order = make([]core.Vertex, n)
		v     core.Vertex
	)
	for v = 0; v < n; v++ {
		order[v] = v
	}
	sort.Slice(order, func(i, j int) bool {
		di, dj := g.Degree(order[i]), g.Degree(order[j])
		if di != dj {
			return di > dj
		}

		return order[i] < order[j]
	})

	return order
}
