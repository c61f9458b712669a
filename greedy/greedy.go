// Package greedy - first-fit seed coloring.
//
// UpperBound is the upper-bound half of the seeded exact search: it
// produces a fast, valid, total coloring whose color count bounds χ(G)
// from above. It never backtracks; quality depends entirely on the
// supplied order (use Order for the canonical degree-descending one).
package greedy

import "github.com/katalvlaran/chromatica/core"

// UpperBound colors g greedily along the given order and returns the
// number of distinct colors used together with the full assignment
// (coloring[v] = color of vertex v, colors are 0-based).
//
// Contract:
//   - g must be non-nil, otherwise ErrNilGraph.
//   - order must be a permutation of [0, n), otherwise ErrBadOrder.
//   - The returned coloring is always valid and total; for the empty
//     graph the result is (0, empty slice, nil).
//
// Complexity: O(V + E) time, O(V) memory.
func UpperBound(g *core.Graph, order []core.Vertex) (int, []int, error) {
	if g == nil {
		return 0, nil, ErrNilGraph
	}

	var n = g.VertexCount()
	if err := checkPermutation(n, order); err != nil {
		return 0, nil, err
	}
	if n == 0 {
		return 0, []int{}, nil
	}

	var (
		adj      = g.AdjacencyView()
		coloring = make([]int, n)
		// inUse[c] == stamp marks color c as taken by a neighbor of the
		// vertex currently being placed. A per-vertex stamp avoids
		// clearing the scratch array between vertices.
		inUse  = make([]int, n+1)
		stamp  int
		colors int
		v, u   core.Vertex
		c      int
	)
	for v = range coloring {
		coloring[v] = uncolored
	}
	for v = range inUse {
		inUse[v] = -1
	}

	for stamp, v = range order {
		// Mark the colors of already-colored neighbors.
		for _, u = range adj[v] {
			if coloring[u] != uncolored {
				inUse[coloring[u]] = stamp
			}
		}
		// First-fit: smallest color not marked for this stamp.
		for c = 0; inUse[c] == stamp; c++ {
		}
		coloring[v] = c
		if c+1 > colors {
			colors = c + 1
		}
	}

	return colors, coloring, nil
}

// checkPermutation verifies that order contains every vertex of [0, n)
// exactly once. Complexity: O(V).
func checkPermutation(n int, order []core.Vertex) error {
	if len(order) != n {
		return ErrBadOrder
	}
	var (
		seen = make([]bool, n)
		v    core.Vertex
	)
	for _, v = range order {
		if v < 0 || v >= n || seen[v] {
			return ErrBadOrder
		}
		seen[v] = true
	}

	return nil
}
