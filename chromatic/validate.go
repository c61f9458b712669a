// Package chromatic - coloring validation shared by the solver's
// terminal assertion and by tests.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No logging, no panics — only sentinel errors from types.go.
//   - O(V + E) worst case; no hidden allocations.
package chromatic

import "github.com/katalvlaran/chromatica/core"

// Validate checks that coloring is a valid total coloring of g.
//
// Returns:
//   - ErrNilGraph           if g is nil.
//   - ErrIncompleteColoring if the coloring's length differs from the
//     vertex count or any vertex is uncolored (negative).
//   - ErrInvalidColoring    if two adjacent vertices share a color.
//   - nil                   otherwise.
//
// Complexity: O(V + E).
func Validate(g *core.Graph, coloring []int) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(coloring) != g.VertexCount() {
		return ErrIncompleteColoring
	}

	var (
		adj  = g.AdjacencyView()
		v, u core.Vertex
	)
	for v = range coloring {
		if coloring[v] < 0 {
			return ErrIncompleteColoring
		}
	}
	for v = range coloring {
		for _, u = range adj[v] {
			if u > v { // each undirected edge checked once
				continue
			}
			if coloring[u] == coloring[v] {
				return ErrInvalidColoring
			}
		}
	}

	return nil
}
