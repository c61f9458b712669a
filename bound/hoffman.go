// Package bound - the Hoffman spectral lower bound.
package bound

import (
	"errors"
	"math"

	"github.com/katalvlaran/chromatica/core"
)

// ErrNilGraph is returned when a nil *core.Graph is passed.
var ErrNilGraph = errors.New("bound: graph is nil")

// roundScale stabilizes the eigenvalue ratio to 1e-9 before taking the
// ceiling, so numerical drift can never inflate an exact bound (e.g.
// turn the exact n of K_n into n+1).
const roundScale = 1e9

// Hoffman returns the Hoffman lower bound ⌈1 + λmax/|λmin|⌉ on χ(g).
//
// Edge cases mirror the graph-theoretic facts:
//   - empty graph (no vertices)  → 0
//   - edgeless graph             → 1 (λmin = 0; one color suffices)
//
// The result is always a valid lower bound on the chromatic number and
// is safe to feed to chromatic.WithLowerBound.
//
// Complexity: O(n³) time, O(n²) memory.
func Hoffman(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	var n = g.VertexCount()
	if n == 0 {
		return 0, nil
	}
	if g.EdgeCount() == 0 {
		return 1, nil
	}

	// Dense symmetric adjacency matrix (scratch copy for Jacobi).
	var (
		a    = make([][]float64, n)
		adj  = g.AdjacencyView()
		v, u core.Vertex
	)
	for v = 0; v < n; v++ {
		a[v] = make([]float64, n)
	}
	for v = 0; v < n; v++ {
		for _, u = range adj[v] {
			a[v][u] = 1
		}
	}

	eig, err := jacobiEigenvalues(a)
	if err != nil {
		return 0, err
	}

	var lmax, lmin = eig[0], eig[0]
	for _, x := range eig[1:] {
		lmax = math.Max(lmax, x)
		lmin = math.Min(lmin, x)
	}

	// With at least one edge the spectrum has a strictly negative tail
	// (trace is zero, λmax > 0); guard anyway against degenerate input.
	if lmin >= 0 {
		return 1, nil
	}

	ratio := 1 + lmax/math.Abs(lmin)
	ratio = math.Round(ratio*roundScale) / roundScale

	return int(math.Ceil(ratio)), nil
}
