package greedy_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chromatica/core"
	"github.com/katalvlaran/chromatica/greedy"
)

// randomGraph builds a deterministic G(n,p) instance (fixed seed) so
// benchmark numbers are comparable across runs.
func randomGraph(b *testing.B, n int, p float64, seed int64) *core.Graph {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	var edges []core.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, core.Edge{U: i, V: j})
			}
		}
	}
	g, err := core.Build(n, edges)
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}

	return g
}

// benchmarkUpperBound seeds a coloring for a G(n,p) instance.
func benchmarkUpperBound(b *testing.B, n int, p float64) {
	g := randomGraph(b, n, p, 1)
	order := greedy.Order(g)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, _, err := greedy.UpperBound(g, order); err != nil {
			b.Fatalf("UpperBound failed: %v", err)
		}
	}
}

// BenchmarkUpperBound_Sparse100 benchmarks seeding on a sparse 100-vertex graph.
func BenchmarkUpperBound_Sparse100(b *testing.B) { benchmarkUpperBound(b, 100, 0.1) }

// BenchmarkUpperBound_Dense100 benchmarks seeding on a dense 100-vertex graph.
func BenchmarkUpperBound_Dense100(b *testing.B) { benchmarkUpperBound(b, 100, 0.7) }

// BenchmarkUpperBound_Sparse1000 benchmarks seeding on a sparse 1000-vertex graph.
func BenchmarkUpperBound_Sparse1000(b *testing.B) { benchmarkUpperBound(b, 1000, 0.01) }

// BenchmarkOrder_1000 benchmarks the canonical ordering alone.
func BenchmarkOrder_1000(b *testing.B) {
	g := randomGraph(b, 1000, 0.01, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = greedy.Order(g)
	}
}
