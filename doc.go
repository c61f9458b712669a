// Package chromatica computes exact and approximate vertex colorings
// of undirected graphs — the chromatic number χ(G) together with a
// witnessing color assignment.
//
// 🎨 What is chromatica?
//
//	A small, deterministic library for the minimum vertex coloring
//	problem, built around a seeded branch-and-bound exact search:
//		• core/      — immutable dense-integer graph model
//		• greedy/    — first-fit seeding heuristic & degree ordering
//		• chromatic/ — exact branch-and-bound solver (the heart)
//		• bound/     — spectral (Hoffman) lower bound, advisory
//		• labeling/  — dense-id → external-label result assembly
//		• graphio/   — plain-text edge-list reader
//		• cmd/       — the chromatica command-line solver
//
// ✨ Why choose chromatica?
//
//   - Provably optimal — the search is exact, pruned by a greedy
//     upper bound and a fixed degree-descending vertex order
//   - Deterministic — identical graphs always yield identical
//     orders, seeds, and witnesses; no hidden randomness
//   - Pure Go hot path — the search state is plain slices, no cgo
//   - Honest about hardness — coloring is NP-hard; soft time budgets
//     and context cancellation return the best incumbent found
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╲ │
//	    C───D
//
//	a 4-cycle with one chord needs 3 colors (the triangle A-B-D).
//
// Start with chromatic.ChromaticNumber for exact answers, or
// greedy.UpperBound when a fast bound is enough.
//
//	go get github.com/katalvlaran/chromatica
package chromatica
