// Package greedy provides the first-fit coloring heuristic and the
// degree-based vertex ordering that seed chromatica's exact search.
//
// Overview:
//
//   - Order(g) returns the canonical visitation order: vertices sorted
//     by descending degree, ties broken by ascending vertex id. Coloring
//     high-degree vertices first surfaces conflicts early, which is what
//     makes the exact search's pruning effective.
//   - UpperBound(g, order) walks the order and assigns each vertex the
//     smallest color not used by its already-colored neighbors
//     ("first-fit"). The result is always a valid, total coloring, so
//     its color count is an achievable upper bound on χ(G).
//
// Determinism:
//
//	Both functions are pure and deterministic: the same graph always
//	yields the same order and the same seed coloring. No randomness,
//	no map-iteration dependence.
//
// Guarantees:
//
//   - UpperBound's coloring is valid (no adjacent pair shares a color)
//     and total (every vertex colored) for any graph with n ≥ 1.
//   - The empty graph yields (0, empty coloring).
//   - The color count never exceeds maxDegree(G) + 1.
//
// Complexity:
//
//	– Order:      O(V log V)
//	– UpperBound: O(V + E) time, O(V) memory
//
// Errors (sentinel):
//
//	– ErrNilGraph if g is nil.
//	– ErrBadOrder if order is not a permutation of [0, n).
//
// UpperBound is usable standalone by callers wanting a fast approximate
// bound without the exact search; the chromatic package consumes it as
// the initial incumbent.
package greedy
