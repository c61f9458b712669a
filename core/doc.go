// Package core defines the normalized graph model shared by every
// chromatica solver: a fixed, immutable, undirected adjacency structure
// over dense integer vertex ids 0..n-1.
//
// Overview:
//
//   - Vertices are plain ints in [0, n). External string labels are the
//     business of the graphio/labeling packages; by the time a Graph
//     exists, normalization has already happened.
//   - Build is the single construction point and the single rejection
//     point for malformed input: an edge endpoint outside [0, n) yields
//     ErrInvalidEdge. Self-loops are silently discarded and parallel
//     edges deduplicated, so the resulting graph is always simple.
//   - A Graph is read-only after Build returns. There are no mutation
//     methods, which makes sharing one Graph across solvers (and across
//     goroutines) safe without locks.
//
// Invariants (enforced by Build, relied upon by solvers):
//
//   - Symmetry: v ∈ Neighbors(u) ⇔ u ∈ Neighbors(v).
//   - No self-loops, no duplicate neighbors.
//   - Neighbor lists are sorted ascending — deterministic iteration.
//
// Complexity:
//
//	– Build:      O(V + E log E)   (dedup + per-vertex sort)
//	– Neighbors:  O(deg(v))        (defensive copy)
//	– Degree:     O(1)
//	– HasEdge:    O(log deg(u))    (binary search)
//
// Errors (sentinel):
//
//	– ErrNegativeCount if the declared vertex count is negative.
//	– ErrInvalidEdge   if an edge endpoint is outside [0, n).
package core
