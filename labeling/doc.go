// Package labeling assembles solver results for external consumption:
// it maps dense vertex ids back to the original string labels and emits
// (label, color) pairs in the canonical label order.
//
// Canonical order:
//
//	Numeric labels sort first, by value ("2" before "10" before "a");
//	everything else sorts lexicographically after them. This matches
//	the order in which the graphio reader assigns dense ids, so a
//	round-trip read → solve → assemble lists vertices exactly as a
//	human labeled them.
//
// The ordering is realized with a red-black tree keyed by Compare, so
// assembly is a single ordered traversal regardless of the order the
// caller supplies labels in.
//
// Invariants:
//
//   - Assemble fails with ErrIncompleteColoring if any vertex lacks a
//     color. Given a correctly terminated search this can never happen;
//     it surfaces a solver defect, not a user error.
//   - ErrLabelMismatch / ErrDuplicateLabel reject malformed label sets
//     before any output is produced.
//
// Complexity: O(n log n) per assembly.
package labeling
