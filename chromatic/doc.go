// Package chromatic computes the exact chromatic number χ(G) of an
// undirected graph together with one optimal color assignment, via a
// seeded branch-and-bound search.
//
// Overview:
//
//   - ChromaticNumber(g, opts...) is the sole exact entry point. It is
//     deterministic for a given graph: the visitation order is fixed
//     (degree descending, id ascending — greedy.Order) and so is the
//     returned witness.
//   - The search is seeded: greedy.UpperBound supplies an initial
//     incumbent (a valid total coloring), so the engine never explores
//     a branch that cannot strictly improve on an achievable bound.
//   - Recursion walks the fixed order. At each frame the current vertex
//     tries every already-introduced color that no colored neighbor
//     uses, then — only if it could still beat the incumbent — one
//     brand-new color. Each attempt is undone on return (explicit
//     rollback), so sibling branches never observe tentative state.
//   - Pruning: a frame is abandoned on entry as soon as the number of
//     colors in use reaches the incumbent's count. Checked before any
//     child is explored, not only at leaves.
//
// Exactness:
//
//	When the recursion returns fully, the incumbent count is χ(G) and
//	the stored coloring is a valid witness. Every graph is n-colorable,
//	so the procedure is total: the empty graph yields (0, empty), a
//	single isolated vertex (1, [0]).
//
// Budgets and cancellation:
//
//	Coloring is NP-hard; dense instances beyond ~30-50 vertices can run
//	long. WithTimeLimit and WithContext bound the search. Checks are
//	sparse (every 4096 frames) to keep hot-path overhead negligible.
//	On expiry the solver returns the current incumbent — always a valid
//	total coloring, possibly sub-optimal — together with ErrTimeLimit
//	(or ErrCancelled), never a partially-updated result.
//
// Advisory lower bound:
//
//	WithLowerBound threads a trusted lower bound on χ(G) (for example
//	bound.Hoffman). The engine stops as soon as the incumbent meets it,
//	since no strictly better coloring can exist. A bound that is NOT
//	valid (greater than the true χ) makes the answer wrong — the value
//	is trusted, never verified.
//
// Complexity:
//
//	– Worst case exponential in V (exact search); practical speed comes
//	  from the greedy seed and early pruning on high-degree vertices.
//	– Per frame: O(deg(v)) conflict scan, O(1) state updates.
//	– Memory: O(V) for the partial coloring and order, plus one O(V)
//	  copy per strict improvement (rare).
//
// Errors (sentinel):
//
//	– ErrNilGraph           if g is nil.
//	– ErrTimeLimit          if the soft time budget expired.
//	– ErrCancelled          if the context was cancelled.
//	– ErrIncompleteColoring internal invariant violation (defect).
//	– ErrInvalidColoring    returned by Validate for conflicting input.
package chromatic
