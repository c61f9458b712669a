// Package chromatic - public entry point for the exact solver.
package chromatic

import (
	"github.com/katalvlaran/chromatica/core"
	"github.com/katalvlaran/chromatica/greedy"
)

// ChromaticNumber computes χ(g) and one optimal color assignment.
//
// Pipeline:
//  1. Canonical order via greedy.Order (degree desc, id asc).
//  2. Seed incumbent via greedy.UpperBound — a valid total coloring, so
//     a worse or equal search outcome can never overwrite it.
//  3. Branch-and-bound over the fixed order (see bnb.go).
//  4. Invariant assertion: the returned coloring must be valid and
//     total; a violation surfaces as ErrIncompleteColoring /
//     ErrInvalidColoring and signals a solver defect, not a user error.
//
// Determinism: identical graphs yield identical results, including the
// witness (ordering ties broken by ascending vertex id).
//
// Interruption: with WithTimeLimit / WithContext the search may stop
// early; the returned Result is then the best valid total coloring
// found so far and the error is ErrTimeLimit or ErrCancelled.
//
// Edge cases: nil graph → ErrNilGraph; empty graph → (0, empty);
// single isolated vertex → (1, [0]).
//
// Complexity: exponential worst case (the problem is NP-hard); see the
// package docs for what the seeding and pruning buy in practice.
func ChromaticNumber(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	var o = DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	if g.VertexCount() == 0 {
		return Result{Colors: 0, Coloring: []int{}}, nil
	}

	// Seed: ordering + greedy upper bound (always valid and total).
	order := greedy.Order(g)
	seedCount, seed, err := greedy.UpperBound(g, order)
	if err != nil {
		return Result{}, err
	}

	e := newEngine(g, order, seedCount, seed, o)
	stopped := e.run()

	res := Result{Colors: e.bestCount, Coloring: e.bestColors}
	if stopped != nil {
		// Incumbent is committed atomically on improvement, so it is a
		// consistent (valid, total, possibly sub-optimal) coloring.
		return res, stopped
	}

	// Terminal invariant: the witness must cover the graph validly.
	if err = Validate(g, res.Coloring); err != nil {
		return Result{}, err
	}

	return res, nil
}
