// Package chromatic - result type, options, and sentinel errors.
package chromatic

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for the exact solver.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("chromatic: graph is nil")

	// ErrTimeLimit is returned when the soft time budget expires before
	// optimality is proven. The accompanying Result still holds the best
	// valid total coloring found so far.
	ErrTimeLimit = errors.New("chromatic: time limit exceeded")

	// ErrCancelled is returned when the supplied context is cancelled.
	// Like ErrTimeLimit, the accompanying Result is valid but possibly
	// sub-optimal.
	ErrCancelled = errors.New("chromatic: search cancelled")

	// ErrIncompleteColoring indicates a coloring that does not cover
	// every vertex. Coming out of the solver it is an internal invariant
	// violation (a defect), never an expected condition.
	ErrIncompleteColoring = errors.New("chromatic: coloring does not cover all vertices")

	// ErrInvalidColoring indicates two adjacent vertices sharing a color.
	ErrInvalidColoring = errors.New("chromatic: adjacent vertices share a color")
)

// uncolored marks a vertex without a color in the partial assignment.
const uncolored = -1

// checkMask controls how often deadline/context checks run: every
// (checkMask+1) recursion frames. Sparse checks keep overhead
// negligible on the hot path.
const checkMask = 4095

// Result is the outcome of an exact (or budget-interrupted) search.
type Result struct {
	// Colors is the number of distinct colors used: χ(G) on a clean
	// return, an upper bound on χ(G) when the search was interrupted.
	Colors int

	// Coloring maps each vertex id to its color index in [0, Colors).
	// Always valid and total.
	Coloring []int
}

// Options configures the exact search.
//
// Ctx        – cancellation context; defaults to context.Background().
// TimeLimit  – soft wall-clock budget; 0 disables it.
// LowerBound – trusted lower bound on χ(G); the search stops once the
//
//	incumbent meets it. 0 disables it. Must be valid (≤ χ(G)).
type Options struct {
	Ctx        context.Context
	TimeLimit  time.Duration
	LowerBound int
}

// Option is a functional option for ChromaticNumber.
type Option func(*Options)

// WithContext allows cancellation of the search via ctx.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithTimeLimit sets a soft wall-clock budget. Non-positive values
// disable the limit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithLowerBound threads a trusted lower bound on χ(G), e.g. from
// bound.Hoffman or a known clique. The engine exits early once the
// incumbent's color count reaches it. An invalid (too large) bound
// yields a wrong answer; the value is trusted, never verified.
func WithLowerBound(lb int) Option {
	return func(o *Options) {
		if lb > 0 {
			o.LowerBound = lb
		}
	}
}

// DefaultOptions returns the zero-configuration defaults: background
// context, no time limit, no advisory lower bound.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}
