// Package chromatic — Branch-and-Bound engine (exact search seeded by a
// greedy upper bound).
//
// The engine enumerates partial colorings depth-first along a fixed
// vertex order, pruning any branch whose color usage already matches
// the incumbent. State lives in one engine struct (no closures) so the
// hot path is allocation-free and easy to test.
//
// Rationale (succinct):
//  1. Adjacency is prefetched once via core.AdjacencyView — no copies,
//     no interface calls inside the recursion.
//  2. The incumbent (best count + best coloring) is an engine field,
//     never package state, so independent searches cannot interfere.
//  3. Rollback discipline: every tentative assignment is undone right
//     after its recursive call returns, before the next candidate is
//     tried. Sibling branches share the partial coloring safely because
//     nothing runs concurrently with the recursion.
//  4. Improvements deep-copy the coloring; branches never do.
//  5. Budget checks (context, deadline) are sparse — every 4096 frames —
//     and only ever leave the incumbent in a fully-committed state.
package chromatic

import (
	"time"

	"github.com/katalvlaran/chromatica/core"
)

// bnbEngine holds all search data and policies for one invocation.
type bnbEngine struct {
	// Problem shape
	n     int             // vertex count
	adj   [][]core.Vertex // read-only adjacency view
	order []core.Vertex   // fixed visitation order (degree desc, id asc)

	// Mutable recursion context, rolled back on backtrack so sibling
	// branches never observe tentative state
	colors []int // partial coloring, uncolored == -1
	used   int   // distinct colors introduced on the current path

	// Incumbent: shared by every frame for pruning
	bestCount  int
	bestColors []int

	// Early-exit floor: trusted lower bound on χ(G); 0 disables it
	floor int

	// Budget / cancellation
	opts        Options
	useDeadline bool
	deadline    time.Time
	steps       int
	stopped     error // ErrTimeLimit or ErrCancelled once aborted
}

// newEngine prepares a search over g seeded with the given incumbent.
// The seed coloring is copied: the engine owns its incumbent.
func newEngine(g *core.Graph, order []core.Vertex, seedCount int, seed []int, opts Options) *bnbEngine {
	e := &bnbEngine{
		n:          g.VertexCount(),
		adj:        g.AdjacencyView(),
		order:      order,
		bestCount:  seedCount,
		bestColors: append([]int(nil), seed...),
		floor:      opts.LowerBound,
		opts:       opts,
	}
	e.colors = make([]int, e.n)
	var v int
	for v = range e.colors {
		e.colors[v] = uncolored
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	return e
}

// interrupted performs a rare budget test (every 4096 frame entries)
// and reports whether the search must unwind.
func (e *bnbEngine) interrupted() bool {
	if e.stopped != nil {
		return true
	}
	e.steps++
	if e.steps&checkMask != 0 {
		return false
	}
	if e.opts.Ctx != nil {
		select {
		case <-e.opts.Ctx.Done():
			e.stopped = ErrCancelled

			return true
		default:
		}
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.stopped = ErrTimeLimit

		return true
	}

	return false
}

// conflicts reports whether any already-colored neighbor of v uses c.
// Complexity: O(deg(v)).
func (e *bnbEngine) conflicts(v core.Vertex, c int) bool {
	var u core.Vertex
	for _, u = range e.adj[v] {
		if e.colors[u] == c {
			return true
		}
	}

	return false
}

// place is the core recursion: attempt to color order[idx].
//
// Frame protocol:
//   - abandon immediately on budget expiry or when used >= bestCount
//     (the branch cannot strictly improve the incumbent);
//   - at idx == n commit a strictly better incumbent (guaranteed by the
//     entry prune) with a deep copy of the coloring;
//   - otherwise try existing colors 0..used-1 in ascending order, then
//     one new color iff used+1 would still beat the incumbent. Every
//     attempt is rolled back before the next.
func (e *bnbEngine) place(idx int) {
	if e.interrupted() {
		return
	}

	// Prune: this branch already uses as many colors as the incumbent.
	if e.used >= e.bestCount {
		return
	}

	// Terminal: all vertices placed; the entry prune guarantees a
	// strict improvement, so commit unconditionally.
	if idx == e.n {
		e.bestCount = e.used
		copy(e.bestColors, e.colors)

		return
	}

	var (
		v = e.order[idx]
		c int
	)

	// Try every color already introduced on this path.
	for c = 0; c < e.used; c++ {
		if e.conflicts(v, c) {
			continue
		}
		e.colors[v] = c
		e.place(idx + 1)
		e.colors[v] = uncolored // rollback before the next candidate

		if e.stopped != nil {
			return
		}
		if e.floor > 0 && e.bestCount <= e.floor {
			return // incumbent met a trusted lower bound: optimal
		}
		if e.used >= e.bestCount {
			return // incumbent tightened below this frame's usage
		}
	}

	// Introduce one new color iff it can still strictly improve.
	// Color `used` is conflict-free by construction: no neighbor holds
	// a color ≥ used on this path.
	if e.used+1 < e.bestCount {
		e.colors[v] = e.used
		e.used++
		e.place(idx + 1)
		e.used--
		e.colors[v] = uncolored
	}
}

// run executes the search and reports the abort reason, if any.
// The incumbent fields are valid (total, conflict-free) regardless.
func (e *bnbEngine) run() error {
	// A seed already matching a trusted floor is provably optimal.
	if e.floor > 0 && e.bestCount <= e.floor {
		return nil
	}
	e.place(0)

	return e.stopped
}
