// Package greedy - sentinel errors shared by the seeding helpers.
package greedy

import "errors"

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("greedy: graph is nil")

	// ErrBadOrder is returned when the supplied order is not a
	// permutation of the graph's vertex range [0, n).
	ErrBadOrder = errors.New("greedy: order is not a permutation of the vertex range")
)

// uncolored marks a vertex that has not been assigned a color yet.
const uncolored = -1
