// Package labeling - output types and sentinel errors.
package labeling

import "errors"

var (
	// ErrLabelMismatch indicates the label slice and coloring slice
	// disagree in length.
	ErrLabelMismatch = errors.New("labeling: label count does not match coloring length")

	// ErrDuplicateLabel indicates two vertices carry the same label.
	ErrDuplicateLabel = errors.New("labeling: duplicate vertex label")

	// ErrIncompleteColoring indicates an uncolored vertex at assembly
	// time — an internal invariant violation of the search, never an
	// expected condition.
	ErrIncompleteColoring = errors.New("labeling: coloring does not cover all vertices")
)

// VertexColor is one externally visible assignment: the original vertex
// label and its 0-based color index.
type VertexColor struct {
	// Label is the external vertex label as it appeared in the input.
	Label string

	// Color is the assigned color index in [0, χ).
	Color int
}
