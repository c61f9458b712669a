// Package labeling - canonical comparator and result assembly.
package labeling

import (
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Compare is the canonical label comparator: numeric labels first,
// ordered by value; non-numeric labels after, ordered lexicographically.
// Numeric means an optionally negated run of ASCII digits — a leading
// "+" makes a label text, and magnitude is unbounded (values past int64
// still sort numerically). Numeric labels with equal value but different
// spellings ("7" vs "07") fall back to lexicographic order so the
// relation stays total.
//
// Complexity: O(len(a) + len(b)).
func Compare(a, b string) int {
	aNum, bNum := isNumeric(a), isNumeric(b)
	switch {
	case aNum && bNum:
		if c := compareNumeric(a, b); c != 0 {
			return c
		}

		return strings.Compare(a, b)
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// isNumeric reports whether s is an optionally negated nonempty run of
// ASCII digits. "+5" is text; "-" alone is text.
func isNumeric(s string) bool {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return false
	}
	var i int
	for i = 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}

	return true
}

// compareNumeric orders two numeric labels by value without parsing
// them into machine integers, so arbitrary magnitudes stay exact.
func compareNumeric(a, b string) int {
	aNeg, bNeg := strings.HasPrefix(a, "-"), strings.HasPrefix(b, "-")
	if aNeg != bNeg {
		if aNeg {
			return -1
		}

		return 1
	}

	c := compareMagnitude(strings.TrimPrefix(a, "-"), strings.TrimPrefix(b, "-"))
	if aNeg {
		return -c
	}

	return c
}

// compareMagnitude compares two unsigned digit strings by value:
// strip leading zeros, then longer means larger, then lexicographic.
func compareMagnitude(a, b string) int {
	a, b = strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}

	return strings.Compare(a, b)
}

// SortedLabels returns a copy of labels in canonical order.
// Complexity: O(n log n).
func SortedLabels(labels []string) []string {
	tree := redblacktree.NewWith(compareKeys)
	var l string
	for _, l = range labels {
		tree.Put(l, struct{}{})
	}

	var (
		out = make([]string, 0, tree.Size())
		it  = tree.Iterator()
	)
	for it.Next() {
		out = append(out, it.Key().(string))
	}

	return out
}

// Assemble converts a dense coloring back to external (label, color)
// pairs in canonical label order. labels[v] names dense vertex v;
// coloring[v] is its color.
//
// Errors:
//   - ErrLabelMismatch      if len(labels) != len(coloring).
//   - ErrDuplicateLabel     if two vertices share a label.
//   - ErrIncompleteColoring if any color is negative (solver defect).
//
// Complexity: O(n log n).
func Assemble(labels []string, coloring []int) ([]VertexColor, error) {
	if len(labels) != len(coloring) {
		return nil, ErrLabelMismatch
	}

	tree := redblacktree.NewWith(compareKeys)
	var v int
	for v = range labels {
		if coloring[v] < 0 {
			return nil, ErrIncompleteColoring
		}
		if _, dup := tree.Get(labels[v]); dup {
			return nil, ErrDuplicateLabel
		}
		tree.Put(labels[v], coloring[v])
	}

	var (
		out = make([]VertexColor, 0, len(labels))
		it  = tree.Iterator()
	)
	for it.Next() {
		out = append(out, VertexColor{Label: it.Key().(string), Color: it.Value().(int)})
	}

	return out, nil
}

// compareKeys adapts Compare to the gods comparator signature.
func compareKeys(a, b interface{}) int {
	return Compare(a.(string), b.(string))
}
