package chromatic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/chromatica/chromatic"
	"github.com/katalvlaran/chromatica/core"
)

func TestValidate_NilGraph(t *testing.T) {
	assert.ErrorIs(t, chromatic.Validate(nil, nil), chromatic.ErrNilGraph)
}

func TestValidate_LengthMismatch(t *testing.T) {
	g := mustBuild(t, 3, []core.Edge{{U: 0, V: 1}})
	assert.ErrorIs(t, chromatic.Validate(g, []int{0, 1}), chromatic.ErrIncompleteColoring)
	assert.ErrorIs(t, chromatic.Validate(g, []int{0, 1, 0, 1}), chromatic.ErrIncompleteColoring)
}

func TestValidate_UncoloredVertex(t *testing.T) {
	g := mustBuild(t, 3, []core.Edge{{U: 0, V: 1}})
	assert.ErrorIs(t, chromatic.Validate(g, []int{0, 1, -1}), chromatic.ErrIncompleteColoring)
}

func TestValidate_Conflict(t *testing.T) {
	g := mustBuild(t, 3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	assert.ErrorIs(t, chromatic.Validate(g, []int{0, 0, 1}), chromatic.ErrInvalidColoring)
}

func TestValidate_OK(t *testing.T) {
	g := mustBuild(t, 3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}})
	assert.NoError(t, chromatic.Validate(g, []int{0, 1, 2}))

	empty := mustBuild(t, 0, nil)
	assert.NoError(t, chromatic.Validate(empty, []int{}))
}
