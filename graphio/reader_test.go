package graphio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatica/graphio"
)

func TestRead_EmptyInput(t *testing.T) {
	g, labels, err := graphio.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Empty(t, labels)
}

func TestRead_BlankLinesOnly(t *testing.T) {
	g, labels, err := graphio.Read(strings.NewReader("\n\n   \n"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Empty(t, labels)
}

func TestRead_HeaderNM(t *testing.T) {
	in := "3 3\na b\nb c\nc a\n"
	g, labels, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, labels)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestRead_HeaderEdgeCountOnly(t *testing.T) {
	in := "2\n1 2\n2 3\n"
	g, labels, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, labels)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestRead_HeaderlessEdgeList(t *testing.T) {
	// First line is already an edge: read until EOF.
	in := "x y\ny z\n"
	g, labels, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, labels)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestRead_BadHeader(t *testing.T) {
	_, _, err := graphio.Read(strings.NewReader("a b c\n"))
	assert.ErrorIs(t, err, graphio.ErrBadHeader)
}

func TestRead_EdgeCountStopsEarly(t *testing.T) {
	// Only the declared m edges are consumed; the rest is ignored.
	in := "1\na b\nc d\n"
	g, labels, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, labels)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRead_SelfLoopsDropped(t *testing.T) {
	// A vertex that only ever appears in self-loops does not exist.
	in := "3\na a\na b\nc c\n"
	g, labels, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, labels)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRead_MalformedLinesSkipped(t *testing.T) {
	in := "2\na b c\n\na b\nb c\n"
	g, labels, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, labels)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestRead_DuplicateEdgesDeduplicated(t *testing.T) {
	in := "3\na b\nb a\na b\n"
	g, _, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRead_IsolatedVerticesFromHeader(t *testing.T) {
	// "n m" with no usable edges: n isolated vertices labeled 0..n-1.
	g, labels, err := graphio.Read(strings.NewReader("4 0\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, labels)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestRead_NumericLabelsSortNumerically(t *testing.T) {
	// Labels "10" and "2": canonical order is numeric, so dense id 0
	// must be "2", not "10".
	in := "2\n10 2\n2 7\n"
	g, labels, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "7", "10"}, labels)
	assert.True(t, g.HasEdge(0, 2), `edge "2"-"10" must map to ids 0-2`)
	assert.True(t, g.HasEdge(0, 1), `edge "2"-"7" must map to ids 0-1`)
}

func TestRead_LongLinesTolerated(t *testing.T) {
	// A single-token line far past the default 64KiB scanner buffer is
	// just another malformed line: skipped, not an error.
	in := "1\n" + strings.Repeat("x", 100_000) + "\na b\n"
	g, labels, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, labels)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRead_TruncatedEdgeSection(t *testing.T) {
	// Fewer edges than declared: EOF simply ends the graph.
	in := "5 3\na b\n"
	g, labels, err := graphio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, labels)
	assert.Equal(t, 1, g.EdgeCount())
}
