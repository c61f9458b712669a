// Package graphio - the edge-list reader.
package graphio

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/chromatica/core"
	"github.com/katalvlaran/chromatica/labeling"
)

// ErrBadHeader is returned when the first non-empty line matches none
// of the accepted header formats.
var ErrBadHeader = pkgerrors.New("graphio: unrecognized header format")

// maxLineBytes caps a single input line. Well-formed lines are two
// short tokens; the cap only guards against pathological input.
const maxLineBytes = 1 << 20

// labeledEdge is an edge still expressed in external labels.
type labeledEdge struct {
	u, v string
}

// reader accumulates labels and labeled edges while scanning.
type reader struct {
	sc     *bufio.Scanner
	labels map[string]struct{}
	edges  []labeledEdge
}

// Read parses a graph from r and returns the normalized graph together
// with the dense-id → label mapping (labels[i] names vertex i, in
// canonical label order).
//
// An empty input yields the empty graph.
//
// Complexity: O(input + V log V + E log E).
func Read(r io.Reader) (*core.Graph, []string, error) {
	var rd = reader{
		sc:     bufio.NewScanner(r),
		labels: make(map[string]struct{}),
	}
	rd.sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	// Stage 1: locate the header (first non-empty line).
	var header string
	for rd.sc.Scan() {
		header = strings.TrimSpace(rd.sc.Text())
		if header != "" {
			break
		}
	}
	if err := rd.sc.Err(); err != nil {
		return nil, nil, pkgerrors.Wrap(err, "graphio: reading header")
	}
	if header == "" {
		return emptyGraph()
	}

	// Stage 2: dispatch on the header shape.
	var (
		parts   = strings.Fields(header)
		headerN = -1
		err     error
	)
	switch {
	case len(parts) == 2 && isInt(parts[0]) && isInt(parts[1]):
		// "n m": vertex count + edge count.
		headerN, _ = strconv.Atoi(parts[0])
		m, _ := strconv.Atoi(parts[1])
		err = rd.readEdges(clampCount(m))

	case len(parts) == 1 && isInt(parts[0]):
		// "m": edge count only.
		m, _ := strconv.Atoi(parts[0])
		err = rd.readEdges(clampCount(m))

	case len(parts) == 2:
		// "u v": the header is already the first edge; read to EOF.
		rd.addEdge(parts[0], parts[1])
		err = rd.readEdges(-1)

	default:
		return nil, nil, ErrBadHeader
	}
	if err != nil {
		return nil, nil, err
	}

	// Stage 3: a vertex-count-only input means isolated vertices.
	if len(rd.labels) == 0 && headerN >= 0 {
		for i := 0; i < headerN; i++ {
			rd.labels[strconv.Itoa(i)] = struct{}{}
		}
	}
	if len(rd.labels) == 0 {
		return emptyGraph()
	}

	return rd.build()
}

// readEdges consumes up to max edge lines (max < 0 means until EOF).
// Only lines with exactly two tokens count toward max; blank and
// malformed lines are skipped, matching the format's tolerance.
func (rd *reader) readEdges(max int) error {
	var taken int
	for (max < 0 || taken < max) && rd.sc.Scan() {
		line := strings.TrimSpace(rd.sc.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) != 2 {
			continue
		}
		rd.addEdge(tokens[0], tokens[1])
		taken++
	}

	return pkgerrors.Wrap(rd.sc.Err(), "graphio: reading edges")
}

// addEdge registers an edge by label, discarding self-loops before the
// labels are recorded (a vertex appearing only in self-loops does not
// exist in this format).
func (rd *reader) addEdge(u, v string) {
	if u == v {
		return
	}
	rd.labels[u] = struct{}{}
	rd.labels[v] = struct{}{}
	rd.edges = append(rd.edges, labeledEdge{u: u, v: v})
}

// build maps labels to dense ids in canonical order and constructs the
// immutable graph.
func (rd *reader) build() (*core.Graph, []string, error) {
	var (
		labels = make([]string, 0, len(rd.labels))
		l      string
	)
	for l = range rd.labels {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labeling.Compare(labels[i], labels[j]) < 0
	})

	var (
		index = make(map[string]int, len(labels))
		i     int
	)
	for i, l = range labels {
		index[l] = i
	}

	var (
		edges = make([]core.Edge, 0, len(rd.edges))
		le    labeledEdge
	)
	for _, le = range rd.edges {
		edges = append(edges, core.Edge{U: index[le.u], V: index[le.v]})
	}

	g, err := core.Build(len(labels), edges)
	if err != nil {
		return nil, nil, err
	}

	return g, labels, nil
}

// emptyGraph is the canonical zero-vertex result.
func emptyGraph() (*core.Graph, []string, error) {
	g, err := core.Build(0, nil)
	if err != nil {
		return nil, nil, err
	}

	return g, []string{}, nil
}

// isInt reports whether s parses as a (possibly negative) base-10 int.
func isInt(s string) bool {
	_, err := strconv.Atoi(s)

	return err == nil
}

// clampCount maps a declared negative count to zero; readEdges reserves
// negative values for "until EOF".
func clampCount(m int) int {
	if m < 0 {
		return 0
	}

	return m
}
