// Package core - graph construction and read-only accessors.
package core

import "sort"

// Build constructs an immutable simple undirected graph from a declared
// vertex count and an edge list.
//
// Contract:
//   - vertexCount must be ≥ 0, otherwise ErrNegativeCount.
//   - Every edge endpoint must lie in [0, vertexCount), otherwise
//     ErrInvalidEdge (the only rejection point for malformed input).
//   - Self-loops (U == V) are silently discarded.
//   - Parallel edges are deduplicated; the stored graph is simple.
//
// Complexity: O(V + E log E) time, O(V + E) memory.
func Build(vertexCount int, edges []Edge) (*Graph, error) {
	if vertexCount < 0 {
		return nil, ErrNegativeCount
	}

	// Stage 1: validate endpoints before touching any storage.
	var e Edge
	for _, e = range edges {
		if e.U < 0 || e.U >= vertexCount || e.V < 0 || e.V >= vertexCount {
			return nil, ErrInvalidEdge
		}
	}

	// Stage 2: collect distinct neighbor sets, skipping self-loops.
	var (
		seen = make([]map[Vertex]struct{}, vertexCount)
		m    int
	)
	for _, e = range edges {
		if e.U == e.V {
			continue // self-loop: not representable in a simple graph
		}
		if seen[e.U] == nil {
			seen[e.U] = make(map[Vertex]struct{})
		}
		if seen[e.V] == nil {
			seen[e.V] = make(map[Vertex]struct{})
		}
		if _, dup := seen[e.U][e.V]; dup {
			continue // parallel edge: keep the first occurrence only
		}
		seen[e.U][e.V] = struct{}{}
		seen[e.V][e.U] = struct{}{}
		m++
	}

	// Stage 3: freeze neighbor sets into sorted slices.
	var (
		adj = make([][]Vertex, vertexCount)
		v   Vertex
		u   Vertex
	)
	for v = 0; v < vertexCount; v++ {
		if len(seen[v]) == 0 {
			continue // isolated vertex: nil neighbor list is fine
		}
		row := make([]Vertex, 0, len(seen[v]))
		for u = range seen[v] {
			row = append(row, u)
		}
		sort.Ints(row)
		adj[v] = row
	}

	return &Graph{n: vertexCount, m: m, adj: adj}, nil
}

// VertexCount returns the number of vertices n.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of distinct undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.m }

// Degree returns the number of distinct neighbors of v.
// Out-of-range vertices have degree 0.
// Complexity: O(1).
func (g *Graph) Degree(v Vertex) int {
	if v < 0 || v >= g.n {
		return 0
	}

	return len(g.adj[v])
}

// Neighbors returns the distinct neighbors of v, sorted ascending.
// The returned slice is a copy; callers may mutate it freely.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v Vertex) []Vertex {
	if v < 0 || v >= g.n || len(g.adj[v]) == 0 {
		return nil
	}

	return append([]Vertex(nil), g.adj[v]...)
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(log deg(u)).
func (g *Graph) HasEdge(u, v Vertex) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n || u == v {
		return false
	}
	row := g.adj[u]
	i := sort.SearchInts(row, v)

	return i < len(row) && row[i] == v
}

// AdjacencyView returns the internal neighbor lists without copying,
// so solver hot loops can avoid the defensive copy in Neighbors.
// The returned slices MUST be treated as read-only.
func (g *Graph) AdjacencyView() [][]Vertex { return g.adj }
