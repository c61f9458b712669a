// Package core - graph model types and sentinel errors.
//
// This file declares Vertex, Edge, Graph and the construction errors.
// The Graph representation is deliberately minimal: sorted adjacency
// slices indexed by vertex, so solvers can walk neighborhoods without
// map iteration order ever leaking into results.
package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNegativeCount indicates a negative vertex count was passed to Build.
	ErrNegativeCount = errors.New("core: vertex count must be non-negative")

	// ErrInvalidEdge indicates an edge endpoint outside the declared range [0, n).
	ErrInvalidEdge = errors.New("core: edge endpoint out of range")
)

// Vertex is a dense integer vertex identifier in [0, n).
type Vertex = int

// Edge is an undirected edge between two vertices.
// Orientation of U/V carries no meaning; Build stores both directions.
type Edge struct {
	// U is one endpoint.
	U Vertex

	// V is the other endpoint.
	V Vertex
}

// Graph is the immutable, undirected adjacency structure.
//
// All fields are private and never mutated after Build returns, so a
// single *Graph may be shared freely across solvers and goroutines.
type Graph struct {
	// n is the number of vertices.
	n int

	// m is the number of distinct undirected edges (after dedup).
	m int

	// adj[v] lists the distinct neighbors of v, sorted ascending.
	adj [][]Vertex
}
