// Package bound provides independent lower-bound estimators for the
// chromatic number. These are advisory inputs: the exact search in the
// chromatic package is correct without them, but a trusted lower bound
// lets it stop as soon as the incumbent provably cannot be beaten
// (chromatic.WithLowerBound).
//
// Hoffman bound:
//
//	For a graph with at least one edge, the adjacency spectrum gives
//
//	    χ(G) ≥ 1 + λmax / |λmin|
//
//	where λmax and λmin are the largest and smallest adjacency
//	eigenvalues. The bound is tight on complete graphs (χ(K_n) = n)
//	and complete bipartite graphs (= 2), and for example certifies
//	χ(C5) ≥ 3 — something no clique argument can.
//
// Eigenvalues are computed with the classical Jacobi rotation method
// on the dense symmetric adjacency matrix: numerically robust, no
// external linear-algebra dependency, and entirely adequate for the
// instance sizes an exact NP-hard search can handle anyway.
//
// Complexity: O(n³) per sweep, O(n²) memory — dwarfed by the search
// the bound assists.
//
// Errors (sentinel):
//
//	– ErrNilGraph    if g is nil.
//	– ErrEigenFailed if Jacobi fails to converge (not expected for the
//	  bounded symmetric matrices arising here).
package bound
