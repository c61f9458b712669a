// Package graphio reads undirected graphs from the plain-text edge-list
// format and normalizes them into the core model: external labels are
// mapped to dense integer ids in canonical label order (see labeling).
//
// Accepted formats, decided by the first non-empty line:
//
//	n m            two integers: vertex count and edge count; the next
//	               m edge lines follow ("5 4").
//	m              one integer: edge count only; vertices are implied
//	               by the edges ("4").
//	u v            two non-numeric tokens: treated as the first edge;
//	               every remaining line is an edge until EOF.
//
// Edge lines contain exactly two whitespace-separated labels. Blank
// lines and lines with any other token count are skipped. Self-loops
// (u == u) are dropped before the labels are even registered, matching
// the upstream normalization contract. Duplicate edges are fine — the
// core model deduplicates.
//
// When the header declares n vertices but no edge mentions any label,
// the graph consists of isolated vertices labeled "0".."n-1".
//
// Lines up to 1 MiB are accepted; anything longer fails the read with a
// wrapped bufio.ErrTooLong (well-formed lines are two short tokens, so
// the cap only matters for pathological input).
//
// Errors:
//
//	– ErrBadHeader for an unrecognizable first line.
//	– I/O failures are wrapped with context via pkg/errors.
//	– core.Build sentinels pass through unchanged.
package graphio
