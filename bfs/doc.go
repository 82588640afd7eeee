// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph and the
// connectivity checks built on it.
//
// What
//
//   - BFS visits vertices in non-decreasing distance from a start vertex and
//     returns the visit Order and per-vertex Depth (-1 if unreached).
//   - IsConnected is the connectivity step of the prime-graph predicates.
//   - Components lists connected components; the CLI reports them for
//     disconnected inputs.
//
// Determinism
//
//	Neighbours are taken from the adjacency bit rows in ascending order, so the
//	visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|)
//
//   - Time:   O(V²/64) per traversal over bit rows
//   - Memory: O(V²/64) for the row snapshot
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	ok, err := bfs.IsConnected(g, bfs.WithContext(ctx))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ctx.Err()               on cancellation.
package bfs
