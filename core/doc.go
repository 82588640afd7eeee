// SPDX-License-Identifier: MIT

// Package core provides the finite simple undirected Graph used by every
// predicate in primegraph.
//
// Vertices are the contiguous integers 0..n-1. Each vertex owns a bit-set
// adjacency row (github.com/soniakeys/bits), which keeps HasEdge, AddEdge and
// RemoveEdge O(1) and makes Complement a straight O(V²) sweep.
//
// What
//
//   - Construction: NewGraph(n), FromEdges(n, edges), FromAdjacency(map).
//   - Queries: VertexCount, Vertices, Neighbors, NeighborSet, Degree, HasEdge,
//     Adjacent, Edges, EdgeCount, AdjacencyLists.
//   - Mutation: AddVertex, AddEdge, RemoveEdge.
//   - Derived graphs: Complement, Clone, InducedSubgraph, DuplicateVertex.
//
// Errors
//
//	ErrVertexOutOfRange - a vertex argument is not in 0..n-1.
//	ErrLoopNotAllowed   - u == v on an edge operation.
//	ErrEdgeNotFound     - RemoveEdge on an absent edge.
//	ErrNonContiguous    - FromAdjacency keys are not 0..k-1.
//	ErrGraphNil         - nil graph passed to a package-level helper.
//
// Concurrency
//
//	A single sync.RWMutex guards each Graph. Derived graphs are fresh values
//	owned by the caller, so independent goroutines may each build and test
//	their own graphs with no shared state.
//
// Usage
//
//	g, err := core.FromEdges(5, []core.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4}})
//	h := g.Complement()           // another 5-cycle
//	d, err := core.DuplicateVertex(g, 0)
package core
