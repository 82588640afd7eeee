// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle (AddEdge/RemoveEdge) and edge catalog queries.
// Policy:
//   - AddEdge is idempotent for an existing pair.
//   - RemoveEdge of an absent pair always reports ErrEdgeNotFound.
//   - Out-of-range endpoints always report ErrVertexOutOfRange; nothing is mutated.

package core

import "fmt"

// AddEdge inserts the undirected edge {u,v}.
// Returns ErrVertexOutOfRange or ErrLoopNotAllowed; adding an existing edge is a no-op.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.validatePair(u, v); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, err)
	}
	g.link(u, v)

	return nil
}

// RemoveEdge deletes the undirected edge {u,v}.
// Returns ErrVertexOutOfRange, ErrLoopNotAllowed, or ErrEdgeNotFound if the edge is absent.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.validatePair(u, v); err != nil {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, err)
	}
	if !g.unlink(u, v) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}

	return nil
}

// HasEdge reports whether {u,v} is an edge.
// Returns ErrVertexOutOfRange for an endpoint outside the vertex set.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(u); err != nil {
		return false, fmt.Errorf("HasEdge(%d,%d): %w", u, v, err)
	}
	if err := g.checkVertex(v); err != nil {
		return false, fmt.Errorf("HasEdge(%d,%d): %w", u, v, err)
	}

	return g.adj[u].Bit(v) == 1, nil
}

// Adjacent is the unchecked form of HasEdge used by search loops that only
// ever pass vertices of g. Out-of-range arguments are simply not adjacent.
// Complexity: O(1).
func (g *Graph) Adjacent(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	return g.adj[u].Bit(v) == 1
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns every edge once, as U<V pairs in lexicographic order.
// Complexity: O(V²/64 + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for u := 0; u < g.n; u++ {
		g.adj[u].IterateOnes(func(v int) bool {
			if v > u {
				out = append(out, Edge{U: u, V: v})
			}
			return true
		})
	}

	return out
}
