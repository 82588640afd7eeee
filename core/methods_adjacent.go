// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighbourhood queries.
// Determinism:
//   - Neighbors() is ascending. NeighborSet() is a private copy the caller may mutate.

package core

import (
	"fmt"

	"github.com/soniakeys/bits"
)

// Neighbors returns the open neighbourhood of v in ascending order.
// Returns ErrVertexOutOfRange if v is not a vertex.
// Complexity: O(V/64 + deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(v); err != nil {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, err)
	}

	return ones(g.adj[v]), nil
}

// NeighborSet returns a copy of v's neighbourhood as a bit set of width VertexCount().
// Returns ErrVertexOutOfRange if v is not a vertex.
// Complexity: O(V).
func (g *Graph) NeighborSet(v int) (bits.Bits, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(v); err != nil {
		return bits.Bits{}, fmt.Errorf("NeighborSet(%d): %w", v, err)
	}

	return g.rowCopy(v), nil
}

// Degree returns |N(v)|.
// Returns ErrVertexOutOfRange if v is not a vertex.
// Complexity: O(V/64).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(v); err != nil {
		return 0, fmt.Errorf("Degree(%d): %w", v, err)
	}

	return g.adj[v].OnesCount(), nil
}

// AdjacencyLists returns N(v) for every vertex, indexed by vertex.
// Search code snapshots the graph once with this and then runs lock-free.
// Complexity: O(V²/64 + E).
func (g *Graph) AdjacencyLists() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, g.n)
	for v := range out {
		out[v] = ones(g.adj[v])
	}

	return out
}

// rowCopy copies adj[v] into a fresh set of width n. Caller holds a lock.
func (g *Graph) rowCopy(v int) bits.Bits {
	out := bits.New(g.n)
	g.adj[v].IterateOnes(func(w int) bool {
		out.SetBit(w, 1)
		return true
	})

	return out
}

// ones lists the set bits of b in ascending order; never nil.
func ones(b bits.Bits) []int {
	out := make([]int, 0, b.OnesCount())
	b.IterateOnes(func(w int) bool {
		out = append(out, w)
		return true
	})

	return out
}
