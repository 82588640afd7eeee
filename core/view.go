// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Derived graphs (complement, induced subgraph). The input graph is never mutated.

package core

import (
	"fmt"
	"sort"
)

// Complement returns a new graph on the same vertices in which {u,v} (u≠v) is an
// edge exactly when it is not an edge of g.
// Complexity: O(V²).
func (g *Graph) Complement() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph(g.n)
	for u := 0; u < g.n; u++ {
		for v := u + 1; v < g.n; v++ {
			if g.adj[u].Bit(v) == 0 {
				out.link(u, v)
			}
		}
	}

	return out
}

// InducedSubgraph returns the subgraph induced by keep, relabelled so that the
// i-th smallest kept vertex becomes vertex i. Duplicates in keep are ignored.
// Returns ErrVertexOutOfRange if keep names a vertex outside g.
// Complexity: O(k²) for k kept vertices, plus O(k log k) to order them.
func (g *Graph) InducedSubgraph(keep []int) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(keep))
	seen := make(map[int]struct{}, len(keep))
	for _, v := range keep {
		if err := g.checkVertex(v); err != nil {
			return nil, fmt.Errorf("InducedSubgraph: %w", err)
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		ids = append(ids, v)
	}
	sort.Ints(ids)

	out := NewGraph(len(ids))
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if g.adj[ids[i]].Bit(ids[j]) == 1 {
				out.link(i, j)
			}
		}
	}

	return out, nil
}
