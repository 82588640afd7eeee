// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies and structural equality.
// Concurrency:
//   - Read lock on the source only; the result is a fresh, unshared instance.

package core

// Clone returns a deep, independent copy of g.
// Complexity: O(V²/64).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{n: g.n, edges: g.edges}
	out.alloc(capacityFor(g.n))
	for v := 0; v < g.n; v++ {
		row := out.adj[v]
		g.adj[v].IterateOnes(func(w int) bool {
			row.SetBit(w, 1)
			return true
		})
	}

	return out
}

// Equal reports whether g and other have the same vertex count and edge set.
// Complexity: O(V²/64).
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	if other == nil {
		return false
	}
	a, b := g.AdjacencyLists(), other.AdjacencyLists()
	if len(a) != len(b) {
		return false
	}
	for v := range a {
		if len(a[v]) != len(b[v]) {
			return false
		}
		for i := range a[v] {
			if a[v][i] != b[v][i] {
				return false
			}
		}
	}

	return true
}
