// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex catalog queries and AddVertex.
// Determinism:
//   - Vertices() is always ascending; a new vertex always receives id == VertexCount().

package core

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// Vertices returns the vertex identifiers 0..n-1 in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, g.n)
	for v := range out {
		out[v] = v
	}

	return out
}

// HasVertex reports whether v is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inRange(v)
}

// AddVertex appends an isolated vertex and returns its identifier, which is
// always the previous VertexCount().
// Complexity: O(1) amortized; O(V²/64) when the row capacity doubles.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.n == len(g.adj) {
		g.alloc(capacityFor(g.n + 1))
	}
	id := g.n
	g.n++

	return id
}
