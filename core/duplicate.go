// SPDX-License-Identifier: MIT
//
// File: duplicate.go
// Role: Vertex duplication operator.
//
// The duplicate u of v is joined to every neighbour of v and to v itself, so
// v and u end up adjacent with N(u)\{v} == N(v)\{u}. This is the edge-linked
// duplication; it is not the same relation as the non-adjacent twin test in
// package twins, even though duplicated pairs satisfy that test.

package core

import "fmt"

// DuplicateVertex returns a copy of g extended by one vertex u = g.VertexCount()
// with N(u) = N(v) ∪ {v}. g itself is not modified.
// The edge count grows by deg(v)+1 and the vertex count by exactly one.
//
// Returns ErrGraphNil or ErrVertexOutOfRange.
// Complexity: O(V²/64) for the copy plus O(deg(v)).
func DuplicateVertex(g *Graph, v int) (*Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	nbrs, err := g.Neighbors(v)
	if err != nil {
		return nil, fmt.Errorf("DuplicateVertex: %w", err)
	}

	h := g.Clone()
	u := h.AddVertex()
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, w := range nbrs {
		h.link(u, w)
	}
	h.link(u, v)

	return h, nil
}

// DuplicateVertices applies DuplicateVertex for each entry of vs in order.
// Each entry refers to the graph produced by the previous step, so freshly
// created vertices may themselves be duplicated.
func DuplicateVertices(g *Graph, vs ...int) (*Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cur := g
	for i, v := range vs {
		next, err := DuplicateVertex(cur, v)
		if err != nil {
			return nil, fmt.Errorf("DuplicateVertices: step %d: %w", i, err)
		}
		cur = next
	}
	if cur == g {
		return g.Clone(), nil
	}

	return cur, nil
}
