// SPDX-License-Identifier: MIT

// Package triangle decides whether a core.Graph contains a 3-clique.
//
// For every edge {u,v} with u<v the search intersects N(u) and N(v); any common
// neighbour closes a triangle. The cost is O(E·V), exact for every input.
package triangle

import (
	"errors"
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/primegraph/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("triangle: graph is nil")

// IsTriangleFree reports whether g has no three mutually adjacent vertices.
// Returns ErrGraphNil for a nil graph.
func IsTriangleFree(g *core.Graph) (bool, error) {
	_, found, err := FindTriangle(g)
	if err != nil {
		return false, err
	}
	return !found, nil
}

// FindTriangle returns a witness triangle a<b<c when one exists.
// The witness is deterministic: the scan takes edges {u,v} in lexicographic
// order and the smallest common neighbour of the first edge that has one.
func FindTriangle(g *core.Graph) (tri [3]int, found bool, err error) {
	if g == nil {
		return tri, false, ErrGraphNil
	}
	rows := snapshot(g)
	for u := range rows {
		var (
			hitV, hitW int
			hit        bool
		)
		rows[u].IterateOnes(func(v int) bool {
			if v <= u {
				return true
			}
			if w, ok := common(rows[u], rows[v]); ok {
				hitV, hitW, hit = v, w, true
				return false
			}
			return true
		})
		if hit {
			return sort3(u, hitV, hitW), true, nil
		}
	}

	return tri, false, nil
}

// ClosesTriangle reports whether u and v share a neighbour in g, i.e. whether
// inserting {u,v} into g would create a triangle. On a triangle-free g this is
// exactly the question "is g+{u,v} still triangle-free?".
// Returns ErrGraphNil, or core.ErrVertexOutOfRange for a vertex outside g.
func ClosesTriangle(g *core.Graph, u, v int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	nu, err := g.NeighborSet(u)
	if err != nil {
		return false, fmt.Errorf("triangle: %w", err)
	}
	nv, err := g.NeighborSet(v)
	if err != nil {
		return false, fmt.Errorf("triangle: %w", err)
	}
	_, ok := common(nu, nv)

	return ok, nil
}

// snapshot copies every adjacency row once so the scan runs without locking.
func snapshot(g *core.Graph) []bits.Bits {
	n := g.VertexCount()
	rows := make([]bits.Bits, n)
	for v := range rows {
		rows[v], _ = g.NeighborSet(v)
	}
	return rows
}

// common returns the smallest vertex present in both x and y.
func common(x, y bits.Bits) (int, bool) {
	w := -1
	x.IterateOnes(func(i int) bool {
		if y.Bit(i) == 1 {
			w = i
			return false
		}
		return true
	})

	return w, w >= 0
}

// sort3 orders three distinct vertices ascending.
func sort3(a, b, c int) [3]int {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}
