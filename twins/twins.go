// SPDX-License-Identifier: MIT

// Package twins finds twin vertices and decides whether a graph is a base graph.
//
// Two distinct vertices u and v are twins when N(u)\{v} == N(v)\{u}: their
// neighbourhoods agree once each is trimmed of the other. The relation ignores
// whether u and v are themselves adjacent. A base graph has no twin pair.
//
// Every unordered pair is tested once (u<v), so each twin pair is reported
// exactly once. Cost: O(V²) pairs × O(V) comparison.
package twins

import (
	"errors"
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/primegraph/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("twins: graph is nil")

// Pair is one twin pair, U < V, together with their shared trimmed neighbourhood.
type Pair struct {
	U         int
	V         int
	Neighbors []int
}

// String renders the pair as "u~v [n1 n2 ...]".
func (p Pair) String() string {
	return fmt.Sprintf("%d~%d %v", p.U, p.V, p.Neighbors)
}

// IsBaseGraph reports whether g has no twin pair. It stops at the first twin found.
// Returns ErrGraphNil for a nil graph.
func IsBaseGraph(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	rows := snapshot(g)
	for u := range rows {
		for v := u + 1; v < len(rows); v++ {
			if trimmedEqual(rows, u, v) {
				return false, nil
			}
		}
	}
	return true, nil
}

// Twins lists every twin pair of g in lexicographic (U, V) order. It never
// short-circuits; an empty result means g is a base graph.
// Returns ErrGraphNil for a nil graph.
func Twins(g *core.Graph) ([]Pair, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	rows := snapshot(g)
	var out []Pair
	for u := range rows {
		for v := u + 1; v < len(rows); v++ {
			if !trimmedEqual(rows, u, v) {
				continue
			}
			out = append(out, Pair{U: u, V: v, Neighbors: trimmed(rows[u], v)})
		}
	}

	return out, nil
}

// AreTwins reports whether u and v are twins in g.
// Returns ErrGraphNil, or core.ErrVertexOutOfRange for a vertex outside g.
// A vertex is never its own twin.
func AreTwins(g *core.Graph, u, v int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if _, err := g.Degree(u); err != nil {
		return false, fmt.Errorf("twins: %w", err)
	}
	if _, err := g.Degree(v); err != nil {
		return false, fmt.Errorf("twins: %w", err)
	}
	if u == v {
		return false, nil
	}

	return trimmedEqual(snapshot(g), u, v), nil
}

// snapshot copies every adjacency row once.
func snapshot(g *core.Graph) []bits.Bits {
	rows := make([]bits.Bits, g.VertexCount())
	for v := range rows {
		rows[v], _ = g.NeighborSet(v)
	}
	return rows
}

// trimmedEqual compares N(u)\{v} with N(v)\{u}.
func trimmedEqual(rows []bits.Bits, u, v int) bool {
	for w := range rows {
		if w == u || w == v {
			continue
		}
		if rows[u].Bit(w) != rows[v].Bit(w) {
			return false
		}
	}
	return true
}

// trimmed lists row without the vertex skip, ascending.
func trimmed(row bits.Bits, skip int) []int {
	out := []int{}
	row.IterateOnes(func(w int) bool {
		if w != skip {
			out = append(out, w)
		}
		return true
	})
	return out
}
