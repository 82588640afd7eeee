// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, sentinel errors and constructors.
// Policy:
//   - Vertices are the contiguous integers 0..n-1; there is no vertex removal.
//   - Adjacency rows are bit sets sized to an internal capacity; bits at or above n are always 0.
//   - One RWMutex guards the whole structure. Algorithms own their own copies (Clone/Complement).

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/soniakeys/bits"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex argument outside 0..VertexCount()-1.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates an attempt to connect a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates RemoveEdge was asked to delete an absent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNonContiguous indicates a vertex labelling that is not 0..k-1 where the
	// identifier scheme requires it.
	ErrNonContiguous = errors.New("core: vertex labelling is not contiguous")

	// ErrGraphNil is returned by package-level helpers receiving a nil graph.
	ErrGraphNil = errors.New("core: graph is nil")
)

// minCapacity is the smallest row width allocated for a non-empty graph.
const minCapacity = 8

// Edge is an unordered vertex pair stored with U < V.
type Edge struct {
	U int
	V int
}

// NewEdge returns the normalized Edge for the pair {u, v}.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

// String renders the edge as "u-v".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.U, e.V)
}

// Graph is a finite simple undirected graph on the vertices 0..n-1.
//
// adj[v] holds the open neighbourhood of v. Every row has Num == capacity,
// so AddVertex only reallocates when the capacity is exhausted.
type Graph struct {
	mu sync.RWMutex // guards n, edges and adj

	n     int         // vertex count
	edges int         // edge count
	adj   []bits.Bits // adj[v] = N(v)
}

// NewGraph creates an edgeless graph with n vertices. A negative n is treated as 0.
// Complexity: O(n²/64) words of storage.
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{n: n}
	g.alloc(capacityFor(n))

	return g
}

// FromEdges creates a graph with n vertices and the given edges.
// Repeated pairs are accepted once; loops and out-of-range endpoints are rejected.
func FromEdges(n int, edges []Edge) (*Graph, error) {
	g := NewGraph(n)
	for _, e := range edges {
		if err := g.validatePair(e.U, e.V); err != nil {
			return nil, fmt.Errorf("FromEdges(%s): %w", e, err)
		}
		g.link(e.U, e.V)
	}

	return g, nil
}

// FromAdjacency creates a graph from a vertex → neighbours map. The keys must be
// exactly 0..len(adj)-1 (ErrNonContiguous otherwise); every listed neighbour must
// itself be a key. Asymmetric listings are symmetrized.
func FromAdjacency(adj map[int][]int) (*Graph, error) {
	n := len(adj)
	for v := 0; v < n; v++ {
		if _, ok := adj[v]; !ok {
			return nil, fmt.Errorf("FromAdjacency: vertex %d missing among %d keys: %w", v, n, ErrNonContiguous)
		}
	}
	g := NewGraph(n)
	for v := 0; v < n; v++ {
		for _, w := range adj[v] {
			if err := g.validatePair(v, w); err != nil {
				return nil, fmt.Errorf("FromAdjacency(%d→%d): %w", v, w, err)
			}
			g.link(v, w)
		}
	}

	return g, nil
}

// capacityFor returns the row width to allocate for n vertices.
func capacityFor(n int) int {
	c := minCapacity
	for c < n {
		c <<= 1
	}
	return c
}

// alloc (re)allocates rows with the given capacity, keeping existing adjacency.
// Caller holds the write lock or owns g exclusively.
func (g *Graph) alloc(capacity int) {
	rows := make([]bits.Bits, capacity)
	for v := range rows {
		rows[v] = bits.New(capacity)
	}
	for v := 0; v < len(g.adj) && v < capacity; v++ {
		row := rows[v]
		g.adj[v].IterateOnes(func(w int) bool {
			row.SetBit(w, 1)
			return true
		})
	}
	g.adj = rows
}

// inRange reports whether v is a vertex of g. Caller holds a lock.
func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < g.n
}

// checkVertex wraps ErrVertexOutOfRange with the offending value. Caller holds a lock.
func (g *Graph) checkVertex(v int) error {
	if !g.inRange(v) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.n)
	}
	return nil
}

// validatePair checks both endpoints and rejects loops. Caller holds a lock.
func (g *Graph) validatePair(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, v)
	}
	return nil
}

// link sets {u,v} if absent. Caller holds the write lock and has validated the pair.
func (g *Graph) link(u, v int) bool {
	if g.adj[u].Bit(v) == 1 {
		return false
	}
	g.adj[u].SetBit(v, 1)
	g.adj[v].SetBit(u, 1)
	g.edges++

	return true
}

// unlink clears {u,v} if present. Caller holds the write lock and has validated the pair.
func (g *Graph) unlink(u, v int) bool {
	if g.adj[u].Bit(v) == 0 {
		return false
	}
	g.adj[u].SetBit(v, 0)
	g.adj[v].SetBit(u, 0)
	g.edges--

	return true
}
