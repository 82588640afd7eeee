// SPDX-License-Identifier: MIT

// Package coloring decides exactly whether a core.Graph admits a proper
// colouring with at most three colours.
//
// The search is plain backtracking: vertices are taken in order of decreasing
// degree (ties by id), each is given the first colour not used by an already
// coloured neighbour, and exhaustion backtracks. Colour classes are
// interchangeable, so a vertex may only open the next unused colour; this
// removes the 3! relabellings of every partial colouring without changing the
// answer. The first complete assignment ends the search.
//
// Long searches can be bounded with WithContext and WithMaxSteps; an abandoned
// search reports ErrInconclusive instead of an answer.
package coloring

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/primegraph/core"
)

// uncolored marks a vertex without an assigned colour.
const uncolored = -1

// searcher holds the mutable state of one search. It is owned by a single call.
type searcher struct {
	adj      [][]int
	order    []int
	colors   []int
	ctx      context.Context
	maxSteps int
	steps    int
}

// ThreeColorable reports whether g's chromatic number is at most 3.
// Graphs with no vertices or no edges are trivially colourable.
func ThreeColorable(g *core.Graph, opts ...Option) (bool, error) {
	res, err := Find(g, opts...)
	if err != nil {
		return false, err
	}
	return res.Colorable, nil
}

// Find runs the search and returns a witness colouring when one exists.
// Returns ErrGraphNil, ErrOptionViolation, or ErrInconclusive joined with
// ErrStepLimit / the context error when the search is abandoned.
func Find(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := newSearcher(g.AdjacencyLists(), o)
	ok, err := s.assign(0, 0)
	if err != nil {
		return nil, err
	}
	res := &Result{Colorable: ok, Steps: s.steps}
	if ok {
		res.Colors = s.colors
	}

	return res, nil
}

// Verify reports whether colors is a proper colouring of g with values in 0..MaxColors-1.
func Verify(g *core.Graph, colors []int) bool {
	if g == nil || len(colors) != g.VertexCount() {
		return false
	}
	for _, c := range colors {
		if c < 0 || c >= MaxColors {
			return false
		}
	}
	for _, e := range g.Edges() {
		if colors[e.U] == colors[e.V] {
			return false
		}
	}
	return true
}

// newSearcher orders vertices by decreasing degree and clears the colouring.
func newSearcher(adj [][]int, o Options) *searcher {
	n := len(adj)
	order := make([]int, n)
	colors := make([]int, n)
	for v := range order {
		order[v] = v
		colors[v] = uncolored
	}
	sort.SliceStable(order, func(i, j int) bool {
		return len(adj[order[i]]) > len(adj[order[j]])
	})

	return &searcher{
		adj:      adj,
		order:    order,
		colors:   colors,
		ctx:      o.Ctx,
		maxSteps: o.MaxSteps,
	}
}

// assign colours order[i:] given that colours 0..used-1 are already in play.
func (s *searcher) assign(i, used int) (bool, error) {
	if i == len(s.order) {
		return true, nil
	}
	v := s.order[i]
	limit := used + 1
	if limit > MaxColors {
		limit = MaxColors
	}
	for c := 0; c < limit; c++ {
		if err := s.tick(); err != nil {
			return false, err
		}
		if s.conflicts(v, c) {
			continue
		}
		s.colors[v] = c
		next := used
		if c == used {
			next++
		}
		ok, err := s.assign(i+1, next)
		if err != nil || ok {
			return ok, err
		}
		s.colors[v] = uncolored
	}

	return false, nil
}

// conflicts reports whether a coloured neighbour of v already has colour c.
func (s *searcher) conflicts(v, c int) bool {
	for _, w := range s.adj[v] {
		if s.colors[w] == c {
			return true
		}
	}
	return false
}

// tick counts one step and polls the budget and the context.
func (s *searcher) tick() error {
	s.steps++
	if s.maxSteps > 0 && s.steps > s.maxSteps {
		return fmt.Errorf("%w: %w (%d)", ErrInconclusive, ErrStepLimit, s.maxSteps)
	}
	select {
	case <-s.ctx.Done():
		return fmt.Errorf("%w: %w", ErrInconclusive, s.ctx.Err())
	default:
	}
	return nil
}
