// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/primegraph/core"
)

// walker holds the state of one traversal over a row snapshot.
type walker struct {
	rows  []bits.Bits
	ctx   context.Context
	queue []int
	res   *Result
}

// BFS visits every vertex reachable from start in non-decreasing distance.
// Neighbours are enqueued in ascending order, so the visit order is reproducible.
// Returns ErrGraphNil, ErrStartVertexNotFound, or ctx.Err() on cancellation.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)
	rows := snapshot(g)
	if start < 0 || start >= len(rows) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	return newWalker(o.Ctx, rows).run(start)
}

// IsConnected reports whether every vertex of g is reachable from vertex 0.
// Graphs with zero or one vertex are connected.
// Returns ErrGraphNil, or ctx.Err() when the traversal is cancelled.
func IsConnected(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o := resolve(opts)
	rows := snapshot(g)
	if len(rows) <= 1 {
		return true, nil
	}
	res, err := newWalker(o.Ctx, rows).run(0)
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(rows), nil
}

// Components partitions the vertices of g into connected components.
// Components are ordered by their smallest vertex; each is ascending.
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)
	rows := snapshot(g)
	seen := bits.New(len(rows))
	var comps [][]int
	for v := seen.ZeroFrom(0); v >= 0; v = seen.ZeroFrom(v + 1) {
		res, err := newWalker(o.Ctx, rows).run(v)
		if err != nil {
			return nil, err
		}
		comp := make([]int, 0, len(res.Order))
		for u := range rows {
			if res.Reached(u) {
				seen.SetBit(u, 1)
				comp = append(comp, u)
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// snapshot copies every adjacency row once; the walk never touches g's lock again.
func snapshot(g *core.Graph) []bits.Bits {
	rows := make([]bits.Bits, g.VertexCount())
	for v := range rows {
		rows[v], _ = g.NeighborSet(v)
	}
	return rows
}

func newWalker(ctx context.Context, rows []bits.Bits) *walker {
	n := len(rows)
	w := &walker{
		rows:  rows,
		ctx:   ctx,
		queue: make([]int, 0, n),
		res:   &Result{Order: make([]int, 0, n), Depth: make([]int, n)},
	}
	for v := range w.res.Depth {
		w.res.Depth[v] = unreached
	}
	return w
}

// run seeds the queue with start and drains it.
func (w *walker) run(start int) (*Result, error) {
	w.enqueue(start, 0)
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		v := w.queue[head]
		w.res.Order = append(w.res.Order, v)
		next := w.res.Depth[v] + 1
		w.rows[v].IterateOnes(func(u int) bool {
			if w.res.Depth[u] == unreached {
				w.enqueue(u, next)
			}
			return true
		})
	}

	return w.res, nil
}

// enqueue marks v discovered at depth d.
func (w *walker) enqueue(v, d int) {
	w.res.Depth[v] = d
	w.queue = append(w.queue, v)
}
