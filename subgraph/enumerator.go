// SPDX-License-Identifier: MIT

// Package subgraph enumerates the connected induced subgraphs of a fixed order.
//
// The enumeration is ESU (Wernicke, 2006). Every connected k-vertex set S is
// grown from its smallest vertex r; a vertex joins the extension set only when
// it exceeds r and lies outside the closed neighbourhood of the set built so
// far. Under those two rules each S has exactly one derivation, so the output
// needs no deduplication.
//
// The Enumerator is lazy: Next yields one vertex set at a time from an explicit
// frame stack, so peak memory is O(k) frames of O(V) bits regardless of how
// many subgraphs exist.
package subgraph

import (
	"context"
	"fmt"
	"sort"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/primegraph/core"
)

// frame is one node of the ESU search tree.
type frame struct {
	root   int       // smallest vertex of every set grown from this frame
	sub    []int     // current vertex set
	ext    bits.Bits // extension candidates, consumed in ascending order
	closed bits.Bits // sub ∪ N(sub)
}

// Enumerator produces the connected induced k-vertex subsets of a graph.
// It is not safe for concurrent use; create one per goroutine.
type Enumerator struct {
	rows     []bits.Bits
	k        int
	root     int
	stack    *arraystack.Stack
	ctx      context.Context
	max      int
	produced int
	err      error
	done     bool
}

// NewEnumerator snapshots g and prepares an enumeration of order k.
// Returns ErrGraphNil, ErrBadOrder for k < 1, or ErrOptionViolation.
// k larger than the vertex count yields an empty enumeration.
func NewEnumerator(g *core.Graph, k int, opts ...Option) (*Enumerator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadOrder, k)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rows := make([]bits.Bits, g.VertexCount())
	for v := range rows {
		rows[v], _ = g.NeighborSet(v)
	}

	return &Enumerator{
		rows:  rows,
		k:     k,
		stack: arraystack.New(),
		ctx:   o.Ctx,
		max:   o.MaxSubgraphs,
		done:  k > len(rows),
	}, nil
}

// Next returns the next vertex set in ascending order, or false when the
// enumeration is exhausted or has failed (see Err).
func (e *Enumerator) Next() ([]int, bool) {
	if e.err != nil || e.done {
		return nil, false
	}
	for {
		select {
		case <-e.ctx.Done():
			e.err = fmt.Errorf("%w: %w", ErrInconclusive, e.ctx.Err())
			return nil, false
		default:
		}

		top, ok := e.stack.Peek()
		if !ok {
			if e.root >= len(e.rows) {
				e.done = true
				return nil, false
			}
			seed := e.seed(e.root)
			e.root++
			if len(seed.sub) == e.k {
				return e.emit(seed.sub)
			}
			e.stack.Push(seed)
			continue
		}

		f := top.(*frame)
		w := f.ext.OneFrom(0)
		if w < 0 {
			e.stack.Pop()
			continue
		}
		f.ext.SetBit(w, 0)
		child := e.extend(f, w)
		if len(child.sub) == e.k {
			return e.emit(child.sub)
		}
		e.stack.Push(child)
	}
}

// Err reports why Next stopped early; nil after a complete enumeration.
func (e *Enumerator) Err() error {
	return e.err
}

// Produced returns how many subsets Next has yielded so far.
func (e *Enumerator) Produced() int {
	return e.produced
}

// Count exhausts an enumeration of order k and returns its size.
func Count(g *core.Graph, k int, opts ...Option) (int, error) {
	e, err := NewEnumerator(g, k, opts...)
	if err != nil {
		return 0, err
	}
	for _, ok := e.Next(); ok; _, ok = e.Next() {
	}

	return e.Produced(), e.Err()
}

// All collects every connected induced k-subset of g.
func All(g *core.Graph, k int, opts ...Option) ([][]int, error) {
	e, err := NewEnumerator(g, k, opts...)
	if err != nil {
		return nil, err
	}
	var out [][]int
	for s, ok := e.Next(); ok; s, ok = e.Next() {
		out = append(out, s)
	}

	return out, e.Err()
}

// seed starts the search tree rooted at v.
func (e *Enumerator) seed(v int) *frame {
	n := len(e.rows)
	f := &frame{
		root:   v,
		sub:    []int{v},
		ext:    bits.New(n),
		closed: bits.New(n),
	}
	f.closed.SetBit(v, 1)
	e.rows[v].IterateOnes(func(u int) bool {
		f.closed.SetBit(u, 1)
		if u > v {
			f.ext.SetBit(u, 1)
		}
		return true
	})

	return f
}

// extend derives the child frame that adds w to f.sub. f.ext must already
// have w removed.
func (e *Enumerator) extend(f *frame, w int) *frame {
	child := &frame{
		root:   f.root,
		sub:    append(append(make([]int, 0, len(f.sub)+1), f.sub...), w),
		ext:    clone(f.ext, len(e.rows)),
		closed: clone(f.closed, len(e.rows)),
	}
	e.rows[w].IterateOnes(func(u int) bool {
		if u > f.root && f.closed.Bit(u) == 0 {
			child.ext.SetBit(u, 1)
		}
		child.closed.SetBit(u, 1)
		return true
	})

	return child
}

// emit applies the production limit and returns a sorted copy of sub.
func (e *Enumerator) emit(sub []int) ([]int, bool) {
	if e.max > 0 && e.produced >= e.max {
		e.err = fmt.Errorf("%w: %w (%d)", ErrInconclusive, ErrLimit, e.max)
		return nil, false
	}
	e.produced++
	out := append([]int(nil), sub...)
	sort.Ints(out)

	return out, true
}

// clone copies a bit set of width n.
func clone(b bits.Bits, n int) bits.Bits {
	out := bits.New(n)
	b.IterateOnes(func(i int) bool {
		out.SetBit(i, 1)
		return true
	})
	return out
}
