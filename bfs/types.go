// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures a traversal.
type Option func(*Options)

// Options holds the traversal parameters.
type Options struct {
	// Ctx is polled once per dequeued vertex.
	Ctx context.Context
}

// DefaultOptions returns Options with context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// unreached marks Depth entries of vertices the search never touched.
const unreached = -1

// Result is the outcome of one traversal.
//   - Order: vertices in visit sequence.
//   - Depth: Depth[v] is the edge distance from the start, -1 if unreached.
type Result struct {
	Order []int
	Depth []int
}

// Reached reports whether v was discovered by the traversal.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != unreached
}
