// SPDX-License-Identifier: MIT

package prime

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/primegraph/coloring"
	"github.com/katalvlaran/primegraph/core"
	"github.com/katalvlaran/primegraph/subgraph"
)

// Sentinel errors for the prime-graph predicates.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("prime: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("prime: invalid option supplied")

	// ErrInvalidOrder is returned by the generated-graph test for n < 1.
	ErrInvalidOrder = errors.New("prime: duplication count must be positive")

	// ErrInconclusive marks a predicate whose search was abandoned
	// (deadline, cancellation or budget). It is never reported as false.
	ErrInconclusive = errors.New("prime: predicate inconclusive")
)

// minPrimeOrder is the largest vertex count that can never be prime.
const minPrimeOrder = 2

// FailReason is the diagnostic attached to a detailed minimality check.
type FailReason int

// Failure reasons, in the order the checks run. The numeric values are stable.
const (
	Passed FailReason = iota
	NotConnected
	TooFewVertices
	NotMinimal
	ComplementHasTriangle
	ComplementNot3Colorable
)

// String returns the human-readable reason.
func (r FailReason) String() string {
	switch r {
	case Passed:
		return "Passed"
	case NotConnected:
		return "Graph not connected"
	case TooFewVertices:
		return "Graph had <= 2 vertices"
	case NotMinimal:
		return "Graph not minimal"
	case ComplementHasTriangle:
		return "Complement not triangle free"
	case ComplementNot3Colorable:
		return "Complement not 3-colorable"
	default:
		return fmt.Sprintf("FailReason(%d)", int(r))
	}
}

// Report is the outcome of Detail.
//
// Reason is Passed only for a minimal prime graph. BadEdges lists, in
// Graph.Edges order, every edge of g whose return to the complement keeps the
// complement triangle-free and 3-colourable; it is empty unless Reason is
// NotMinimal.
type Report struct {
	Reason    FailReason
	Vertices  int
	Connected bool
	BadEdges  []core.Edge
}

// Minimal reports whether the graph passed every check.
func (r Report) Minimal() bool {
	return r.Reason == Passed
}

// Prime reports whether the graph passed the primality checks, i.e. failed at
// most on minimality.
func (r Report) Prime() bool {
	return r.Reason == Passed || r.Reason == NotMinimal
}

// String renders the reason plus the bad edges, if any.
func (r Report) String() string {
	if len(r.BadEdges) == 0 {
		return r.Reason.String()
	}
	return fmt.Sprintf("%s: %v", r.Reason, r.BadEdges)
}

// Option configures predicate evaluation.
type Option func(*Options)

// Options holds predicate knobs forwarded to the searches.
type Options struct {
	// Ctx is polled by the connectivity check, the colouring search and the subgraph enumeration.
	Ctx context.Context

	// MaxColoringSteps bounds each colouring search; 0 means unlimited.
	MaxColoringSteps int

	// MaxSubgraphs bounds the generated-graph enumeration; 0 means unlimited.
	MaxSubgraphs int

	err error
}

// DefaultOptions returns background context and no limits.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxColoringSteps bounds every colouring search (n ≥ 0; 0 = unlimited).
func WithMaxColoringSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxColoringSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxColoringSteps = n
	}
}

// WithMaxSubgraphs bounds the generated-graph enumeration (n ≥ 0; 0 = unlimited).
func WithMaxSubgraphs(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSubgraphs cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSubgraphs = n
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// coloringOptions forwards the relevant knobs to package coloring.
func (o Options) coloringOptions() []coloring.Option {
	return []coloring.Option{coloring.WithContext(o.Ctx), coloring.WithMaxSteps(o.MaxColoringSteps)}
}

// subgraphOptions forwards the relevant knobs to package subgraph.
func (o Options) subgraphOptions() []subgraph.Option {
	return []subgraph.Option{subgraph.WithContext(o.Ctx), subgraph.WithMaxSubgraphs(o.MaxSubgraphs)}
}

// inconclusive tags a search failure with ErrInconclusive.
func inconclusive(err error) error {
	return fmt.Errorf("%w: %w", ErrInconclusive, err)
}
