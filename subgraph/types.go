// SPDX-License-Identifier: MIT

package subgraph

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for the enumeration.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("subgraph: graph is nil")

	// ErrBadOrder is returned for a target order k < 1.
	ErrBadOrder = errors.New("subgraph: order must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("subgraph: invalid option supplied")

	// ErrInconclusive marks an enumeration abandoned before exhaustion.
	// It is joined with ErrLimit or the context error.
	ErrInconclusive = errors.New("subgraph: enumeration inconclusive")

	// ErrLimit is the cause attached to ErrInconclusive when WithMaxSubgraphs is exceeded.
	ErrLimit = errors.New("subgraph: subgraph limit exceeded")
)

// Option configures an Enumerator.
type Option func(*Options)

// Options holds enumeration knobs.
type Options struct {
	// Ctx is polled at every extension step.
	Ctx context.Context

	// MaxSubgraphs bounds how many subgraphs may be produced; 0 means unlimited.
	MaxSubgraphs int

	err error
}

// DefaultOptions returns background context and no limit.
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

// WithMaxSubgraphs bounds the enumeration.
//
//	n > 0: producing an (n+1)-th subgraph fails with ErrInconclusive/ErrLimit
//	n == 0: unlimited
//	n < 0: ErrOptionViolation
func WithMaxSubgraphs(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSubgraphs cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSubgraphs = n
	}
}
