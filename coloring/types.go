// SPDX-License-Identifier: MIT

package coloring

import (
	"context"
	"errors"
	"fmt"
)

// MaxColors is the largest palette the tester decides for.
const MaxColors = 3

// Sentinel errors for the colouring search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coloring: invalid option supplied")

	// ErrInconclusive marks a search abandoned before it could answer.
	// It is always joined with the concrete cause (ErrStepLimit or a ctx error).
	ErrInconclusive = errors.New("coloring: search inconclusive")

	// ErrStepLimit is the cause attached to ErrInconclusive when WithMaxSteps is exceeded.
	ErrStepLimit = errors.New("coloring: step limit exceeded")
)

// Option configures the search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the search knobs.
type Options struct {
	// Ctx is polled once per colour assignment.
	Ctx context.Context

	// MaxSteps bounds the number of colour assignments tried; 0 means unlimited.
	MaxSteps int

	err error
}

// DefaultOptions returns background context and no step limit.
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

// WithMaxSteps bounds the backtracking.
//
//	n > 0: at most n colour assignments
//	n == 0: unlimited
//	n < 0: ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Result is the outcome of a completed search.
type Result struct {
	// Colorable is true iff a proper colouring with at most MaxColors colours exists.
	Colorable bool

	// Colors[v] is v's colour in 0..MaxColors-1 when Colorable, nil otherwise.
	Colors []int

	// Steps counts colour assignments tried.
	Steps int
}
