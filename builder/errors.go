// SPDX-License-Identifier: MIT
// Package: primegraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach method context with %w.
//   - Constructors never panic; validation panics are confined to option
//     constructors (WithRand(nil)).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadParameter indicates a parameter outside its domain (offset, k).
var ErrBadParameter = errors.New("builder: parameter out of range")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not complete
// (nil constructor, or the core graph rejected an edge).
var ErrConstructFailed = errors.New("builder: construction failed")
