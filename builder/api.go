// SPDX-License-Identifier: MIT
// Package: primegraph/builder
//
// api.go - public entry-points for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor appends its own block of fresh vertices, so composing
//     constructors yields their disjoint union with block offsets in call order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primegraph/core"
)

// Constructor appends a deterministic block of vertices and edges to g using
// the resolved builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build is BuildGraph without builder options.
func Build(cons ...Constructor) (*core.Graph, error) {
	return BuildGraph(nil, cons...)
}

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) to resolve options plus Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is Build that panics on error. Intended for fixtures and examples.
func MustBuild(cons ...Constructor) *core.Graph {
	g, err := Build(cons...)
	if err != nil {
		panic(err)
	}
	return g
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Vertices of a block are numbered offset..offset+n-1 where offset is the
// graph's vertex count when the constructor runs.

// Empty adds n isolated vertices (n ≥ 0).
//func Empty(n int) Constructor

// Path builds a simple path P_n (n ≥ 2).
//func Path(n int) Constructor

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
//func Cycle(n int) Constructor

// Complete builds the complete graph K_n (n ≥ 1).
//func Complete(n int) Constructor

// CompleteBipartite builds K_{n1,n2}, left side first.
//func CompleteBipartite(n1, n2 int) Constructor

// Star builds a star with hub at the block's first vertex and n-1 leaves (n ≥ 2).
//func Star(n int) Constructor

// Wheel builds C_{n-1} plus a hub joined to every rim vertex (n ≥ 4).
//func Wheel(n int) Constructor

// Circulant joins i and j whenever (i-j) mod n or (j-i) mod n is an offset.
//func Circulant(n int, offsets ...int) Constructor

// TriangleFreeRegular is the circulant with offsets k..2k-1 (clamped to n-1).
//func TriangleFreeRegular(n, k int) Constructor

// TriangleFreeRegularComplement is the complement of TriangleFreeRegular(n, k).
//func TriangleFreeRegularComplement(n, k int) Constructor

// RandomSparse samples each pair independently with probability p.
//func RandomSparse(n int, p float64) Constructor
