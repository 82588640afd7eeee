// SPDX-License-Identifier: MIT
// Package: primegraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Trials run over pairs i<j in ascending order, so a fixed seed yields a fixed graph.
//
// Complexity: O(n²) Bernoulli trials; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primegraph/core"
)

// Method tag and domains.
const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling each pair with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		off := addBlock(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				take := p == probMax
				if cfg.rng != nil {
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err := link(g, methodRandomSparse, off, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
