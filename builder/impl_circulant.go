// SPDX-License-Identifier: MIT
// Package: primegraph/builder
//
// impl_circulant.go - Circulant and the triangle-free regular family.
//
// Contract:
//   - Circulant(n, offsets...): i ~ j iff (i-j) mod n or (j-i) mod n is an offset.
//     Offsets must lie in 1..n-1 (else ErrBadParameter); duplicates are harmless.
//   - TriangleFreeRegular(n, k): offsets k..min(2k-1, n-1). k must lie in 1..n-1.
//   - TriangleFreeRegularComplement(n, k): the complement of the above.
//
// Complexity: O(n·|offsets|) for Circulant; the complement costs O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/primegraph/core"
)

// Method tags and minima.
const (
	methodCirculant        = "Circulant"
	methodTriangleFreeReg  = "TriangleFreeRegular"
	methodTriangleFreeRegC = "TriangleFreeRegularComplement"
	minCirculantNodes      = 1
	familyNamePrefix       = "TFRG"
	familyComplementSuffix = "_c"
)

// Circulant returns a Constructor for the circulant graph C_n(offsets).
func Circulant(n int, offsets ...int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCirculantNodes {
			return tooFew(methodCirculant, n, minCirculantNodes)
		}
		for _, d := range offsets {
			if d < 1 || d >= n {
				return fmt.Errorf("%s: offset %d not in [1,%d]: %w", methodCirculant, d, n-1, ErrBadParameter)
			}
		}
		off := addBlock(g, n)
		for i := 0; i < n; i++ {
			for _, d := range offsets {
				if err := link(g, methodCirculant, off, i, (i+d)%n); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// TriangleFreeRegular returns a Constructor for TFRG_n_k.
func TriangleFreeRegular(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		offsets, err := familyOffsets(methodTriangleFreeReg, n, k)
		if err != nil {
			return err
		}
		return Circulant(n, offsets...)(g, cfg)
	}
}

// TriangleFreeRegularComplement returns a Constructor for TFRG_n_k_c.
func TriangleFreeRegularComplement(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		offsets, err := familyOffsets(methodTriangleFreeRegC, n, k)
		if err != nil {
			return err
		}
		in := make(map[int]bool, 2*len(offsets))
		for _, d := range offsets {
			in[d], in[n-d] = true, true
		}
		var rest []int
		for d := 1; d <= n/2; d++ {
			if !in[d] {
				rest = append(rest, d)
			}
		}
		return Circulant(n, rest...)(g, cfg)
	}
}

// Name returns the family label TFRG_<n>_<k>, with "_c" for the complement.
func Name(n, k int, complement bool) string {
	name := fmt.Sprintf("%s_%d_%d", familyNamePrefix, n, k)
	if complement {
		name += familyComplementSuffix
	}
	return name
}

// familyOffsets validates (n, k) and returns k..min(2k-1, n-1).
func familyOffsets(method string, n, k int) ([]int, error) {
	if n < minCirculantNodes+1 {
		return nil, tooFew(method, n, minCirculantNodes+1)
	}
	if k < 1 || k >= n {
		return nil, fmt.Errorf("%s: k=%d not in [1,%d]: %w", method, k, n-1, ErrBadParameter)
	}
	hi := 2*k - 1
	if hi > n-1 {
		hi = n - 1
	}
	offsets := make([]int, 0, hi-k+1)
	for d := k; d <= hi; d++ {
		offsets = append(offsets, d)
	}
	return offsets, nil
}
