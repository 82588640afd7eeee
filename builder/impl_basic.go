// SPDX-License-Identifier: MIT
// Package: primegraph/builder
//
// impl_basic.go - Empty, Path, Cycle, Complete, CompleteBipartite, Star, Wheel.
//
// Contract:
//   - Sizes are validated before any vertex is added (ErrTooFewVertices).
//   - Edges are emitted in ascending (i, j) order within the block.
//
// Complexity: O(n) vertices plus O(E) edges per constructor; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primegraph/core"
)

// Method tags and minima.
const (
	methodEmpty             = "Empty"
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodStar              = "Star"
	methodWheel             = "Wheel"

	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minPartitionSize = 1
	minStarNodes     = 2
	minWheelNodes    = 4 // rim C_{n-1} needs at least 3 vertices
)

// tooFew renders the shared size violation.
func tooFew(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
}

// Empty returns a Constructor that adds n isolated vertices.
func Empty(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < 0 {
			return tooFew(methodEmpty, n, 0)
		}
		addBlock(g, n)
		return nil
	}
}

// Path returns a Constructor for the path 0-1-...-(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		off := addBlock(g, n)
		for i := 0; i+1 < n; i++ {
			if err := link(g, methodPath, off, i, i+1); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle returns a Constructor for the cycle with edges {i, (i+1)%n}.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		off := addBlock(g, n)
		for i := 0; i < n; i++ {
			if err := link(g, methodCycle, off, i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		off := addBlock(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, methodComplete, off, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}: the left side is
// 0..n1-1 and the right side n1..n1+n2-1 within the block.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: partitions %d,%d must be ≥ %d: %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		off := addBlock(g, n1+n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := link(g, methodCompleteBipartite, off, i, n1+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Star returns a Constructor with the hub at the block's first vertex.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		off := addBlock(g, n)
		for i := 1; i < n; i++ {
			if err := link(g, methodStar, off, 0, i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Wheel returns a Constructor for the rim cycle 0..n-2 plus hub n-1.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		off := g.VertexCount()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		hub := addBlock(g, 1) - off
		for i := 0; i < n-1; i++ {
			if err := link(g, methodWheel, off, hub, i); err != nil {
				return err
			}
		}
		return nil
	}
}
