// SPDX-License-Identifier: MIT
// Package: primegraph/builder
//
// helpers.go - block allocation and edge emission shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primegraph/core"
)

// addBlock appends n fresh vertices and returns the first one's index.
func addBlock(g *core.Graph, n int) int {
	offset := g.VertexCount()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	return offset
}

// link adds the edge {offset+i, offset+j} with method context on failure.
func link(g *core.Graph, method string, offset, i, j int) error {
	if err := g.AddEdge(offset+i, offset+j); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w: %w", method, offset+i, offset+j, ErrConstructFailed, err)
	}
	return nil
}
