// SPDX-License-Identifier: MIT

package graphexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/primegraph/core"
)

// MaxOrder is the largest vertex count Parse accepts. Adjacency storage is
// quadratic in the order.
const MaxOrder = 4096

// Sentinel errors.
var (
	// ErrSyntax wraps a parser error.
	ErrSyntax = errors.New("graphexpr: syntax error")

	// ErrHeader is returned when the header's n does not cover every vertex
	// or the vertex count exceeds MaxOrder.
	ErrHeader = errors.New("graphexpr: vertex count out of range")

	// ErrGraphNil is returned by Format for a nil graph.
	ErrGraphNil = errors.New("graphexpr: graph is nil")
)

// Parse builds a graph from an expression such as "0-1-2-3-4-0" or
// "n=6: 0-1, 1-2; 3-4". Without a header the vertex count is the largest
// identifier plus one. Repeated edges collapse; self loops are rejected with
// core.ErrLoopNotAllowed. Orders above MaxOrder are rejected with ErrHeader.
func Parse(s string) (*core.Graph, error) {
	ast, err := parseExpr.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	maxID := -1
	var edges []core.Edge
	for _, part := range ast.Parts {
		for _, run := range part.Runs {
			prev := run.Start
			maxID = max(maxID, prev)
			for _, next := range run.Next {
				edges = append(edges, core.NewEdge(prev, next))
				maxID = max(maxID, next)
				prev = next
			}
		}
	}

	n := maxID + 1
	if ast.Header != nil {
		if maxID >= ast.Header.N {
			return nil, fmt.Errorf("%w: vertex %d with n=%d", ErrHeader, maxID, ast.Header.N)
		}
		n = ast.Header.N
	}
	if err := CheckOrder(n); err != nil {
		return nil, err
	}
	g, err := core.FromEdges(n, edges)
	if err != nil {
		return nil, fmt.Errorf("graphexpr: %w", err)
	}

	return g, nil
}

// CheckOrder returns ErrHeader unless 0 <= n <= MaxOrder.
func CheckOrder(n int) error {
	if n < 0 || n > MaxOrder {
		return fmt.Errorf("%w: n=%d not in [0,%d]", ErrHeader, n, MaxOrder)
	}
	return nil
}

// MustParse is Parse that panics on error. Intended for fixtures.
func MustParse(s string) *core.Graph {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// Format renders g canonically: a header followed by every edge in
// Graph.Edges order, e.g. "n=4: 0-1, 1-2, 2-3". Parse(Format(g)) equals g.
func Format(g *core.Graph) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "n=%d:", g.VertexCount())
	for i, e := range g.Edges() {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, " %d-%d", e.U, e.V)
	}

	return sb.String(), nil
}
