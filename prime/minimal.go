// SPDX-License-Identifier: MIT

package prime

import (
	"fmt"

	"github.com/katalvlaran/primegraph/coloring"
	"github.com/katalvlaran/primegraph/core"
	"github.com/katalvlaran/primegraph/triangle"
)

// IsMinimalPrimeGraph reports whether g is prime and every edge of g is
// essential: putting any single edge of g back into the complement makes the
// complement contain a triangle or need a fourth colour.
// It stops at the first non-essential edge.
func IsMinimalPrimeGraph(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return false, err
	}

	return isMinimal(g, o)
}

// Detail runs the same checks as IsMinimalPrimeGraph but reports why g fails
// and, for a prime but non-minimal g, every non-essential edge.
func Detail(g *core.Graph, opts ...Option) (Report, error) {
	if g == nil {
		return Report{}, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return Report{}, err
	}
	s, err := screen(g, o)
	if err != nil {
		return Report{}, err
	}
	if s.reason != Passed {
		return Report{Reason: s.reason, Vertices: g.VertexCount(), Connected: s.connected}, nil
	}
	bad, err := badEdges(g.Edges(), s.complement, o, true)
	if err != nil {
		return Report{}, err
	}
	reason := Passed
	if len(bad) > 0 {
		reason = NotMinimal
	}

	return Report{Reason: reason, Vertices: g.VertexCount(), Connected: true, BadEdges: bad}, nil
}

// isMinimal is IsMinimalPrimeGraph with resolved options.
func isMinimal(g *core.Graph, o Options) (bool, error) {
	s, err := screen(g, o)
	if err != nil || s.reason != Passed {
		return false, err
	}
	bad, err := badEdges(g.Edges(), s.complement, o, false)
	if err != nil {
		return false, err
	}

	return len(bad) == 0, nil
}

// badEdges tests each edge of g against the complement h, which must be
// triangle-free and 3-colourable. Each edge is inserted into h, tested and
// removed again, so h is unchanged when badEdges returns without error.
// With collectAll false the scan stops at the first bad edge.
func badEdges(edges []core.Edge, h *core.Graph, o Options, collectAll bool) ([]core.Edge, error) {
	var bad []core.Edge
	for _, e := range edges {
		// h is triangle-free, so h+e has a triangle iff e's ends share a neighbour.
		closes, err := triangle.ClosesTriangle(h, e.U, e.V)
		if err != nil {
			return nil, fmt.Errorf("prime: test %s against complement: %w", e, err)
		}
		if closes {
			continue
		}
		ok, err := colorableWith(h, e, o)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		bad = append(bad, e)
		if !collectAll {
			break
		}
	}

	return bad, nil
}

// colorableWith tests h+e for 3-colourability and restores h.
func colorableWith(h *core.Graph, e core.Edge, o Options) (bool, error) {
	if err := h.AddEdge(e.U, e.V); err != nil {
		return false, fmt.Errorf("prime: insert %s into complement: %w", e, err)
	}
	ok, cerr := coloring.ThreeColorable(h, o.coloringOptions()...)
	if err := h.RemoveEdge(e.U, e.V); err != nil {
		return false, fmt.Errorf("prime: restore complement after %s: %w", e, err)
	}
	if cerr != nil {
		return false, inconclusive(cerr)
	}

	return ok, nil
}
