// SPDX-License-Identifier: MIT

package prime

import (
	"fmt"

	"github.com/katalvlaran/primegraph/core"
	"github.com/katalvlaran/primegraph/subgraph"
)

// IsGeneratedGraph reports whether some connected induced subgraph of g with
// VertexCount()-n vertices is a minimal prime graph.
//
// The number of candidate subgraphs grows combinatorially with n and density;
// bound it with WithContext or WithMaxSubgraphs. Returns ErrInvalidOrder for
// n < 1 and ErrInconclusive when the search is abandoned.
func IsGeneratedGraph(g *core.Graph, n int, opts ...Option) (bool, error) {
	_, found, err := FindGenerator(g, n, opts...)
	return found, err
}

// FindGenerator is IsGeneratedGraph returning the first witness vertex set
// (ascending, in g's labels) whose induced subgraph is a minimal prime graph.
func FindGenerator(g *core.Graph, n int, opts ...Option) ([]int, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if n < 1 {
		return nil, false, fmt.Errorf("%w: n=%d", ErrInvalidOrder, n)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, false, err
	}
	k := g.VertexCount() - n
	if k <= minPrimeOrder {
		return nil, false, nil
	}

	e, err := subgraph.NewEnumerator(g, k, o.subgraphOptions()...)
	if err != nil {
		return nil, false, fmt.Errorf("prime: %w", err)
	}
	for set, ok := e.Next(); ok; set, ok = e.Next() {
		sub, err := g.InducedSubgraph(set)
		if err != nil {
			return nil, false, fmt.Errorf("prime: %w", err)
		}
		minimal, err := isMinimal(sub, o)
		if err != nil {
			return nil, false, err
		}
		if minimal {
			return set, true, nil
		}
	}
	if err := e.Err(); err != nil {
		return nil, false, inconclusive(err)
	}

	return nil, false, nil
}
