// SPDX-License-Identifier: MIT

package prime

import (
	"fmt"

	"github.com/katalvlaran/primegraph/bfs"
	"github.com/katalvlaran/primegraph/coloring"
	"github.com/katalvlaran/primegraph/core"
	"github.com/katalvlaran/primegraph/triangle"
)

// screening is the result of the primality checks shared by every predicate.
type screening struct {
	reason     FailReason  // Passed when g is prime
	connected  bool        // g's connectivity, always computed
	complement *core.Graph // owned by the caller; nil unless g got past the size and connectivity checks
}

// IsPrimeGraph reports whether g is a prime graph: connected, more than two
// vertices, and a complement that is triangle-free and 3-colourable.
//
// Returns ErrGraphNil, ErrOptionViolation, or ErrInconclusive when the
// colouring search is abandoned.
func IsPrimeGraph(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return false, err
	}
	s, err := screen(g, o)
	if err != nil {
		return false, err
	}

	return s.reason == Passed, nil
}

// screen runs the primality checks cheapest first and stops at the first failure.
func screen(g *core.Graph, o Options) (screening, error) {
	connected, err := bfs.IsConnected(g, bfs.WithContext(o.Ctx))
	if err != nil {
		return screening{}, inconclusive(err)
	}
	s := screening{connected: connected}
	switch {
	case g.VertexCount() <= minPrimeOrder:
		s.reason = TooFewVertices
		return s, nil
	case !s.connected:
		s.reason = NotConnected
		return s, nil
	}

	s.complement = g.Complement()
	free, err := triangle.IsTriangleFree(s.complement)
	if err != nil {
		return s, fmt.Errorf("prime: %w", err)
	}
	if !free {
		s.reason = ComplementHasTriangle
		return s, nil
	}
	ok, err := coloring.ThreeColorable(s.complement, o.coloringOptions()...)
	if err != nil {
		return s, inconclusive(err)
	}
	if !ok {
		s.reason = ComplementNot3Colorable
	}

	return s, nil
}
