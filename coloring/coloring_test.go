package coloring_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/primegraph/coloring"
	"github.com/katalvlaran/primegraph/core"
)

// ColoringSuite exercises the ≤3-colouring search on known chromatic numbers.
type ColoringSuite struct {
	suite.Suite
}

// build is a FromEdges shortcut for pair literals.
func (s *ColoringSuite) build(n int, pairs ...[2]int) *core.Graph {
	edges := make([]core.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = core.NewEdge(p[0], p[1])
	}
	g, err := core.FromEdges(n, edges)
	s.Require().NoError(err)
	return g
}

// grotzsch is the Mycielskian of C5: triangle-free with chromatic number 4.
func (s *ColoringSuite) grotzsch() *core.Graph {
	var pairs [][2]int
	for i := 0; i < 5; i++ {
		pairs = append(pairs, [2]int{i, (i + 1) % 5})     // outer cycle
		pairs = append(pairs, [2]int{5 + i, (i + 4) % 5}) // shadow of i sees N(i)
		pairs = append(pairs, [2]int{5 + i, (i + 1) % 5})
		pairs = append(pairs, [2]int{10, 5 + i}) // apex
	}
	return s.build(11, pairs...)
}

// TestTrivial covers empty and edgeless graphs.
func (s *ColoringSuite) TestTrivial() {
	for _, n := range []int{0, 1, 6} {
		res, err := coloring.Find(core.NewGraph(n))
		s.Require().NoError(err)
		s.True(res.Colorable, "n=%d", n)
		s.Len(res.Colors, n)
	}
}

// TestKnownGraphs checks graphs with known chromatic numbers.
func (s *ColoringSuite) TestKnownGraphs() {
	k4 := s.build(4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3})
	c5 := s.build(5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 0})
	w5 := s.build(6, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 0},
		[2]int{5, 0}, [2]int{5, 1}, [2]int{5, 2}, [2]int{5, 3}, [2]int{5, 4})
	petersen := s.build(10,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 0},
		[2]int{0, 5}, [2]int{1, 6}, [2]int{2, 7}, [2]int{3, 8}, [2]int{4, 9},
		[2]int{5, 7}, [2]int{7, 9}, [2]int{9, 6}, [2]int{6, 8}, [2]int{8, 5})

	cases := []struct {
		name string
		g    *core.Graph
		want bool
	}{
		{"K4", k4, false},
		{"C5", c5, true},
		{"W5", w5, false},
		{"Petersen", petersen, true},
		{"Grotzsch", s.grotzsch(), false},
	}
	for _, c := range cases {
		res, err := coloring.Find(c.g)
		s.Require().NoError(err, c.name)
		s.Equal(c.want, res.Colorable, c.name)
		if res.Colorable {
			s.True(coloring.Verify(c.g, res.Colors), "%s: witness must be proper", c.name)
		} else {
			s.Nil(res.Colors)
		}
	}
}

// TestInconclusive verifies that budgets and cancellation never turn into false.
func (s *ColoringSuite) TestInconclusive() {
	g := s.grotzsch()

	_, err := coloring.ThreeColorable(g, coloring.WithMaxSteps(3))
	s.ErrorIs(err, coloring.ErrInconclusive)
	s.ErrorIs(err, coloring.ErrStepLimit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = coloring.ThreeColorable(g, coloring.WithContext(ctx))
	s.ErrorIs(err, coloring.ErrInconclusive)
	s.ErrorIs(err, context.Canceled)

	_, err = coloring.ThreeColorable(g, coloring.WithMaxSteps(-1))
	s.ErrorIs(err, coloring.ErrOptionViolation)

	_, err = coloring.ThreeColorable(nil)
	s.ErrorIs(err, coloring.ErrGraphNil)
}

// TestVerify rejects improper or malformed colourings.
func (s *ColoringSuite) TestVerify() {
	g := s.build(3, [2]int{0, 1}, [2]int{1, 2})
	s.True(coloring.Verify(g, []int{0, 1, 0}))
	s.False(coloring.Verify(g, []int{0, 0, 1}))
	s.False(coloring.Verify(g, []int{0, 1}))
	s.False(coloring.Verify(g, []int{0, 3, 0}))
	s.False(coloring.Verify(nil, nil))
}

func TestColoringSuite(t *testing.T) {
	suite.Run(t, new(ColoringSuite))
}

// bruteThreeColorable tries all 3^n assignments.
func bruteThreeColorable(g *core.Graph) bool {
	n := g.VertexCount()
	colors := make([]int, n)
	total := 1
	for i := 0; i < n; i++ {
		total *= 3
	}
	for code := 0; code < total; code++ {
		x := code
		for v := 0; v < n; v++ {
			colors[v] = x % 3
			x /= 3
		}
		if coloring.Verify(g, colors) {
			return true
		}
	}
	return false
}

// TestThreeColorable_MatchesBruteForce compares with exhaustive search on small random graphs.
func TestThreeColorable_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 150; i++ {
		n := 1 + r.Intn(8)
		p := 0.3 + r.Float64()*0.5
		g := core.NewGraph(n)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if r.Float64() < p {
					require.NoError(t, g.AddEdge(u, v))
				}
			}
		}
		got, err := coloring.ThreeColorable(g)
		require.NoError(t, err)
		require.Equal(t, bruteThreeColorable(g), got, "sample %d: %v", i, g.Edges())
	}
}
