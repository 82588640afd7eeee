package triangle_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primegraph/core"
	"github.com/katalvlaran/primegraph/triangle"
)

// randomGraph returns a G(n,p) sample from a deterministic source.
func randomGraph(r *rand.Rand, n int, p float64) *core.Graph {
	g := core.NewGraph(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Float64() < p {
				_ = g.AddEdge(u, v)
			}
		}
	}
	return g
}

// naiveTriangleFree is the O(V³) reference.
func naiveTriangleFree(g *core.Graph) bool {
	n := g.VertexCount()
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				if g.Adjacent(a, b) && g.Adjacent(b, c) && g.Adjacent(a, c) {
					return false
				}
			}
		}
	}
	return true
}

// triangleFree unwraps IsTriangleFree for graphs known to be non-nil.
func triangleFree(t *testing.T, g *core.Graph) bool {
	t.Helper()
	ok, err := triangle.IsTriangleFree(g)
	require.NoError(t, err)
	return ok
}

func TestIsTriangleFree_Fixtures(t *testing.T) {
	c5, err := core.FromEdges(5, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 0}})
	require.NoError(t, err)
	k3, err := core.FromEdges(3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}})
	require.NoError(t, err)

	assert.True(t, triangleFree(t, core.NewGraph(0)))
	assert.True(t, triangleFree(t, core.NewGraph(7)))
	assert.True(t, triangleFree(t, c5))
	assert.True(t, triangleFree(t, c5.Complement()))
	assert.False(t, triangleFree(t, k3))
}

func TestFindTriangle_Witness(t *testing.T) {
	// triangle hidden at 2,4,5 inside a path
	g, err := core.FromEdges(6, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 4}, {U: 4, V: 5}, {U: 2, V: 5}, {U: 3, V: 5}})
	require.NoError(t, err)

	tri, ok, err := triangle.FindTriangle(g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, [3]int{2, 4, 5}, tri)
	a, b, c := tri[0], tri[1], tri[2]
	assert.True(t, g.Adjacent(a, b) && g.Adjacent(b, c) && g.Adjacent(a, c))
}

func TestClosesTriangle(t *testing.T) {
	c5, err := core.FromEdges(5, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 0}})
	require.NoError(t, err)

	ok, err := triangle.ClosesTriangle(c5, 0, 2)
	require.NoError(t, err)
	assert.True(t, ok, "0 and 2 share 1")
	ok, err = triangle.ClosesTriangle(c5, 0, 1)
	require.NoError(t, err)
	assert.False(t, ok, "adjacent pair with no common neighbour")
}

func TestInvalidArguments(t *testing.T) {
	p3, err := core.FromEdges(3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	require.NoError(t, err)

	for _, pair := range [][2]int{{0, 99}, {-1, 7}, {3, 0}} {
		ok, err := triangle.ClosesTriangle(p3, pair[0], pair[1])
		assert.ErrorIs(t, err, core.ErrVertexOutOfRange, "pair %v", pair)
		assert.False(t, ok)
	}

	_, err = triangle.ClosesTriangle(nil, 0, 1)
	assert.ErrorIs(t, err, triangle.ErrGraphNil)
	_, err = triangle.IsTriangleFree(nil)
	assert.ErrorIs(t, err, triangle.ErrGraphNil)
	_, _, err = triangle.FindTriangle(nil)
	assert.ErrorIs(t, err, triangle.ErrGraphNil)
}

func TestIsTriangleFree_MatchesNaiveAndDoubleComplement(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		n := 1 + r.Intn(12)
		g := randomGraph(r, n, r.Float64()*0.6)
		want := naiveTriangleFree(g)
		require.Equal(t, want, triangleFree(t, g), "sample %d: %v", i, g.Edges())
		require.Equal(t, want, triangleFree(t, g.Complement().Complement()))
	}
}
