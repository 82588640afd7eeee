package core_test

import (
	"errors"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primegraph/core"
)

// cycle5 builds C5 on 0..4.
func cycle5(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(5, []core.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	require.NoError(t, err)
	return g
}

func TestNewGraph_Sizes(t *testing.T) {
	assert.Equal(t, 0, core.NewGraph(-3).VertexCount())
	assert.Equal(t, 0, core.NewGraph(0).EdgeCount())

	g := core.NewGraph(4)
	assert.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
	assert.True(t, g.HasVertex(3))
	assert.False(t, g.HasVertex(4))
	assert.False(t, g.HasVertex(-1))
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph(3)

	err := g.AddEdge(0, 3)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	err = g.AddEdge(-1, 0)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	err = g.AddEdge(1, 1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.Equal(t, 0, g.EdgeCount(), "failed inserts must not mutate")

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0), "re-adding is a no-op")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRemoveEdge_Consistency(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 2))

	require.NoError(t, g.RemoveEdge(2, 0))
	ok, err := g.HasEdge(0, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	err = g.RemoveEdge(0, 2)
	assert.True(t, errors.Is(err, core.ErrEdgeNotFound), "got %v", err)
	err = g.RemoveEdge(0, 9)
	assert.True(t, errors.Is(err, core.ErrVertexOutOfRange), "got %v", err)
}

func TestHasEdge_OutOfRange(t *testing.T) {
	g := core.NewGraph(2)
	_, err := g.HasEdge(0, 2)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.False(t, g.Adjacent(0, 2), "unchecked form treats out-of-range as non-adjacent")
}

func TestNeighborsAndDegree(t *testing.T) {
	g := cycle5(t)

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, nbrs)

	d, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	_, err = g.Neighbors(5)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.Degree(-1)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	set, err := g.NeighborSet(3)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Bit(2))
	assert.Equal(t, 1, set.Bit(4))
	assert.Equal(t, 0, set.Bit(3))
	set.SetBit(0, 1)
	assert.False(t, g.Adjacent(3, 0), "NeighborSet must be a copy")

	isolated := core.NewGraph(1)
	nbrs, err = isolated.Neighbors(0)
	require.NoError(t, err)
	assert.Empty(t, nbrs)
}

func TestAddVertex_GrowsPastCapacity(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1))
	for i := 0; i < 40; i++ {
		id := g.AddVertex()
		require.Equal(t, i+2, id)
		require.NoError(t, g.AddEdge(id-1, id))
	}
	assert.Equal(t, 42, g.VertexCount())
	assert.Equal(t, 41, g.EdgeCount())
	assert.True(t, g.Adjacent(0, 1), "existing adjacency survives reallocation")
	assert.True(t, g.Adjacent(40, 41))
	nbrs, err := g.Neighbors(20)
	require.NoError(t, err)
	assert.Equal(t, []int{19, 21}, nbrs)
}

func TestEdges_SortedAndCounted(t *testing.T) {
	g := cycle5(t)
	want := []core.Edge{{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4}}
	if diff := deep.Equal(g.Edges(), want); diff != nil {
		t.Error(diff)
	}
	assert.Equal(t, len(want), g.EdgeCount())
	assert.Equal(t, "0-4", core.NewEdge(4, 0).String())
}

func TestComplement_Involution(t *testing.T) {
	graphs := map[string]*core.Graph{
		"empty":  core.NewGraph(0),
		"single": core.NewGraph(1),
		"c5":     cycle5(t),
		"k4": func() *core.Graph {
			g, err := core.FromEdges(4, []core.Edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
			require.NoError(t, err)
			return g
		}(),
		"path": func() *core.Graph {
			g, err := core.FromEdges(6, []core.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}})
			require.NoError(t, err)
			return g
		}(),
	}
	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			h := g.Complement()
			n := g.VertexCount()
			assert.Equal(t, n*(n-1)/2, g.EdgeCount()+h.EdgeCount())
			if diff := deep.Equal(h.Complement().Edges(), g.Edges()); diff != nil {
				t.Error(diff)
			}
			assert.True(t, h.Complement().Equal(g))
		})
	}
}

func TestComplement_C5IsC5(t *testing.T) {
	h := cycle5(t).Complement()
	want := []core.Edge{{0, 2}, {0, 3}, {1, 3}, {1, 4}, {2, 4}}
	if diff := deep.Equal(h.Edges(), want); diff != nil {
		t.Error(diff)
	}
}

func TestClone_Independent(t *testing.T) {
	g := cycle5(t)
	c := g.Clone()
	require.True(t, c.Equal(g))

	require.NoError(t, c.RemoveEdge(0, 1))
	c.AddVertex()
	assert.True(t, g.Adjacent(0, 1))
	assert.Equal(t, 5, g.VertexCount())
	assert.False(t, c.Equal(g))
}

func TestInducedSubgraph_Relabels(t *testing.T) {
	g := cycle5(t)
	sub, err := g.InducedSubgraph([]int{4, 0, 1, 0})
	require.NoError(t, err)
	// 0→0, 1→1, 4→2; edges 0-1, 0-4, no 1-4
	want := []core.Edge{{0, 1}, {0, 2}}
	if diff := deep.Equal(sub.Edges(), want); diff != nil {
		t.Error(diff)
	}

	_, err = g.InducedSubgraph([]int{0, 7})
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestFromAdjacency(t *testing.T) {
	g, err := core.FromAdjacency(map[int][]int{0: {1}, 1: {2}, 2: {}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.Adjacent(1, 0), "listings are symmetrized")

	_, err = core.FromAdjacency(map[int][]int{0: {2}, 2: {0}})
	require.ErrorIs(t, err, core.ErrNonContiguous)

	_, err = core.FromAdjacency(map[int][]int{0: {5}})
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = core.FromEdges(2, []core.Edge{{0, 0}})
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestDuplicateVertex_Counts(t *testing.T) {
	g := cycle5(t)
	for v := 0; v < g.VertexCount(); v++ {
		deg, err := g.Degree(v)
		require.NoError(t, err)

		h, err := core.DuplicateVertex(g, v)
		require.NoError(t, err)
		assert.Equal(t, g.VertexCount()+1, h.VertexCount())
		assert.Equal(t, g.EdgeCount()+deg+1, h.EdgeCount())
		assert.True(t, h.Adjacent(v, 5), "duplicate is joined to its source")
	}
	assert.Equal(t, 5, g.VertexCount(), "source graph untouched")
	assert.Equal(t, 5, g.EdgeCount())
}

func TestDuplicateVertex_Triangle(t *testing.T) {
	// triangle a=0, b=1, w=2
	g, err := core.FromEdges(3, []core.Edge{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	h, err := core.DuplicateVertex(g, 2)
	require.NoError(t, err)
	nbrs, err := h.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, nbrs)

	_, err = core.DuplicateVertex(g, 3)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = core.DuplicateVertex(nil, 0)
	require.ErrorIs(t, err, core.ErrGraphNil)
}

func TestDuplicateVertices_Chain(t *testing.T) {
	g := cycle5(t)
	h, err := core.DuplicateVertices(g, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 7, h.VertexCount())
	assert.True(t, h.Adjacent(5, 6), "second step duplicated the first duplicate")

	same, err := core.DuplicateVertices(g)
	require.NoError(t, err)
	assert.True(t, same.Equal(g))
	assert.NotSame(t, g, same)

	_, err = core.DuplicateVertices(g, 0, 99)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}
