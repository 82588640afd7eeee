// Package builder_test checks topology, counts and error contracts of every constructor.
package builder_test

import (
	"errors"
	"testing"

	"github.com/go-test/deep"

	"github.com/katalvlaran/primegraph/builder"
	"github.com/katalvlaran/primegraph/core"
	"github.com/katalvlaran/primegraph/triangle"
)

// degrees returns the degree sequence in vertex order.
func degrees(t *testing.T, g *core.Graph) []int {
	t.Helper()
	out := make([]int, g.VertexCount())
	for v := range out {
		d, err := g.Degree(v)
		if err != nil {
			t.Fatalf("Degree(%d): %v", v, err)
		}
		out[v] = d
	}
	return out
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctor    builder.Constructor
		wantV   int
		wantE   int
		wantDeg []int
	}{
		{"Empty(3)", builder.Empty(3), 3, 0, []int{0, 0, 0}},
		{"Path(4)", builder.Path(4), 4, 3, []int{1, 2, 2, 1}},
		{"Cycle(5)", builder.Cycle(5), 5, 5, []int{2, 2, 2, 2, 2}},
		{"Complete(4)", builder.Complete(4), 4, 6, []int{3, 3, 3, 3}},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), 5, 6, []int{3, 3, 2, 2, 2}},
		{"Star(4)", builder.Star(4), 4, 3, []int{3, 1, 1, 1}},
		{"Wheel(5)", builder.Wheel(5), 5, 8, []int{3, 3, 3, 3, 4}},
		{"Circulant(6,1,3)", builder.Circulant(6, 1, 3), 6, 9, []int{3, 3, 3, 3, 3, 3}},
		{"TriangleFreeRegular(8,3)", builder.TriangleFreeRegular(8, 3), 8, 12, []int{3, 3, 3, 3, 3, 3, 3, 3}},
		{"TriangleFreeRegularComplement(8,3)", builder.TriangleFreeRegularComplement(8, 3), 8, 16, []int{4, 4, 4, 4, 4, 4, 4, 4}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(tc.ctor)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("VertexCount = %d, want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("EdgeCount = %d, want %d", got, tc.wantE)
			}
			if diff := deep.Equal(degrees(t, g), tc.wantDeg); diff != nil {
				t.Errorf("degrees: %v", diff)
			}
		})
	}
}

// TestBuild_DisjointBlocks verifies that constructors append disjoint blocks.
func TestBuild_DisjointBlocks(t *testing.T) {
	g, err := builder.Build(builder.Cycle(3), builder.Path(2))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}, {U: 3, V: 4}}
	if diff := deep.Equal(g.Edges(), want); diff != nil {
		t.Error(diff)
	}
}

// TestTriangleFreeRegular_Family checks the TFRG family against its definition.
func TestTriangleFreeRegular_Family(t *testing.T) {
	// TFRG_5_1 is C5; its complement is the pentagram 0-2-4-1-3.
	g := builder.MustBuild(builder.TriangleFreeRegular(5, 1))
	if !g.Equal(builder.MustBuild(builder.Cycle(5))) {
		t.Errorf("TFRG_5_1 != C5: %v", g.Edges())
	}
	gc := builder.MustBuild(builder.TriangleFreeRegularComplement(5, 1))
	if !gc.Equal(builder.MustBuild(builder.Circulant(5, 2))) {
		t.Errorf("TFRG_5_1_c != C5(2): %v", gc.Edges())
	}

	for n := 5; n <= 14; n++ {
		for k := (n + 2) / 6; k <= n-2; k++ {
			g := builder.MustBuild(builder.TriangleFreeRegular(n, k))
			gc := builder.MustBuild(builder.TriangleFreeRegularComplement(n, k))
			if !gc.Equal(g.Complement()) {
				t.Errorf("%s is not the complement of %s", builder.Name(n, k, true), builder.Name(n, k, false))
			}
			for u := 0; u < n; u++ {
				for v := u + 1; v < n; v++ {
					d := v - u
					want := (d >= k && d <= 2*k-1) || (n-d >= k && n-d <= 2*k-1)
					if g.Adjacent(u, v) != want {
						t.Errorf("%s: adjacency(%d,%d) = %v, want %v", builder.Name(n, k, false), u, v, !want, want)
					}
				}
			}
		}
	}

	if free, err := triangle.IsTriangleFree(builder.MustBuild(builder.TriangleFreeRegular(8, 3))); err != nil || !free {
		t.Errorf("TFRG_8_3 should be triangle-free: free=%v err=%v", free, err)
	}
}

// TestName renders family labels.
func TestName(t *testing.T) {
	if got := builder.Name(11, 3, false); got != "TFRG_11_3" {
		t.Errorf("Name = %q", got)
	}
	if got := builder.Name(11, 3, true); got != "TFRG_11_3_c" {
		t.Errorf("Name = %q", got)
	}
}

// TestRandomSparse checks determinism and the degenerate probabilities.
func TestRandomSparse(t *testing.T) {
	a, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(9)}, builder.RandomSparse(12, 0.3))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(9)}, builder.RandomSparse(12, 0.3))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if !a.Equal(b) {
		t.Error("same seed produced different graphs")
	}

	full, err := builder.Build(builder.RandomSparse(5, 1))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if full.EdgeCount() != 10 {
		t.Errorf("p=1 EdgeCount = %d, want 10", full.EdgeCount())
	}
	none, err := builder.Build(builder.RandomSparse(5, 0))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if none.EdgeCount() != 0 {
		t.Errorf("p=0 EdgeCount = %d, want 0", none.EdgeCount())
	}
}

// TestBuilders_Errors verifies sentinel errors for invalid parameters.
func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Empty(-1)", builder.Empty(-1), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Circulant(5,0)", builder.Circulant(5, 0), builder.ErrBadParameter},
		{"Circulant(5,5)", builder.Circulant(5, 5), builder.ErrBadParameter},
		{"TriangleFreeRegular(6,0)", builder.TriangleFreeRegular(6, 0), builder.ErrBadParameter},
		{"TriangleFreeRegularComplement(6,6)", builder.TriangleFreeRegularComplement(6, 6), builder.ErrBadParameter},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,0.5) without rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		if _, err := builder.Build(tc.ctor); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

// TestWithRandNilPanics verifies option constructors fail fast.
func TestWithRandNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithRand(nil) did not panic")
		}
	}()
	builder.WithRand(nil)
}
