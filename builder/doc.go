// Package builder assembles deterministic core.Graph fixtures from composable
// constructors: paths, cycles, complete and complete bipartite graphs, stars,
// wheels, circulants, random G(n,p) samples, and the triangle-free regular
// family TFRG_n_k together with its complement.
//
// Each Constructor appends its own block of fresh vertices, so
//
//	g, err := builder.Build(builder.Cycle(5), builder.Complete(3))
//
// is the disjoint union of C5 on 0..4 and K3 on 5..7.
//
// Guarantees:
//
//   - Constructors validate parameters before touching the graph and never panic.
//   - Errors wrap a package sentinel (ErrTooFewVertices, ErrBadParameter,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed) with the
//     method name; branch with errors.Is.
//   - Option constructors panic on meaningless input (WithRand(nil)).
//   - Same constructors, options and seed give identical graphs.
package builder
