// SPDX-License-Identifier: MIT

// Package prime decides whether a core.Graph is a prime graph, a minimal prime
// graph, or a graph generated from a smaller minimal prime graph by vertex
// duplication.
//
// What
//
//   - IsPrimeGraph: more than two vertices, connected, complement triangle-free,
//     complement 3-colourable. Checks run in that order and stop early.
//   - IsMinimalPrimeGraph / Detail: additionally every edge of g is essential;
//     returning it to the complement must break triangle-freeness or
//     3-colourability. Detail collects every non-essential edge and a FailReason.
//   - IsGeneratedGraph / FindGenerator: some connected induced subgraph with
//     n fewer vertices is a minimal prime graph.
//
// Ownership
//
//	Every predicate builds its own complement and mutates only that copy; the
//	caller's graph is read, never written. Independent goroutines may evaluate
//	independent graphs without coordination.
//
// Errors
//
//   - ErrGraphNil, ErrOptionViolation, ErrInvalidOrder for bad arguments.
//   - ErrInconclusive, joined with the cause, when a colouring search or the
//     subgraph enumeration is cancelled or exceeds its budget. An inconclusive
//     predicate never reports false.
//
// Usage
//
//	ok, err := prime.IsPrimeGraph(g)
//	rep, err := prime.Detail(g, prime.WithContext(ctx))
//	if rep.Reason == prime.NotMinimal { fmt.Println(rep.BadEdges) }
package prime
