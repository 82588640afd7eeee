// Package primegraph classifies finite simple undirected graphs as prime
// graphs, minimal prime graphs, base graphs, and graphs generated from a
// minimal prime graph by vertex duplication.
//
// 🚀 What is primegraph?
//
//	A small, dependency-light toolkit that brings together:
//		• Core primitives: bitset-backed graphs on vertices 0..n-1, complement,
//		  induced subgraphs and vertex duplication
//		• Traversal: BFS with depth limits, connectivity and components
//		• Triangle detection and an exact 3-colouring search with budgets
//		• Prime, minimal prime and generated-graph predicates with diagnostics
//		• Twin detection for base graphs
//		• A compact textual notation, a parallel survey driver and a CLI
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      Graph, Edge, complement, induced subgraphs, DuplicateVertex
//	bfs/       breadth-first search, IsConnected, Components
//	triangle/  IsTriangleFree, FindTriangle, ClosesTriangle
//	coloring/  ThreeColorable, Find, Verify
//	subgraph/  lazy enumeration of connected k-vertex subsets
//	prime/     IsPrimeGraph, IsMinimalPrimeGraph, Detail, IsGeneratedGraph
//	twins/     Twins, AreTwins, IsBaseGraph
//	builder/   deterministic fixtures (cycles, wheels, circulants, TFRG family)
//	graphexpr/ "n=6: 0-1-2, 3-4" parsing and formatting
//	survey/    concurrent classification of candidate batches
//	cmd/primegraph command line front end
//
// Quick Start:
//
//	g := graphexpr.MustParse("0-1-2-3-4-0")
//	ok, err := prime.IsMinimalPrimeGraph(g) // true, nil
//
// See examples/ for a walkthrough program.
package primegraph
