// SPDX-License-Identifier: MIT

// Package survey classifies batches of candidate graphs in parallel: for each
// candidate it runs the detailed minimal-prime check, counts twin pairs, and
// optionally tests whether the graph is generated by one vertex duplication.
//
// Candidates are independent; each worker reads its own candidate graph and
// builds its own complements, so nothing is shared between goroutines except
// the result slot it writes. Progress is logged through klog and, with
// WithMetrics, counted in Prometheus collectors.
//
//	cands, _ := survey.TriangleFreeRegularFamily(5, 30)
//	res, err := survey.Run(ctx, cands, survey.WithWorkers(8))
//	fmt.Println(res.Base)
package survey
