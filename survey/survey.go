// SPDX-License-Identifier: MIT

package survey

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/primegraph/prime"
	"github.com/katalvlaran/primegraph/twins"
)

// generatedOrder is the duplication count used by WithGenerated.
const generatedOrder = 1

// Run classifies every candidate, at most Workers at a time.
//
// Per-candidate failures (inconclusive predicates, nil graphs) are recorded on
// the Outcome and do not stop the run. Cancellation of ctx stops the run and
// is returned.
func Run(ctx context.Context, cands []Candidate, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{RunID: uuid.New(), Outcomes: make([]Outcome, len(cands))}
	klog.Infof("survey %s: %d candidates, %d workers", res.RunID, len(cands), o.Workers)
	start := time.Now()

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(o.Workers)
	for i := range cands {
		i := i
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out := evaluate(gctx, cands[i], o)
			if out.Err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			res.Outcomes[i] = out
			o.Metrics.observe(out)
			logOutcome(out)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("survey %s: %w", res.RunID, err)
	}

	for _, out := range res.Outcomes {
		if out.Err == nil && out.Minimal && out.Base {
			res.Base = append(res.Base, out.Name)
		}
	}
	klog.Infof("survey %s: done in %s, %d base minimal prime graphs", res.RunID, time.Since(start), len(res.Base))

	return res, nil
}

// evaluate runs the full pipeline for one candidate. The graph is only read;
// every predicate works on its own complement.
func evaluate(ctx context.Context, c Candidate, o Options) Outcome {
	start := time.Now()
	out := Outcome{Name: c.Name}

	popts := append(append([]prime.Option(nil), o.Predicate...), prime.WithContext(ctx))
	rep, err := prime.Detail(c.Graph, popts...)
	if err != nil {
		out.Err = err
		out.Elapsed = time.Since(start)
		return out
	}
	out.Report = rep
	out.Prime = rep.Prime()
	out.Minimal = rep.Minimal()
	pairs, err := twins.Twins(c.Graph)
	if err != nil {
		out.Err = err
		out.Elapsed = time.Since(start)
		return out
	}
	out.Base = len(pairs) == 0
	out.Twins = len(pairs)

	if o.Generated {
		out.Generated, out.Err = prime.IsGeneratedGraph(c.Graph, generatedOrder, popts...)
	}
	out.Elapsed = time.Since(start)

	return out
}

// logOutcome reports one finished candidate.
func logOutcome(out Outcome) {
	if out.Err != nil {
		if errors.Is(out.Err, prime.ErrInconclusive) {
			klog.Warningf("%s: inconclusive: %v", out.Name, out.Err)
		} else {
			klog.Warningf("%s: %v", out.Name, out.Err)
		}
		return
	}
	klog.V(2).Infof("%s: %s (twins=%d, %s)", out.Name, out.Report, out.Twins, out.Elapsed)
}
