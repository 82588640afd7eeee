// SPDX-License-Identifier: MIT

package app

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/primegraph/prime"
	"github.com/katalvlaran/primegraph/survey"
)

// ScanReport is printed by "scan".
type ScanReport struct {
	RunID        string   `json:"runID"`
	Candidates   int      `json:"candidates"`
	Minimal      []string `json:"minimal"`
	Base         []string `json:"base"`
	Inconclusive []string `json:"inconclusive,omitempty"`
}

type Scan struct {
	cmd *cobra.Command

	mainopts  *Options
	from      int
	to        int
	workers   int
	generated bool
	timeout   time.Duration
	maxSteps  int
}

func NewScan(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <options>",
		Short: "search the complements of the triangle-free regular family for base minimal prime graphs",
	}

	c := &Scan{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.IntVar(&c.from, "from", 5, "smallest vertex count")
	flags.IntVar(&c.to, "to", 30, "largest vertex count")
	flags.IntVarP(&c.workers, "workers", "w", 0, "concurrent candidates (0 uses GOMAXPROCS)")
	flags.BoolVarP(&c.generated, "generated", "g", false, "also test generation by one duplication")
	flags.DurationVarP(&c.timeout, "timeout", "t", 0, "abandon the scan after this long (0 waits)")
	flags.IntVar(&c.maxSteps, "max-steps", 0, "colouring search budget per test (0 is unlimited)")
	return cmd
}

func (c *Scan) Run(args []string) error {
	if len(args) != 0 {
		return errors.Errorf("no arguments expected")
	}
	cands, err := survey.TriangleFreeRegularFamily(c.from, c.to)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(c.cmd.Context(), c.timeout)
	defer cancel()
	sopts := []survey.Option{
		survey.WithGenerated(c.generated),
		survey.WithPredicateOptions(prime.WithMaxColoringSteps(c.maxSteps)),
	}
	if c.workers > 0 {
		sopts = append(sopts, survey.WithWorkers(c.workers))
	}
	res, err := survey.Run(ctx, cands, sopts...)
	if err != nil {
		return errors.Wrap(err, "scan")
	}

	out := ScanReport{
		RunID:      res.RunID.String(),
		Candidates: len(res.Outcomes),
		Minimal:    []string{},
		Base:       []string{},
	}
	out.Base = append(out.Base, res.Base...)
	for _, o := range res.Outcomes {
		switch o.Verdict() {
		case survey.VerdictMinimal:
			out.Minimal = append(out.Minimal, o.Name)
		case survey.VerdictInconclusive:
			out.Inconclusive = append(out.Inconclusive, o.Name)
		}
	}

	return write(c.cmd.OutOrStdout(), c.mainopts.output, out)
}
