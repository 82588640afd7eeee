// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/primegraph/bfs"
	"github.com/katalvlaran/primegraph/graphexpr"
	"github.com/katalvlaran/primegraph/prime"
	"github.com/katalvlaran/primegraph/twins"
)

// CheckReport is the diagnostic printed by "check".
type CheckReport struct {
	Name       string   `json:"name"`
	Graph      string   `json:"graph"`
	Prime      bool     `json:"prime"`
	Minimal    bool     `json:"minimal"`
	Reason     string   `json:"reason"`
	Components [][]int  `json:"components,omitempty"`
	BadEdges   []string `json:"badEdges,omitempty"`
	Base       bool     `json:"base"`
	Twins      []string `json:"twins,omitempty"`
	Generated  *bool    `json:"generated,omitempty"`
	Generator  []int    `json:"generator,omitempty"`
}

type Check struct {
	cmd *cobra.Command

	mainopts  *Options
	generated int
	timeout   time.Duration
	maxSteps  int
}

func NewCheck(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check {<expr>} <options>",
		Short: "report prime, minimal, base and generated properties of a graph",
	}

	c := &Check{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.IntVarP(&c.generated, "generated", "g", 0, "also test generation by this many duplications (0 skips)")
	flags.DurationVarP(&c.timeout, "timeout", "t", 0, "abandon the check after this long (0 waits)")
	flags.IntVar(&c.maxSteps, "max-steps", 0, "colouring search budget per test (0 is unlimited)")
	return cmd
}

func (c *Check) Run(args []string) error {
	g, name, rest, err := loadGraph(c.mainopts, c.cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return errors.Errorf("unexpected arguments %v", rest)
	}

	ctx, cancel := withTimeout(c.cmd.Context(), c.timeout)
	defer cancel()
	popts := []prime.Option{prime.WithContext(ctx), prime.WithMaxColoringSteps(c.maxSteps)}

	rep, err := prime.Detail(g, popts...)
	if err != nil {
		return errors.Wrap(err, "minimality check")
	}
	expr, err := graphexpr.Format(g)
	if err != nil {
		return err
	}
	pairs, err := twins.Twins(g)
	if err != nil {
		return errors.Wrap(err, "twin check")
	}
	out := CheckReport{
		Name:    name,
		Graph:   expr,
		Prime:   rep.Prime(),
		Minimal: rep.Minimal(),
		Reason:  rep.Reason.String(),
		Base:    len(pairs) == 0,
	}
	if rep.Reason == prime.NotConnected {
		if out.Components, err = bfs.Components(g, bfs.WithContext(ctx)); err != nil {
			return errors.Wrap(err, "components")
		}
	}
	for _, e := range rep.BadEdges {
		out.BadEdges = append(out.BadEdges, e.String())
	}
	for _, p := range pairs {
		out.Twins = append(out.Twins, p.String())
	}
	if c.generated > 0 {
		set, found, err := prime.FindGenerator(g, c.generated, popts...)
		if err != nil {
			return errors.Wrap(err, "generated-graph check")
		}
		out.Generated = &found
		out.Generator = set
	}

	return write(c.cmd.OutOrStdout(), c.mainopts.output, out)
}

// withTimeout derives a context bounded by d; d ≤ 0 only adds cancellation.
func withTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if d <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, d)
}
