// SPDX-License-Identifier: MIT

package app

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/primegraph/twins"
)

// TwinsReport is printed by "twins".
type TwinsReport struct {
	Name  string   `json:"name"`
	Base  bool     `json:"base"`
	Pairs []string `json:"pairs"`
}

type Twins struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewTwins(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twins {<expr>} <options>",
		Short: "list twin vertex pairs",
	}

	c := &Twins{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Twins) Run(args []string) error {
	g, name, rest, err := loadGraph(c.mainopts, c.cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return errors.Errorf("unexpected arguments %v", rest)
	}

	pairs, err := twins.Twins(g)
	if err != nil {
		return errors.Wrap(err, "twin check")
	}
	out := TwinsReport{Name: name, Pairs: []string{}}
	for _, p := range pairs {
		out.Pairs = append(out.Pairs, p.String())
	}
	out.Base = len(out.Pairs) == 0

	return write(c.cmd.OutOrStdout(), c.mainopts.output, out)
}
