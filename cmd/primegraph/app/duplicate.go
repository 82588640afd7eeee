// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/primegraph/core"
	"github.com/katalvlaran/primegraph/graphexpr"
)

type Duplicate struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewDuplicate(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duplicate {<expr>} <vertex> {<vertex>}",
		Short: "duplicate vertices and print the resulting graph expression",
		Long: `
Each listed vertex gets a copy joined to the vertex and to all its
neighbours. Vertices are processed in argument order and each one refers to
the graph produced so far, so a copy (numbered after the existing vertices)
may itself be duplicated.
`,
	}

	c := &Duplicate{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Duplicate) Run(args []string) error {
	g, _, rest, err := loadGraph(c.mainopts, c.cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("at least one vertex required")
	}
	vs := make([]int, len(rest))
	for i, a := range rest {
		if vs[i], err = strconv.Atoi(a); err != nil {
			return errors.Wrapf(err, "invalid vertex %q", a)
		}
	}

	dup, err := core.DuplicateVertices(g, vs...)
	if err != nil {
		return errors.Wrap(err, "duplicate")
	}
	expr, err := graphexpr.Format(dup)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.cmd.OutOrStdout(), expr)
	return err
}
