// SPDX-License-Identifier: MIT

// Package app wires the primegraph command tree.
package app

import (
	"github.com/spf13/cobra"
)

// Options are shared by every subcommand.
type Options struct {
	file   string
	output string
}

// New returns the root command with all subcommands attached.
func New() *cobra.Command {
	opts := &Options{output: formatYAML}

	maincmd := &cobra.Command{
		Use:   "primegraph <cmd> <args>",
		Short: "classify prime graphs",
		Long: `
Checks graphs for the prime, minimal prime, base and generated properties.

Graphs are given inline as expressions such as "0-1-2-3-4-0" or
"n=6: 0-1, 1-2; 3-4", or read with -f from a YAML/JSON file of the form
{name: ..., vertices: n, edges: [[u, v], ...]} ("-" reads stdin).
`,
		SilenceUsage:     true,
		TraverseChildren: true,
	}

	flags := maincmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", "graph file (YAML or JSON, - for stdin)")
	flags.StringVarP(&opts.output, "output", "o", opts.output, "output format: yaml or json")

	maincmd.AddCommand(NewCheck(opts))
	maincmd.AddCommand(NewTwins(opts))
	maincmd.AddCommand(NewDuplicate(opts))
	maincmd.AddCommand(NewScan(opts))
	return maincmd
}
