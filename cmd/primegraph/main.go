// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/primegraph/cmd/primegraph/app"
)

func main() {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")

	pflag.CommandLine.AddGoFlagSet(fset)

	cmd := app.New()
	cmd.PersistentFlags().AddFlagSet(pflag.CommandLine)
	cmd.SetArgs(os.Args[1:])
	err := cmd.Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}
