package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kelda/harness/cli/list"
	"github.com/kelda/harness/cli/run"
	"github.com/kelda/harness/cli/util"
	"github.com/kelda/harness/cli/version"
	"github.com/kelda/harness/pkg/errors"
)

func main() {
	var flags util.GlobalFlags
	rootCmd := &cobra.Command{
		Use:   "harness",
		Short: "Run unit-test suites and report the results",

		// Errors are printed below, so we silence them here to avoid double
		// printing.
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	flags.Register(rootCmd)
	rootCmd.AddCommand(
		list.New(),
		run.New(&flags),
		version.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		// The summary has already been printed.
		if err != run.ErrTestsFailed {
			errors.PrintFatalError(os.Stderr, err, flags.ColorEnabled())
		}
		os.Exit(1)
	}
}
