package version

import (
	"fmt"

	"github.com/spf13/cobra"

	harnessVersion "github.com/kelda/harness/pkg/version"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the harness version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), harnessVersion.Version)
		},
	}
}
