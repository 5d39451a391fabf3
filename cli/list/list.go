package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kelda/harness/ci/examples"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the names of the registered suites",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, s := range examples.All() {
				fmt.Fprintln(cmd.OutOrStdout(), s.Name)
			}
		},
	}
}
