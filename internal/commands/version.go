package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addVersion(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the habitbox version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "habitbox", Version)
		},
	}
	topLevel.AddCommand(cmd)
}
