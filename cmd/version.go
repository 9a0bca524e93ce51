package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobbs/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobbs",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		fmt.Fprintln(cmd.OutOrStdout(), "Bar Bending Schedule Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
