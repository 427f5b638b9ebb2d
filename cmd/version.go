package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/relscan/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of relscan",
	Long:  `Displays the version of relscan.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "relscan %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
