package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"linviz/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of linviz",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "linviz version %s\n", buildinfo.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
