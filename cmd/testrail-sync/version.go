package main

import (
	"github.com/spf13/cobra"

	"github.com/rwx-research/testrail-sync/internal/cli"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of testrail-sync",
	Long:  descriptionVersion,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cli.Service{Log: newLogger(false)}.PrintVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
