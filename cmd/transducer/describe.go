package main

import (
	"github.com/aretw0/transducer/internal/cli"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <definition>",
	Short: "Show the structure and start states of a machine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Describe(args[0], cmd.OutOrStdout(), globalOptions(cmd).NoColor)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
