package main

import (
	"github.com/aretw0/transducer/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <definition>",
	Short: "Export the machine as a diagram",
	Long:  `Outputs a Mermaid flowchart (graph LR) of the machine's composition, with feedback loops drawn as dotted back-edges.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Graph(args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
