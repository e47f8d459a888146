package main

import (
	"github.com/aretw0/transducer/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <definition>",
	Short: "Run a machine on undefined inputs",
	Long: `Runs the machine for a number of steps, feeding it undefined inputs.
This suits generators such as counters and the Fibonacci machine.
The number of steps defaults to the definition's 'steps', else 10.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd, args[0])
		if cmd.Flags().Changed("steps") {
			opts.Steps, _ = cmd.Flags().GetInt("steps")
		}
		opts.Watch, _ = cmd.Flags().GetBool("watch")
		return cli.Execute(opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("steps", "n", 10, "Number of steps (default: the definition's steps)")
	runCmd.Flags().BoolP("watch", "w", false, "Rerun every time the definition changes")
	addOutputFlags(runCmd)
}
