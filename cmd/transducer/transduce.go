package main

import (
	"github.com/aretw0/transducer/internal/cli"
	"github.com/spf13/cobra"
)

var transduceCmd = &cobra.Command{
	Use:   "transduce <definition>",
	Short: "Run a machine over a sequence of inputs",
	Long: `Feeds the machine one input per step and prints one output per step.
Inputs come from --input (repeatable), --inputs-file (a YAML or JSON list),
or else the definition's 'inputs'. Values are numbers, 'undefined', or pairs
written as (a, b) or [a, b].`,
	Example: `  transducer transduce examples/definitions/running-sum.yaml --input 1 --input 2
  transducer transduce sum.yaml --input "(1, 2)" --input "(3, undefined)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd, args[0])
		opts.Inputs, _ = cmd.Flags().GetStringArray("input")
		opts.InputsFile, _ = cmd.Flags().GetString("inputs-file")
		return cli.ExecuteTransduce(opts)
	},
}

func init() {
	rootCmd.AddCommand(transduceCmd)

	transduceCmd.Flags().StringArrayP("input", "i", nil, "Input value (repeatable)")
	transduceCmd.Flags().String("inputs-file", "", "YAML or JSON file holding a list of inputs")
	transduceCmd.MarkFlagsMutuallyExclusive("input", "inputs-file")
	addOutputFlags(transduceCmd)
}
