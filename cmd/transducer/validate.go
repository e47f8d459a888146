package main

import (
	"fmt"

	"github.com/aretw0/transducer/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <definition>",
	Short: "Check a definition for consistency",
	Long: `Compiles the definition, dry-runs it and checks every feedback loop:
a loop's output must not depend on the value fed back in the same step,
and it must become defined at some point.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, _ := cmd.Flags().GetInt("steps")
		if err := cli.Validate(args[0], steps, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().IntP("steps", "n", 0, "Length of the dry run (default: the definition's steps)")
}
