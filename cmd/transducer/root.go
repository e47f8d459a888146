package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/transducer/internal/cli"
	"github.com/aretw0/transducer/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "transducer",
	Short: "Transducer composes and runs discrete-time state machines",
	Long: `Transducer loads machine definitions (YAML or JSON) built from delays,
parallel and cascade compositions and feedback loops, and runs them step by step.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		noColor, _ := rootCmd.PersistentFlags().GetBool("no-color")
		printError(os.Stderr, noColor, err)
		os.Exit(1)
	}
}

// printError reports a failed command, in red when w is a terminal.
func printError(w io.Writer, noColor bool, err error) {
	fmt.Fprintln(w, tui.NewFormatter(w, noColor).Error("Error: "+err.Error()))
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Log every step to stderr")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format when --debug is set (text, json)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

func globalOptions(cmd *cobra.Command) cli.GlobalOptions {
	debug, _ := cmd.Flags().GetBool("debug")
	logFormat, _ := cmd.Flags().GetString("log-format")
	noColor, _ := cmd.Flags().GetBool("no-color")
	return cli.GlobalOptions{Debug: debug, LogFormat: logFormat, NoColor: noColor}
}

// addOutputFlags registers the flags shared by run and transduce.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Print outputs as a JSON array")
	cmd.Flags().Bool("jsonl", false, "Print one JSON object per step")
	cmd.Flags().Bool("table", false, "Print a table of steps after the run")
	cmd.Flags().Bool("show-inputs", false, "Prefix each output with its step index and input")
	cmd.Flags().Bool("skip-undefined", false, "Hide steps whose output is still undefined")
	cmd.Flags().Int("every", 1, "Print one step out of N")
	cmd.Flags().Bool("metrics", false, "Print Prometheus metrics after the run")
	cmd.MarkFlagsMutuallyExclusive("json", "jsonl", "table")
}

// runOptions reads the shared flags of run and transduce.
func runOptions(cmd *cobra.Command, path string) cli.RunOptions {
	opts := cli.RunOptions{
		GlobalOptions: globalOptions(cmd),
		Path:          path,
		Steps:         -1,
		Output:        cli.OutputText,
		Stdout:        cmd.OutOrStdout(),
		Stderr:        cmd.ErrOrStderr(),
	}

	if v, _ := cmd.Flags().GetBool("json"); v {
		opts.Output = cli.OutputJSON
	}
	if v, _ := cmd.Flags().GetBool("jsonl"); v {
		opts.Output = cli.OutputJSONL
	}
	if v, _ := cmd.Flags().GetBool("table"); v {
		opts.Output = cli.OutputTable
	}
	opts.ShowInputs, _ = cmd.Flags().GetBool("show-inputs")
	opts.SkipUndefined, _ = cmd.Flags().GetBool("skip-undefined")
	opts.Every, _ = cmd.Flags().GetInt("every")
	opts.Metrics, _ = cmd.Flags().GetBool("metrics")
	return opts
}
