package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/transducer"
	"github.com/aretw0/transducer/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of transducer",
	Run: func(cmd *cobra.Command, args []string) {
		if banner, _ := cmd.Flags().GetBool("banner"); banner {
			tui.PrintBanner(cmd.OutOrStdout(), strings.TrimSpace(transducer.Version))
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "transducer version %s\n", strings.TrimSpace(transducer.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().Bool("banner", false, "Print the version inside the banner")
}
