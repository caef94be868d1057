// Package commands implements the mxp CLI using Cobra.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "mxp",
	Short: "Tools for working with the MXP agent-to-agent protocol",
	Long: `mxp is a command-line tool for working with MXP: the binary wire
protocol and A2A semantic layer used for direct agent-to-agent messaging.

Commands:
  card    Print a sample AgentCard discovery document
  demo    Run an in-process A2A message exchange over the UDP overlay
  version Show version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
}
