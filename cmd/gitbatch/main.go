package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitbatch",
		Short: "Batch git operation runner",
		Long: `A CLI tool for running ordered batches of git operations from a JSON
definition file. Supports credential injection for remote operations,
patch application, and continue-on-error execution.`,
	}

	// Add subcommands
	cmd.AddCommand(
		newRunCmd(),
		newOpsCmd(),
	)

	return cmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
