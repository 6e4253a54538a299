package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NicabarNimble/go-gitrunner/internal/gitcmd"
)

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List supported operations",
		Long:  `List the operation names accepted in a batch definition file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, op := range gitcmd.Operations() {
				fmt.Fprintln(cmd.OutOrStdout(), op)
			}
			return nil
		},
	}
}
