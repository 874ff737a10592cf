package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/actionflow"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of actionflow",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "actionflow version %s\n", strings.TrimSpace(actionflow.Version))
		},
	}
	return versionCmd
}
