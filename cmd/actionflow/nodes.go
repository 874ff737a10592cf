package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNodesCmd() *cobra.Command {
	nodesCmd := &cobra.Command{
		Use:   "nodes",
		Short: "List the registered node classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := newRegistry(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			for _, name := range reg.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	return nodesCmd
}
