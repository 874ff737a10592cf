package main

import (
	"fmt"

	"github.com/aretw0/actionflow/internal/presentation/graph"
	"github.com/aretw0/actionflow/internal/presentation/tui"
	"github.com/aretw0/actionflow/pkg/document"
	"github.com/spf13/cobra"
)

func newDescribeCmd() *cobra.Command {
	describeCmd := &cobra.Command{
		Use:   "describe <file>",
		Short: "Show the actions of a pipeline document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			mermaid, _ := cmd.Flags().GetBool("mermaid")

			p, err := document.ParseFile(args[0])
			if err != nil {
				return err
			}
			if mermaid {
				fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(p, nil))
				return nil
			}

			reg, err := newRegistry(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			md := tui.Describe(p, reg.Has)
			if raw || !tui.IsTerminal(cmd.OutOrStdout()) {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}

			render, err := tui.NewRenderer(0)
			if err != nil {
				return err
			}
			out, err := render(md)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	describeCmd.Flags().Bool("raw", false, "Print markdown without terminal rendering")
	describeCmd.Flags().Bool("mermaid", false, "Print a Mermaid flowchart instead of a table")
	return describeCmd
}
