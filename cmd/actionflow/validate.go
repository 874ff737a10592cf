package main

import (
	"fmt"

	"github.com/aretw0/actionflow/internal/validator"
	"github.com/aretw0/actionflow/pkg/document"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check pipeline documents without running them",
		Long: `Parses each document and reports actions whose node class is not registered.
Inputs that no earlier action writes are listed as warnings; they must be seeded with run --set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, _, err := newEngine(cmd)
			if err != nil {
				return err
			}

			failed := 0
			for _, file := range args {
				p, err := document.ParseFile(file)
				if err == nil {
					err = eng.Validate(p)
				}
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", file, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: valid ✅\n", file)
				for _, w := range validator.UnboundInputs(p) {
					fmt.Fprintf(cmd.OutOrStdout(), "  warning: %s\n", w)
				}
			}
			if failed > 0 {
				return fmt.Errorf("validation failed for %d document(s)", failed)
			}
			return nil
		},
	}
	return validateCmd
}
