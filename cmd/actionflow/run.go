package main

import (
	"fmt"
	"io"

	"github.com/aretw0/actionflow"
	"github.com/aretw0/actionflow/internal/presentation/graph"
	"github.com/aretw0/actionflow/internal/presentation/tui"
	"github.com/aretw0/actionflow/pkg/document"
	"github.com/aretw0/actionflow/pkg/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newRunCmd represents the run command
func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run <file>...",
		Short: "Execute one or more pipeline documents",
		Long: `Executes the given pipeline documents in order over one shared context,
so later documents can read what earlier ones wrote. The first failing action stops the run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, _ := cmd.Flags().GetStringToString("set")
			dump, _ := cmd.Flags().GetBool("dump")
			mermaid, _ := cmd.Flags().GetBool("mermaid")

			eng, _, _, err := newEngine(cmd)
			if err != nil {
				return err
			}

			c := domain.NewContext()
			for k, v := range set {
				c.Set(k, v)
			}

			out := cmd.OutOrStdout()
			var report func(string, domain.Pipeline, actionflow.Result)
			if mermaid {
				report = func(_ string, pl domain.Pipeline, res actionflow.Result) {
					fmt.Fprint(out, graph.GenerateMermaid(pl, graph.NewRunOverlay(res.Completed, res.Err)))
				}
			}
			if err := runFiles(eng, c, args, tui.NewPrinter(out), report); err != nil {
				return err
			}
			if dump {
				return dumpContext(out, c)
			}
			return nil
		},
	}

	runCmd.Flags().StringToStringP("set", "s", nil, "Seed the context with string values (key=value)")
	runCmd.Flags().Bool("dump", false, "Print the final context as YAML")
	runCmd.Flags().Bool("mermaid", false, "Print a Mermaid flowchart of each run, colored by outcome")
	return runCmd
}

// runFiles parses every file before running any of them, then executes them in order over c.
// report, when non-nil, sees the result of every executed file, the failing one included.
func runFiles(eng *actionflow.Engine, c *domain.Context, files []string, p *tui.Printer, report func(string, domain.Pipeline, actionflow.Result)) error {
	pipelines := make([]domain.Pipeline, 0, len(files))
	for _, file := range files {
		pl, err := document.ParseFile(file)
		if err != nil {
			return err
		}
		pipelines = append(pipelines, pl)
	}

	for i, pl := range pipelines {
		res := eng.ExecuteWithInput(pl, c, p.Error, p.Step)
		if report != nil {
			report(files[i], pl, res)
		}
		if !res.OK() {
			return fmt.Errorf("%s: stopped at step %d of %d", files[i], res.Err.Index+1, res.Total)
		}
		p.Info(fmt.Sprintf("%s: %d action(s) completed", files[i], res.Completed))
	}
	return nil
}

func dumpContext(w io.Writer, c *domain.Context) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.Snapshot()); err != nil {
		return fmt.Errorf("failed to dump context: %w", err)
	}
	return enc.Close()
}
