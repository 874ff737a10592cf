package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/actionflow"
	"github.com/aretw0/actionflow/internal/logging"
	"github.com/aretw0/actionflow/pkg/domain"
	"github.com/aretw0/actionflow/pkg/nodes"
	"github.com/aretw0/actionflow/pkg/observability"
	"github.com/aretw0/actionflow/pkg/registry"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "actionflow",
		Short:         "actionflow runs declarative pipelines of pluggable nodes",
		Long:          `actionflow executes pipeline documents (XML, YAML or JSON) whose actions pass data through a shared context.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(
		newRunCmd(),
		newValidateCmd(),
		newDescribeCmd(),
		newNodesCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute builds the command tree and runs it against os.Args.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger builds the logger selected by the persistent flags. Logs go to stderr
// so they never mix with pipeline output.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")

	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	return logging.New(level, format, cmd.ErrOrStderr()), nil
}

// newRegistry returns a sealed registry holding the built-in nodes.
func newRegistry(out io.Writer) (*registry.Registry, error) {
	reg := registry.New()
	if err := nodes.Register(reg, nodes.WithOutput(out)); err != nil {
		return nil, err
	}
	reg.Seal()
	return reg, nil
}

// newEngine wires the built-in registry and structured step logging.
func newEngine(cmd *cobra.Command, extra ...domain.LifecycleHooks) (*actionflow.Engine, *registry.Registry, *slog.Logger, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	reg, err := newRegistry(cmd.OutOrStdout())
	if err != nil {
		return nil, nil, nil, err
	}

	hooks := observability.Chain(append([]domain.LifecycleHooks{observability.LoggingHooks(logger)}, extra...)...)
	eng := actionflow.New(
		actionflow.WithRegistry(reg),
		actionflow.WithLogger(logger),
		actionflow.WithLifecycleHooks(hooks),
	)
	return eng, reg, logger, nil
}
