package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/aretw0/actionflow/internal/adapters/http"
	"github.com/aretw0/actionflow/internal/presentation/tui"
	"github.com/aretw0/actionflow/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Serves pipeline runs over HTTP (POST /run) and exposes Prometheus metrics on /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetString("port")

			promReg := prometheus.NewRegistry()
			promReg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			metrics, err := observability.NewMetrics(promReg)
			if err != nil {
				return err
			}

			// PrintInputNode writes to stderr while serving.
			cmd.SetOut(cmd.ErrOrStderr())
			eng, reg, logger, err := newEngine(cmd, metrics.Hooks())
			if err != nil {
				return err
			}

			handler := httpAdapter.NewHandler(&httpAdapter.Server{
				Engine:   eng,
				Catalog:  reg,
				Gatherer: promReg,
				Logger:   logger,
			})

			srv := &http.Server{
				Addr:              ":" + port,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			printer := tui.NewPrinter(cmd.ErrOrStderr())
			printer.Banner()

			// Cancelled on interrupt or terminate signals.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				printer.Info(fmt.Sprintf("Starting actionflow server on %s", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server error: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				<-gCtx.Done()
				logger.Info("shutdown started")

				// Give outstanding requests a deadline for completion.
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := srv.Shutdown(shutdownCtx); err != nil {
					logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
					if err := srv.Close(); err != nil {
						return fmt.Errorf("error killing server: %w", err)
					}
				}
				return nil
			})

			if err := g.Wait(); err != nil {
				return err
			}
			printer.Info("actionflow server stopped gracefully")
			return nil
		},
	}

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	return serveCmd
}
