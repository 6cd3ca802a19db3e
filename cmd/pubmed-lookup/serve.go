// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-lookup/internal/entrez"
	"github.com/pdiddy/pubmed-lookup/internal/logging"
	"github.com/pdiddy/pubmed-lookup/internal/lookup"
	"github.com/pdiddy/pubmed-lookup/internal/metrics"
	"github.com/pdiddy/pubmed-lookup/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lookup web form",
	Long: `Serve starts an HTTP server with a one-field form. Submitting a title runs
one PubMed lookup and shows the first author, publication date, journal and
citation, or the reason the lookup did not succeed.

Besides the form, the server answers GET /api/lookup?title=... with JSON,
GET /healthz, and GET /metrics for Prometheus.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8501)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	logger, err := logging.New(os.Stderr, cfg.Log)
	if err != nil {
		return err
	}

	client := entrez.NewClient(nil, cfg.Entrez)
	srv, err := web.New(lookup.New(client, client), metrics.New(), logger)
	if err != nil {
		return fmt.Errorf("building server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(cfg.Server.Addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return <-errCh
}
