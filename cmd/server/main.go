package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"caseboard/internal/dataset"
	"caseboard/internal/platform/config"
	"caseboard/internal/platform/httpserver"
	"caseboard/internal/platform/logger"
	"caseboard/internal/selection"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Selection logic lives in internal/selection.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "caseboard: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("caseboard stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	data, err := dataset.Load(dataset.Source{
		Path:    cfg.Dataset.Path,
		Sheet:   cfg.Dataset.Sheet,
		Columns: columns(cfg.Dataset),
	})
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	engine, err := selection.New(data)
	if err != nil {
		return err
	}
	log.Info("dataset loaded",
		"path", cfg.Dataset.Path,
		"records", data.Len(),
		"districts", len(data.Regions()),
	)

	reg := prometheus.NewRegistry()
	router, err := newRouter(cfg, log, engine, reg)
	if err != nil {
		return err
	}

	srv := httpserver.New(cfg.Server.Addr, router, httpserver.Timeouts{
		ReadHeader: cfg.Server.ReadHeaderTimeout,
		Write:      cfg.Server.WriteTimeout,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting caseboard", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func columns(d config.Dataset) dataset.Columns {
	return dataset.Columns{
		Region:    d.RegionColumn,
		Active:    d.ActiveColumn,
		Deceased:  d.DeceasedColumn,
		Recovered: d.RecoveredColumn,
	}
}
