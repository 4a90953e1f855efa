package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"space-catalog/shipyard/internal/api"
	"space-catalog/shipyard/internal/db"
	"space-catalog/shipyard/internal/errors"
	"space-catalog/shipyard/internal/logging"
	"space-catalog/shipyard/internal/routes"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ship catalog HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	logging.Info("Shipyard starting up",
		"environment", cfg.AppEnv,
		"db_driver", cfg.DB.Driver,
		"cache_backend", cfg.Cache.Backend,
	)

	gormDB, err := db.InitORM(cfg.DB)
	if err != nil {
		return err
	}
	if cfg.DB.AutoMigrate {
		if err := db.Migrate(gormDB); err != nil {
			return err
		}
	}

	sqlxDB, err := db.InitSQLX(cfg.DB, gormDB)
	if err != nil {
		return err
	}
	defer sqlxDB.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps, err := api.InitDependencies(cfg, gormDB, sqlxDB, reg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize dependencies")
	}
	defer deps.Close()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           routes.RegisterRoutes(cfg, deps, time.Now()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Info("Server starting", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server failed")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logging.Info("Server stopped gracefully")
	return nil
}
