package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/jetlaghelper/api/internal/config"
	"github.com/jetlaghelper/api/internal/database"
	"github.com/jetlaghelper/api/internal/flight"
	"github.com/jetlaghelper/api/internal/handler/health"
	"github.com/jetlaghelper/api/internal/migrations"
	"github.com/jetlaghelper/api/internal/server"
	"github.com/jetlaghelper/api/internal/subscribe"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	checks := map[string]health.Checker{}

	// --- SQLite (optional) ---
	var store subscribe.Store
	if cfg.DBPath != "" {
		db, err := openStore(ctx, logger, cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		sqlStore := subscribe.NewSQLiteStore(db)
		n, err := sqlStore.Count(ctx)
		if err != nil {
			return fmt.Errorf("counting subscribers: %w", err)
		}
		logger.Info("connected to sqlite", "path", cfg.DBPath, "subscribers", n)

		store = sqlStore
		checks["sqlite"] = health.CheckFunc(db.PingContext)
	} else {
		logger.Info("no DB_PATH set, subscriptions are logged only")
	}

	// --- Flight lookup ---
	flights := flight.NewClient(flight.Config{
		BaseURL:  cfg.OpenSky.BaseURL,
		Username: cfg.OpenSky.Username,
		Password: cfg.OpenSky.Password,
		Timeout:  cfg.OpenSky.Timeout,
	})
	logger.Info("flight lookup", "enabled", flights.Enabled())

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Deps{
		Subscriptions:  subscribe.NewService(logger, store),
		Flights:        flights,
		Checks:         checks,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		SiteDir:        cfg.SiteDir,
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

func openStore(ctx context.Context, logger *slog.Logger, path string) (*sql.DB, error) {
	db, err := database.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("connecting to sqlite: %w", err)
	}
	if err := migrations.Run(db, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}
