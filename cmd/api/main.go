// Package main is the entry point for the golf trips API server.
// It only wires dependencies together and runs the server.
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
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/golf-trips/internal/config"
	"github.com/pkordes/golf-trips/internal/handler"
	"github.com/pkordes/golf-trips/internal/kv"
	"github.com/pkordes/golf-trips/internal/metrics"
	"github.com/pkordes/golf-trips/internal/middleware"
	"github.com/pkordes/golf-trips/internal/repo"
	"github.com/pkordes/golf-trips/internal/roundstore"
	"github.com/pkordes/golf-trips/internal/service"
	"github.com/pkordes/golf-trips/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The JSON logger is not configured yet; the default handler writes to stderr.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	// --- Database ---------------------------------------------------------
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err := migrate(ctx, pool, logger); err != nil {
		return err
	}
	logger.Info("database ready")

	// --- Round storage ----------------------------------------------------
	backend, closeBackend, err := openRoundBackend(ctx, cfg, pool)
	if err != nil {
		return err
	}
	defer closeBackend()
	logger.Info("round store ready", "backend", cfg.RoundStore)

	rounds := roundstore.New(backend, logger.With("component", "roundstore"))

	// --- Services ---------------------------------------------------------
	m := metrics.New()
	tripRepo := repo.NewTripRepo(pool)
	courseRepo := repo.NewCourseRepo(pool)

	srv := handler.NewServer(handler.Deps{
		Trips:   service.NewTripService(tripRepo, rounds),
		Courses: service.NewCourseService(tripRepo, courseRepo),
		Rounds:  service.NewRoundService(tripRepo, rounds, m),
		Export:  service.NewExportService(tripRepo, courseRepo, rounds),
		Logger:  logger,
	})

	// --- Router -----------------------------------------------------------
	// Order matters: the request ID must exist before the logger reads it,
	// and Recoverer sits inside both so a panic is still logged and counted
	// as a 500.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(middleware.NewMetrics(m))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// migrate applies any pending goose migrations through a database/sql view of
// the pool.
func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := migrations.NewProvider(db)
	if err != nil {
		return err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, res := range results {
		logger.Info("migration applied", "version", res.Source.Version, "duration", res.Duration)
	}
	return nil
}

// openRoundBackend returns the kv.Store selected by cfg.RoundStore and a
// function releasing it.
func openRoundBackend(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) (kv.Store, func(), error) {
	switch cfg.RoundStore {
	case config.RoundStoreSQLite:
		s, err := kv.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case config.RoundStoreMemory:
		return kv.NewMemory(), func() {}, nil
	default:
		return repo.NewKVStore(pool), func() {}, nil
	}
}
