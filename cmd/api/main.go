// Package main is the entry point for the patro API server.
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

	"github.com/zapponejosh/patro-api/internal/api"
	"github.com/zapponejosh/patro-api/internal/calendar"
	"github.com/zapponejosh/patro-api/internal/config"
	"github.com/zapponejosh/patro-api/internal/database"
	"github.com/zapponejosh/patro-api/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Setup(cfg)

	log.Info("starting patro API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
		slog.Bool("strict_days", cfg.StrictDays),
	)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	seeded, err := calendar.EnsureSeeded(ctx, db)
	if err != nil {
		return err
	}
	if seeded {
		log.Info("seeded built-in calendar table")
	}

	table, err := calendar.LoadTable(ctx, db)
	if err != nil {
		return fmt.Errorf("load calendar table: %w", err)
	}

	var opts []calendar.Option
	if !cfg.StrictDays {
		opts = append(opts, calendar.WithLenientDays())
	}
	conv, err := calendar.New(table, opts...)
	if err != nil {
		return fmt.Errorf("build converter: %w", err)
	}
	log.Info("calendar table loaded",
		slog.Int("first_year", table.FirstYear()),
		slog.Int("last_year", table.LastYear()),
	)

	names, err := api.NewNames(cfg.DefaultLang)
	if err != nil {
		return err
	}

	handlers := api.NewHandlers(db, conv, cfg, log, api.NewMetrics(), names)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.SetupRoutes(handlers, cfg, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("patro API ready", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
