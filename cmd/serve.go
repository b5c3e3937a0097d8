package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "funnel-engine/internal/adapter/http"
	"funnel-engine/internal/config"
	"funnel-engine/internal/db"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var demoVisitors int

func init() {
	serveCmd.Flags().IntVar(&demoVisitors, "demo-visitors", 200,
		"synthetic visitors replayed into the demo campaign when STORAGE_DRIVER=memory")
}

// runServe loads configuration, wires storage and use cases, then serves
// HTTP until SIGINT or SIGTERM and shuts down gracefully.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, cfg, logger, cfg.Psql.RunMigrations)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.memory != nil {
		c := a.memory.SeedDemo(db.DemoSlug)
		r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 7))
		if err = db.SeedTraffic(ctx, a.funnel, c.Slug, demoVisitors, r); err != nil {
			return fmt.Errorf("seed demo traffic: %w", err)
		}
		logger.Info("demo campaign ready",
			slog.String("slug", c.Slug),
			slog.Int64("campaign_id", c.ID),
			slog.Int("visitors", demoVisitors))
	}

	handler := httpadapter.NewHandler(a.funnel, a.analytics, logger, httpadapter.Options{
		CookieTTL: cfg.Funnel.CookieTTL,
		Metrics:   a.metrics,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
