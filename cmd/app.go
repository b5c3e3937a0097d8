package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"funnel-engine/internal/adapter/cache"
	"funnel-engine/internal/adapter/memory"
	"funnel-engine/internal/adapter/postgres"
	"funnel-engine/internal/adapter/usecase"
	"funnel-engine/internal/adapter/webhook"
	"funnel-engine/internal/config"
	"funnel-engine/internal/config/configs"
	"funnel-engine/internal/core/port"
	"funnel-engine/internal/db"
	"funnel-engine/internal/metrics"
)

// newLogger initialises the structured logger from configuration.
func newLogger(cfg configs.Logger) *slog.Logger {
	return slog.New(cfg.Handler(os.Stdout))
}

// app holds the wired components shared by the commands.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	repo      port.FunnelRepository
	pool      *pgxpool.Pool      // set for the postgres driver only
	memory    *memory.Repository // set for the memory driver only
	funnel    *usecase.FunnelUseCase
	analytics *usecase.AnalyticsUseCase
	metrics   *metrics.Metrics

	closers []func()
}

// Close releases everything opened by newApp in reverse order.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// newApp wires storage, the campaign cache, the registration listener and
// both use cases from configuration.
func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger, runMigrations bool) (_ *app, err error) {
	a := &app{cfg: cfg, logger: logger, metrics: metrics.New()}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	switch cfg.StorageDriver {
	case "memory":
		a.memory = memory.NewRepository()
		a.repo = a.memory
		logger.Warn("using in-memory storage; data is lost on exit")
	case "postgres":
		if runMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		a.pool = pool
		a.repo = postgres.NewFunnelRepository(pool)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	opts := []usecase.Option{usecase.WithMetrics(a.metrics)}

	switch cfg.Cache.NormalizedDriver() {
	case "memory":
		local, err := cache.NewLocal(cfg.Cache.MaxEntries, cfg.Cache.TTL)
		if err != nil {
			return nil, fmt.Errorf("campaign cache: %w", err)
		}
		a.closers = append(a.closers, local.Close)
		opts = append(opts, usecase.WithCache(local))
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, func() { _ = client.Close() })
		if err = client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		opts = append(opts, usecase.WithCache(cache.NewRedis(client, cfg.Cache.TTL)))
	}
	logger.Info("campaign cache", slog.String("driver", cfg.Cache.NormalizedDriver()), slog.Duration("ttl", cfg.Cache.TTL))

	if cfg.Funnel.WebhookURL != "" {
		opts = append(opts, usecase.WithListener(
			webhook.NewNotifier(cfg.Funnel.WebhookURL, cfg.Funnel.WebhookTimeout),
			cfg.Funnel.WebhookTimeout,
		))
	}

	a.funnel = usecase.NewFunnelUseCase(a.repo, logger, opts...)
	a.closers = append(a.closers, a.funnel.Wait)
	a.analytics = usecase.NewAnalyticsUseCase(a.repo, cfg.Funnel.MinSample, cfg.Funnel.DropOffBucket)
	return a, nil
}
