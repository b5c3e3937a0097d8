package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"funnel-engine/internal/config/configs"
)

const applicationName = "funnel-engine"

// NewPostgresPool creates a pgxpool.Pool for the configured address and
// checks connectivity with a 5 second ping. Explicit MaxConns and
// ConnMaxLifetime override the pool_* parameters of the connection string.
// The caller must close the returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}
	if cfg.ConnMaxLifetime > 0 {
		poolConf.MaxConnLifetime = cfg.ConnMaxLifetime
	}
	if _, ok := poolConf.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolConf.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
