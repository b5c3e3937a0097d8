package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"funnel-engine/internal/core/port"
)

// FunnelRepository implements port.FunnelRepository using pgxpool for
// PostgreSQL. It is safe for concurrent use.
type FunnelRepository struct {
	pool *pgxpool.Pool
}

var _ port.FunnelRepository = (*FunnelRepository)(nil)

// NewFunnelRepository returns a new repository instance.
func NewFunnelRepository(pool *pgxpool.Pool) *FunnelRepository {
	return &FunnelRepository{pool: pool}
}
