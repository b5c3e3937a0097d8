package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"funnel-engine/migrations"
)

// ErrDirty is returned when a previous migration failed half way and the
// schema needs manual repair.
var ErrDirty = errors.New("database is in dirty state")

func newMigrator(addr string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, err
	}
	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	return mg, nil
}

// Migrate applies the embedded up migrations up to migrations.Version.
// Already applied migrations are skipped.
func Migrate(addr string, logger *slog.Logger) error {
	mg, err := newMigrator(addr)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return fmt.Errorf("version %d: %w", from, ErrDirty)
	}

	if err = mg.Migrate(migrations.Version); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debug("schema up to date", slog.Uint64("version", uint64(from)))
			return nil
		}
		return err
	}
	logger.Info("migrations applied",
		slog.Uint64("from", uint64(from)),
		slog.Uint64("to", uint64(migrations.Version)))
	return nil
}

// MigrationStatus reports the applied schema version. A database without
// any applied migration reports version 0.
func MigrationStatus(addr string) (version uint, dirty bool, err error) {
	mg, err := newMigrator(addr)
	if err != nil {
		return 0, false, fmt.Errorf("open migrations: %w", err)
	}
	defer mg.Close()

	version, dirty, err = mg.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}
