package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"funnel-engine/internal/config"
	"funnel-engine/internal/db"
	"funnel-engine/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE:  runMigrate,
}

var migrateStatus bool

func init() {
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "print the applied schema version and exit")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	addr := cfg.Psql.Addr.String()

	if migrateStatus {
		v, dirty, err := db.MigrationStatus(addr)
		if err != nil {
			return err
		}
		fmt.Printf("schema version %d of %d (dirty: %t)\n", v, migrations.Version, dirty)
		return nil
	}

	if err = db.Migrate(addr, newLogger(cfg.Log)); err != nil {
		return err
	}
	fmt.Println("Migrations completed successfully")
	return nil
}
