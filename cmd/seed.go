package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"funnel-engine/internal/config"
	"funnel-engine/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the demo campaign and replay synthetic traffic into PostgreSQL",
	RunE:  runSeed,
}

var seedVisitors int

func init() {
	seedCmd.Flags().IntVarP(&seedVisitors, "visitors", "n", 500, "number of synthetic visitors")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.StorageDriver != "postgres" {
		return fmt.Errorf("seed requires STORAGE_DRIVER=postgres, got %q", cfg.StorageDriver)
	}
	logger := newLogger(cfg.Log)
	ctx := cmd.Context()

	a, err := newApp(ctx, cfg, logger, true)
	if err != nil {
		return err
	}
	defer a.Close()

	if err = db.Seed(ctx, a.pool, a.funnel, seedVisitors); err != nil {
		return err
	}
	fmt.Printf("Seeded campaign %q\n", db.DemoSlug)
	return nil
}
