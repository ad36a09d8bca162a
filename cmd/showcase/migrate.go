package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"showcase/internal/lib/logger/utils"
	"showcase/internal/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration("up", migrations.Up)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration("down", migrations.Down)
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

func runMigration(direction string, apply func(dbURL string) error) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer utils.Logger.Sync()

	if err := apply(cfg.DBURL); err != nil {
		utils.Logger.Error("Database migration failed", zap.Error(err), zap.String("direction", direction))
		return err
	}
	utils.Logger.Info("Database migrations completed successfully", zap.String("direction", direction))
	return nil
}
