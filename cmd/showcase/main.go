// cmd/showcase/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"showcase/config"
	"showcase/internal/catalog"
	"showcase/internal/lib/logger/utils"
	"showcase/internal/productapi"
	"showcase/internal/storage/postgres"
	_ "showcase/swagger" // Import generated swagger docs
)

// @title Maker Showcase API
// @version 1.0
// @description Paginated project listings, curated picks and the newsletter and account forms of the maker showcase.

// @host localhost:8080
// @BasePath /
// @schemes http

var rootCmd = &cobra.Command{
	Use:          "showcase",
	Short:        "Maker project showcase",
	Long:         "Serves the maker project showcase and manages its database.",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(projectsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and initialises the logger.
func setup() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}
	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	utils.Logger.Debug("Configuration loaded",
		zap.String("project_source", cfg.ProjectSource),
		zap.String("db_host", cfg.DBHost),
		zap.Int("server_port", cfg.ServerPort),
		zap.Int("explore_page_size", cfg.ExplorePageSize),
		zap.Int("featured_page_size", cfg.FeaturedPageSize),
	)
	return cfg, nil
}

// projectSource picks the project list behind the grids.
func projectSource(cfg *config.Config, pgStorage *postgres.PgStorage, productAPI *productapi.ProductAPIClient) (catalog.Source, error) {
	switch cfg.ProjectSource {
	case config.SourcePostgres:
		return pgStorage, nil
	case config.SourceAPI:
		return productAPI, nil
	default:
		return catalog.NewMock()
	}
}
