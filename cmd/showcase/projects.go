package main

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"showcase/config"
	"showcase/internal/cards"
	"showcase/internal/catalog"
	"showcase/internal/lib/logger/utils"
	"showcase/internal/migrations"
	"showcase/internal/models"
	"showcase/internal/productapi"
	"showcase/internal/service"
	"showcase/internal/storage/postgres"
)

var (
	listCategory string
	listPage     int
	listPageSize int
	listGo       string
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Browse and load projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of projects",
	RunE:  runProjectsList,
}

var projectsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled projects into the database",
	RunE:  runProjectsSeed,
}

func init() {
	projectsListCmd.Flags().StringVarP(&listCategory, "category", "c", catalog.AllCategories, "category to show")
	projectsListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page to show")
	projectsListCmd.Flags().IntVar(&listPageSize, "page-size", 0, "projects per page (default: EXPLORE_PAGE_SIZE)")
	projectsListCmd.Flags().StringVar(&listGo, "go", "", "move from --page: prev, next or a page number")

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsSeedCmd)
}

func runProjectsList(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer utils.Logger.Sync()
	ctx := cmd.Context()

	var pgStorage *postgres.PgStorage
	if cfg.UsesDatabase() {
		pool, err := postgres.Connect(ctx, cfg.DBURL)
		if err != nil {
			utils.Logger.Error("Database connection failed", zap.Error(err))
			return err
		}
		defer pool.Close()
		pgStorage = postgres.NewPgStorage(pool)
	}

	productAPIClient := productapi.NewProductAPIClient(cfg.ProductsAPIURL)
	source, err := projectSource(cfg, pgStorage, productAPIClient)
	if err != nil {
		return err
	}
	projectService := service.NewProjectService(source, productAPIClient, service.ProjectServiceConfig{
		ExplorePageSize: cfg.ExplorePageSize,
	})

	view, err := projectService.TerminalPage(ctx, models.NewPageQuery(listCategory, listPage, listPageSize, listGo))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(view.Items) == 0 {
		fmt.Fprintf(out, "No projects in category %q.\n", view.Category)
	}
	fmt.Fprintln(out, strings.Join(view.Items, "\n"))
	fmt.Fprintln(out, cards.TerminalPager(view.Buttons))
	fmt.Fprintf(out, "page %d of %d, %d projects\n", view.Page, view.TotalPages, view.TotalItems)
	return nil
}

func runProjectsSeed(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer utils.Logger.Sync()
	ctx := cmd.Context()

	pool, err := connectAndMigrate(cmd, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	mock, err := catalog.NewMock()
	if err != nil {
		return err
	}
	bundled, err := mock.Projects(ctx)
	if err != nil {
		return err
	}

	added, err := service.SeedProjects(ctx, postgres.NewPgStorage(pool), bundled)
	if err != nil {
		return err
	}
	if added == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Database already holds projects, nothing to do.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d projects.\n", added)
	return nil
}

func connectAndMigrate(cmd *cobra.Command, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := postgres.Connect(cmd.Context(), cfg.DBURL)
	if err != nil {
		utils.Logger.Error("Database connection failed", zap.Error(err))
		return nil, err
	}
	if err := migrations.Up(cfg.DBURL); err != nil {
		pool.Close()
		utils.Logger.Error("Database migration failed", zap.Error(err))
		return nil, err
	}
	return pool, nil
}
