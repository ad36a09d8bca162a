package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"showcase/internal/api"
	"showcase/internal/api/handlers/projects"
	"showcase/internal/api/handlers/submissions"
	"showcase/internal/api/middleware"
	"showcase/internal/curated"
	"showcase/internal/lib/logger/utils"
	"showcase/internal/migrations"
	"showcase/internal/productapi"
	"showcase/internal/service"
	"showcase/internal/storage/postgres"
	"showcase/internal/web"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer utils.Logger.Sync()

	utils.Logger.Info("Starting showcase server")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, cfg.DBURL)
	if err != nil {
		utils.Logger.Error("Database connection failed", zap.Error(err))
		return err
	}
	defer pool.Close()
	utils.Logger.Info("Database connected")

	if err := migrations.Up(cfg.DBURL); err != nil {
		utils.Logger.Error("Database migration failed", zap.Error(err))
		return err
	}
	utils.Logger.Info("Database migrations completed successfully")

	pgStorage := postgres.NewPgStorage(pool)
	productAPIClient := productapi.NewProductAPIClient(cfg.ProductsAPIURL)
	source, err := projectSource(cfg, pgStorage, productAPIClient)
	if err != nil {
		utils.Logger.Error("Project source failed", zap.Error(err), zap.String("source", cfg.ProjectSource))
		return err
	}

	projectService := service.NewProjectService(source, productAPIClient, service.ProjectServiceConfig{
		ExplorePageSize:   cfg.ExplorePageSize,
		FeaturedPageSize:  cfg.FeaturedPageSize,
		CuratedCategories: cfg.CuratedCategories,
		Picker:            curated.Picker{},
	})
	newsletterService := service.NewNewsletterService(pgStorage)
	authService := service.NewAuthService(pgStorage, 0)

	pages, err := web.NewHandlers(projectService)
	if err != nil {
		utils.Logger.Error("Templates failed to load", zap.Error(err))
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := api.NewRouter(api.RouterConfig{
		Projects:    projects.NewProjectHandlers(projectService),
		Forms:       submissions.NewFormHandlers(newsletterService, authService),
		Pages:       pages,
		Metrics:     middleware.NewMetrics(reg),
		Gatherer:    reg,
		RateLimiter: middleware.NewRateLimiter(cfg.FormRateLimit),
		CORSOrigins: cfg.CORSOrigins,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		utils.Logger.Info("Server starting", zap.String("address", server.Addr), zap.String("project_source", cfg.ProjectSource))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		utils.Logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		utils.Logger.Error("Server stopped with error", zap.Error(err))
		return err
	}
	utils.Logger.Info("Server stopped")
	return nil
}
