package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"showcase/internal/lib/logger/utils"
	"showcase/internal/models"
	"showcase/internal/storage"
)

// SeedProjects stores projects when the storage holds none yet and returns
// how many were added.
func SeedProjects(ctx context.Context, projectStorage storage.ProjectStorage, projects []models.Project) (int, error) {
	existing, err := projectStorage.List(ctx)
	if err != nil {
		utils.Logger.Error("SeedProjects - storage.List failed", zap.Error(err))
		return 0, fmt.Errorf("SeedProjects - storage.List failed: %w", err)
	}
	if len(existing) > 0 {
		utils.Logger.Info("SeedProjects - storage already holds projects", zap.Int("count", len(existing)))
		return 0, nil
	}

	for i := range projects {
		if _, err := projectStorage.Create(ctx, &projects[i]); err != nil {
			utils.Logger.Error("SeedProjects - storage.Create failed", zap.Error(err), zap.String("title", projects[i].Title))
			return i, fmt.Errorf("SeedProjects - storage.Create failed: %w", err)
		}
	}
	utils.Logger.Info("SeedProjects - projects added", zap.Int("count", len(projects)))
	return len(projects), nil
}
