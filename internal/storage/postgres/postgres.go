package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"showcase/internal/lib/logger/utils"
	"showcase/internal/models"
	"showcase/internal/storage"
)

const uniqueViolation = "23505"

type PgStorage struct {
	pool *pgxpool.Pool
}

var (
	_ storage.ProjectStorage    = (*PgStorage)(nil)
	_ storage.SubscriberStorage = (*PgStorage)(nil)
	_ storage.AccountStorage    = (*PgStorage)(nil)
)

func NewPgStorage(pool *pgxpool.Pool) *PgStorage {
	return &PgStorage{pool: pool}
}

// Connect opens a pool and checks that the database answers.
func Connect(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

const projectColumns = `id, title, description, category, image_url, images, created_at`

func scanProject(row pgx.Row, p *models.Project) error {
	return row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.ImageURL, &p.Images, &p.CreatedAt)
}

// List returns every project in id order.
func (s *PgStorage) List(ctx context.Context) ([]models.Project, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		utils.Logger.Error("PgStorage.List - query failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.List - query failed: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		if err := scanProject(rows, &project); err != nil {
			utils.Logger.Error("PgStorage.List - rows.Scan failed", zap.Error(err))
			return nil, fmt.Errorf("PgStorage.List - rows.Scan failed: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		utils.Logger.Error("PgStorage.List - rows.Err failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.List - rows.Err failed: %w", err)
	}
	return projects, nil
}

// Projects lets the database back the project grids.
func (s *PgStorage) Projects(ctx context.Context) ([]models.Project, error) {
	return s.List(ctx)
}

func (s *PgStorage) GetByID(ctx context.Context, id int) (*models.Project, error) {
	var project models.Project
	err := scanProject(s.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id), &project)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrProjectNotFound
		}
		utils.Logger.Error("PgStorage.GetByID - queryRow failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("PgStorage.GetByID - queryRow failed: %w", err)
	}
	return &project, nil
}

func (s *PgStorage) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	images := project.Images
	if images == nil {
		images = []string{}
	}
	query := `
        INSERT INTO projects (title, description, category, image_url, images)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + projectColumns

	var added models.Project
	err := scanProject(s.pool.QueryRow(ctx, query, project.Title, project.Description, project.Category, project.ImageURL, images), &added)
	if err != nil {
		utils.Logger.Error("PgStorage.Create - queryRow failed", zap.Error(err), zap.String("title", project.Title))
		return nil, fmt.Errorf("PgStorage.Create - queryRow failed: %w", err)
	}
	return &added, nil
}
