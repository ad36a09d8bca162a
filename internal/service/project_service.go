package service

import (
	"context"
	"errors"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"showcase/internal/cards"
	"showcase/internal/catalog"
	"showcase/internal/curated"
	"showcase/internal/lib/logger/utils"
	"showcase/internal/models"
	"showcase/internal/pagination"
	"showcase/internal/productapi"
	"showcase/internal/storage"
)

var (
	ErrExternalAPI = errors.New("external API error")
	ErrNoCurated   = errors.New("no curated projects available")
)

const (
	DefaultExplorePageSize  = 6
	DefaultFeaturedPageSize = 9
	maxPageSize             = 100
)

type ProjectServiceConfig struct {
	ExplorePageSize   int
	FeaturedPageSize  int
	CuratedCategories []string
	Picker            curated.Picker
}

type ProjectService struct {
	source     catalog.Source
	productAPI productapi.ProductAPI
	cfg        ProjectServiceConfig
}

func NewProjectService(source catalog.Source, productAPI productapi.ProductAPI, cfg ProjectServiceConfig) *ProjectService {
	if cfg.ExplorePageSize <= 0 {
		cfg.ExplorePageSize = DefaultExplorePageSize
	}
	if cfg.FeaturedPageSize <= 0 {
		cfg.FeaturedPageSize = DefaultFeaturedPageSize
	}
	if len(cfg.CuratedCategories) == 0 {
		cfg.CuratedCategories = curated.DefaultCategories
	}
	return &ProjectService{
		source:     source,
		productAPI: productAPI,
		cfg:        cfg,
	}
}

func (s *ProjectService) ExplorePageSize() int  { return s.cfg.ExplorePageSize }
func (s *ProjectService) FeaturedPageSize() int { return s.cfg.FeaturedPageSize }

func (s *ProjectService) filtered(ctx context.Context, category string) ([]models.Project, error) {
	projects, err := s.source.Projects(ctx)
	if err != nil {
		utils.Logger.Error("ProjectService - source.Projects failed", zap.Error(err))
		return nil, fmt.Errorf("ProjectService - source.Projects failed: %w", err)
	}
	filtered := catalog.FilterByCategory(projects, category)
	utils.Logger.Debug("ProjectService - filtered projects", zap.String("category", category), zap.Int("count", len(filtered)))
	return filtered, nil
}

// ExplorePage renders one page of the explore grid.
func (s *ProjectService) ExplorePage(ctx context.Context, q *models.PageQuery) (*models.PageView[template.HTML], error) {
	projects, err := s.filtered(ctx, q.Category)
	if err != nil {
		return nil, err
	}
	return renderPage("explore-projects", projects, q, s.cfg.ExplorePageSize, cards.Explore), nil
}

// FeaturedPage renders one page of the landing page grid.
func (s *ProjectService) FeaturedPage(ctx context.Context, q *models.PageQuery) (*models.PageView[template.HTML], error) {
	projects, err := s.filtered(ctx, q.Category)
	if err != nil {
		return nil, err
	}
	return renderPage("featured-projects", projects, q, s.cfg.FeaturedPageSize, cards.Featured), nil
}

// ProjectsPage returns one page of raw projects. A zero PageSize in q uses
// the explore page size.
func (s *ProjectService) ProjectsPage(ctx context.Context, q *models.PageQuery) (*models.PageView[models.Project], error) {
	projects, err := s.filtered(ctx, q.Category)
	if err != nil {
		return nil, err
	}
	size := q.PageSize
	if size <= 0 {
		size = s.cfg.ExplorePageSize
	}
	size = min(size, maxPageSize)
	return renderPage("api-projects", projects, q, size, func(p models.Project) models.Project { return p }), nil
}

// TerminalPage renders one page of projects as text cards.
func (s *ProjectService) TerminalPage(ctx context.Context, q *models.PageQuery) (*models.PageView[string], error) {
	projects, err := s.filtered(ctx, q.Category)
	if err != nil {
		return nil, err
	}
	size := q.PageSize
	if size <= 0 {
		size = s.cfg.ExplorePageSize
	}
	return renderPage("terminal-projects", projects, q, size, cards.Terminal), nil
}

// GetProject looks one project up, through the source's own GetByID when it
// has one.
func (s *ProjectService) GetProject(ctx context.Context, id int) (*models.Project, error) {
	if finder, ok := s.source.(catalog.Finder); ok {
		project, err := finder.GetByID(ctx, id)
		if err != nil && !errors.Is(err, storage.ErrProjectNotFound) {
			utils.Logger.Error("ProjectService.GetProject - source.GetByID failed", zap.Error(err), zap.Int("id", id))
			return nil, fmt.Errorf("ProjectService.GetProject - source.GetByID failed: %w", err)
		}
		return project, err
	}

	projects, err := s.source.Projects(ctx)
	if err != nil {
		utils.Logger.Error("ProjectService.GetProject - source.Projects failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("ProjectService.GetProject - source.Projects failed: %w", err)
	}
	project, ok := catalog.FindByID(projects, id)
	if !ok {
		return nil, storage.ErrProjectNotFound
	}
	return &project, nil
}

func (s *ProjectService) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	projects, err := s.source.Projects(ctx)
	if err != nil {
		utils.Logger.Error("ProjectService.Categories - source.Projects failed", zap.Error(err))
		return nil, fmt.Errorf("ProjectService.Categories - source.Projects failed: %w", err)
	}
	return catalog.Categories(projects), nil
}

// Curated picks one product per curated category from the product API.
// Categories without products are skipped and logged.
func (s *ProjectService) Curated(ctx context.Context) ([]models.Project, error) {
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}

	picked, missing := s.cfg.Picker.Pick(products, s.cfg.CuratedCategories)
	if len(missing) > 0 {
		utils.Logger.Warn("ProjectService.Curated - no products for curated categories",
			zap.Strings("missing", missing), zap.Int("product_count", len(products)))
	}
	if len(picked) == 0 {
		return nil, ErrNoCurated
	}
	return picked, nil
}

// CuratedProject returns the product API entry a curated card links to.
func (s *ProjectService) CuratedProject(ctx context.Context, id int) (*models.Project, error) {
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}
	project, ok := catalog.FindByID(products, id)
	if !ok {
		return nil, storage.ErrProjectNotFound
	}
	return &project, nil
}

func (s *ProjectService) products(ctx context.Context) ([]models.Project, error) {
	products, err := s.productAPI.GetProducts(ctx, 0)
	if err != nil {
		utils.Logger.Error("ProjectService - GetProducts failed", zap.Error(err))
		return nil, fmt.Errorf("ProjectService - GetProducts failed: %w: %w", ErrExternalAPI, err)
	}
	return productapi.ToProjects(products), nil
}

// renderPage builds a paginator for one view, moves it to the requested page
// and returns what it rendered. An out of range page falls back to page 1;
// q.Go is then applied relative to the page reached.
func renderPage[R any](name string, projects []models.Project, q *models.PageQuery, pageSize int, render pagination.RenderFunc[models.Project, R]) *models.PageView[R] {
	frame := &pagination.Frame[R]{}
	p := pagination.New(projects, pageSize, render, pagination.WithFrame(frame), pagination.WithName[R](name))

	if !p.GoTo(pagination.PageTarget(q.Page)) {
		p.Start()
	}
	if q.Go != "" {
		target, err := pagination.ParseTarget(q.Go)
		if err != nil {
			utils.Logger.Debug("renderPage - ignoring navigation target", zap.String("paginator", name), zap.Error(err))
		} else {
			p.GoTo(target)
		}
	}

	return &models.PageView[R]{
		Category:   q.Category,
		Items:      frame.Items,
		Buttons:    frame.Buttons,
		Page:       p.CurrentPage(),
		PageSize:   p.PageSize(),
		TotalPages: p.TotalPages(),
		TotalItems: p.Len(),
	}
}
