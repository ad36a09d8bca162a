// Package web serves the server rendered pages. Every grid is rendered by a
// paginator on the server; static/pagination.js swaps grids in place when
// JavaScript is available.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"showcase/internal/cards"
	"showcase/internal/catalog"
	"showcase/internal/lib/logger/utils"
	"showcase/internal/models"
	"showcase/internal/service"
	"showcase/internal/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// FragmentHeader asks a page handler for the grid fragment only.
const FragmentHeader = "X-Fragment"

const gridColumns = 3

type Handlers struct {
	projectService *service.ProjectService
	pages          map[string]*template.Template
}

func NewHandlers(projectService *service.ProjectService) (*Handlers, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{"home", "explore", "project"} {
		t, err := template.ParseFS(templateFS,
			"templates/layout.html", "templates/partials.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s templates: %w", name, err)
		}
		pages[name] = t
	}
	return &Handlers{
		projectService: projectService,
		pages:          pages,
	}, nil
}

// StaticHandler serves the embedded static files under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

type filterLink struct {
	Name   string
	Count  int
	Href   string
	Active bool
}

type pageLink struct {
	Label    string
	Href     string
	Target   string
	Active   bool
	Disabled bool
}

type gridData struct {
	Label   string
	Columns int
	Filters []filterLink
	Cards   []template.HTML
	Links   []pageLink
}

type homeData struct {
	Title   string
	Curated []template.HTML
	Grid    gridData
}

type exploreData struct {
	Title string
	Grid  gridData
}

type projectData struct {
	Title       string
	Project     *models.Project
	Image       string
	Placeholder string
	Curated     bool
}

func pageQuery(r *http.Request) *models.PageQuery {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	return models.NewPageQuery(q.Get("category"), page, 0, q.Get("go"))
}

// gridURL links back to path with the grid state in the query string.
func gridURL(path, category string, page int, target string) string {
	v := url.Values{}
	if !catalog.IsAll(category) {
		v.Set("category", strings.TrimSpace(category))
	}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if target != "" {
		v.Set("go", target)
	}
	link := path
	if enc := v.Encode(); enc != "" {
		link += "?" + enc
	}
	return link + "#grid"
}

func pageLinks(path string, view *models.PageView[template.HTML]) []pageLink {
	links := make([]pageLink, 0, len(view.Buttons))
	for _, b := range view.Buttons {
		link := pageLink{
			Label:    b.Label(),
			Target:   b.Target(),
			Active:   b.Active,
			Disabled: b.Disabled,
		}
		if link.Target != "" {
			link.Href = gridURL(path, view.Category, view.Page, link.Target)
		}
		links = append(links, link)
	}
	return links
}

func (h *Handlers) filterLinks(ctx context.Context, path, selected string) ([]filterLink, error) {
	categories, err := h.projectService.Categories(ctx)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, c := range categories {
		total += c.Count
	}
	links := make([]filterLink, 0, len(categories)+1)
	links = append(links, filterLink{
		Name:   catalog.AllCategories,
		Count:  total,
		Href:   gridURL(path, "", 0, ""),
		Active: catalog.IsAll(selected),
	})
	for _, c := range categories {
		links = append(links, filterLink{
			Name:   c.Name,
			Count:  c.Count,
			Href:   gridURL(path, c.Name, 0, ""),
			Active: strings.EqualFold(c.Name, strings.TrimSpace(selected)),
		})
	}
	return links, nil
}

func (h *Handlers) grid(ctx context.Context, path, label string, view *models.PageView[template.HTML]) (gridData, error) {
	filters, err := h.filterLinks(ctx, path, view.Category)
	if err != nil {
		return gridData{}, err
	}
	return gridData{
		Label:   label,
		Columns: gridColumns,
		Filters: filters,
		Cards:   view.Items,
		Links:   pageLinks(path, view),
	}, nil
}

// HomeHandler renders the landing page: curated picks and the featured grid.
func (h *Handlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view, err := h.projectService.FeaturedPage(ctx, pageQuery(r))
	if err != nil {
		utils.Logger.Error("HomeHandler - projectService.FeaturedPage failed", zap.Error(err))
		http.Error(w, "Failed to load projects", http.StatusInternalServerError)
		return
	}
	grid, err := h.grid(ctx, "/", "Featured", view)
	if err != nil {
		utils.Logger.Error("HomeHandler - grid failed", zap.Error(err))
		http.Error(w, "Failed to load projects", http.StatusInternalServerError)
		return
	}
	if r.Header.Get(FragmentHeader) == "grid" {
		h.render(w, http.StatusOK, "home", "grid", grid)
		return
	}

	var curated []template.HTML
	picks, err := h.projectService.Curated(ctx)
	switch {
	case errors.Is(err, service.ErrNoCurated):
		utils.Logger.Debug("HomeHandler - no curated projects")
	case err != nil:
		utils.Logger.Warn("HomeHandler - curated projects unavailable", zap.Error(err))
	default:
		for _, p := range picks {
			curated = append(curated, cards.Curated(p))
		}
	}

	h.render(w, http.StatusOK, "home", "layout", homeData{
		Title:   "Home",
		Curated: curated,
		Grid:    grid,
	})
}

// ExploreHandler renders the explore grid.
func (h *Handlers) ExploreHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view, err := h.projectService.ExplorePage(ctx, pageQuery(r))
	if err != nil {
		utils.Logger.Error("ExploreHandler - projectService.ExplorePage failed", zap.Error(err))
		http.Error(w, "Failed to load projects", http.StatusInternalServerError)
		return
	}
	grid, err := h.grid(ctx, "/explore", "Explore", view)
	if err != nil {
		utils.Logger.Error("ExploreHandler - grid failed", zap.Error(err))
		http.Error(w, "Failed to load projects", http.StatusInternalServerError)
		return
	}
	if r.Header.Get(FragmentHeader) == "grid" {
		h.render(w, http.StatusOK, "explore", "grid", grid)
		return
	}
	h.render(w, http.StatusOK, "explore", "layout", exploreData{Title: "Explore", Grid: grid})
}

// ProjectHandler renders the details page of one project.
func (h *Handlers) ProjectHandler(w http.ResponseWriter, r *http.Request) {
	h.projectPage(w, r, "ProjectHandler", h.projectService.GetProject, false)
}

// CuratedProjectHandler renders the details page of a curated product, looked
// up in the product API the curated row is picked from.
func (h *Handlers) CuratedProjectHandler(w http.ResponseWriter, r *http.Request) {
	h.projectPage(w, r, "CuratedProjectHandler", h.projectService.CuratedProject, true)
}

func (h *Handlers) projectPage(w http.ResponseWriter, r *http.Request, op string, lookup func(ctx context.Context, id int) (*models.Project, error), curated bool) {
	notFound := projectData{Title: "Not found", Curated: curated}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.render(w, http.StatusNotFound, "project", "layout", notFound)
		return
	}

	project, err := lookup(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrProjectNotFound):
			h.render(w, http.StatusNotFound, "project", "layout", notFound)
		case errors.Is(err, service.ErrExternalAPI):
			utils.Logger.Error(op+" - product API failed", zap.Error(err), zap.Int("id", id))
			http.Error(w, "Failed to load project", http.StatusBadGateway)
		default:
			utils.Logger.Error(op+" - project lookup failed", zap.Error(err), zap.Int("id", id))
			http.Error(w, "Failed to load project", http.StatusInternalServerError)
		}
		return
	}

	placeholder := cards.PlaceholderImage(project.Category)
	image := project.ImageURL
	if image == "" {
		image = placeholder
	}
	h.render(w, http.StatusOK, "project", "layout", projectData{
		Title:       project.Title,
		Project:     project,
		Image:       image,
		Placeholder: placeholder,
		Curated:     curated,
	})
}

func (h *Handlers) render(w http.ResponseWriter, status int, page, name string, data any) {
	var buf bytes.Buffer
	if err := h.pages[page].ExecuteTemplate(&buf, name, data); err != nil {
		utils.Logger.Error("web.render - template execution failed", zap.Error(err), zap.String("page", page), zap.String("template", name))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
