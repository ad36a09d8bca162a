// internal/api/handlers/projects/projects_handlers.go
package projects

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"showcase/internal/lib/logger/utils"
	"showcase/internal/lib/response"
	"showcase/internal/models"
	"showcase/internal/service"
	"showcase/internal/storage"
)

type ProjectHandlers struct {
	projectService *service.ProjectService
}

func NewProjectHandlers(projectService *service.ProjectService) *ProjectHandlers {
	return &ProjectHandlers{
		projectService: projectService,
	}
}

// PageQueryFromRequest reads category, page, pageSize and go from the query
// string.
func PageQueryFromRequest(r *http.Request) *models.PageQuery {
	queryParams := r.URL.Query()
	page, _ := strconv.Atoi(queryParams.Get("page"))
	pageSize, _ := strconv.Atoi(queryParams.Get("pageSize"))
	return models.NewPageQuery(queryParams.Get("category"), page, pageSize, queryParams.Get("go"))
}

// @Summary List projects
// @Description One page of projects with the page controls to show next to it.
// @Tags projects
// @Produce json
// @Param category query string false "Category, ALL for every project"
// @Param page query int false "Current page" default(1)
// @Param go query string false "Clicked control: prev, next or a page number"
// @Param pageSize query int false "Projects per page" default(6)
// @Success 200 {object} models.PageView[models.Project]
// @Failure 500 {object} map[string]string
// @Router /api/projects [get]
func (h *ProjectHandlers) GetProjectsHandler(w http.ResponseWriter, r *http.Request) {
	query := PageQueryFromRequest(r)

	view, err := h.projectService.ProjectsPage(r.Context(), query)
	if err != nil {
		utils.Logger.Error("GetProjectsHandler - projectService.ProjectsPage failed", zap.Error(err), zap.Any("query", query))
		response.Error(w, http.StatusInternalServerError, "Failed to get projects")
		return
	}

	response.JSON(w, http.StatusOK, view)
	utils.Logger.Debug("GetProjectsHandler - projects retrieved", zap.Int("count", len(view.Items)), zap.Int("page", view.Page))
}

// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/projects/{id} [get]
func (h *ProjectHandlers) GetProjectHandler(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.Logger.Warn("GetProjectHandler - invalid project ID", zap.Error(err), zap.String("id", idStr))
		response.Error(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			response.Error(w, http.StatusNotFound, "Project not found")
			return
		}
		utils.Logger.Error("GetProjectHandler - projectService.GetProject failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to get project")
		return
	}

	response.JSON(w, http.StatusOK, project)
}

// @Summary List categories
// @Description Distinct project categories with counts, in display order.
// @Tags projects
// @Produce json
// @Success 200 {array} models.CategoryCount
// @Router /api/categories [get]
func (h *ProjectHandlers) GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.projectService.Categories(r.Context())
	if err != nil {
		utils.Logger.Error("GetCategoriesHandler - projectService.Categories failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to get categories")
		return
	}
	if categories == nil {
		categories = []models.CategoryCount{}
	}
	response.JSON(w, http.StatusOK, categories)
}

// @Summary Curated projects
// @Description One random product per curated category from the product API.
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Failure 502 {object} map[string]string
// @Router /api/curated [get]
func (h *ProjectHandlers) GetCuratedHandler(w http.ResponseWriter, r *http.Request) {
	picked, err := h.projectService.Curated(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoCurated):
			response.JSON(w, http.StatusOK, []models.Project{})
		case errors.Is(err, service.ErrExternalAPI):
			utils.Logger.Warn("GetCuratedHandler - product API unavailable", zap.Error(err))
			response.Error(w, http.StatusBadGateway, "Failed to load curated projects")
		default:
			utils.Logger.Error("GetCuratedHandler - projectService.Curated failed", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, "Failed to load curated projects")
		}
		return
	}
	response.JSON(w, http.StatusOK, picked)
}

func (h *ProjectHandlers) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
