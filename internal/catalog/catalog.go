// Package catalog holds the project sources and the category filter shared
// by the landing and explore pages.
package catalog

import (
	"context"
	"strings"

	"golang.org/x/exp/slices"

	"showcase/internal/models"
)

// AllCategories selects every project.
const AllCategories = "ALL"

// Source supplies the full list of projects.
type Source interface {
	Projects(ctx context.Context) ([]models.Project, error)
}

// Finder is implemented by sources that can look a single project up
// without loading the whole list. A missing project is
// storage.ErrProjectNotFound.
type Finder interface {
	GetByID(ctx context.Context, id int) (*models.Project, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]models.Project, error)

func (f SourceFunc) Projects(ctx context.Context) ([]models.Project, error) {
	return f(ctx)
}

// IsAll reports whether category selects every project.
func IsAll(category string) bool {
	category = strings.TrimSpace(category)
	return category == "" || strings.EqualFold(category, AllCategories)
}

// FilterByCategory returns the projects whose category matches, ignoring
// case. An empty category or ALL returns every project. The input slice is
// never modified.
func FilterByCategory(projects []models.Project, category string) []models.Project {
	if IsAll(category) {
		return slices.Clone(projects)
	}
	category = strings.TrimSpace(category)
	return slices.DeleteFunc(slices.Clone(projects), func(p models.Project) bool {
		return !strings.EqualFold(p.Category, category)
	})
}

// Categories lists the distinct categories in first-seen order with the
// number of projects in each.
func Categories(projects []models.Project) []models.CategoryCount {
	var out []models.CategoryCount
	for _, p := range projects {
		i := slices.IndexFunc(out, func(c models.CategoryCount) bool {
			return strings.EqualFold(c.Name, p.Category)
		})
		if i < 0 {
			out = append(out, models.CategoryCount{Name: p.Category, Count: 1})
			continue
		}
		out[i].Count++
	}
	return out
}

// FindByID returns the project with id.
func FindByID(projects []models.Project, id int) (models.Project, bool) {
	i := slices.IndexFunc(projects, func(p models.Project) bool { return p.ID == id })
	if i < 0 {
		return models.Project{}, false
	}
	return projects[i], true
}
