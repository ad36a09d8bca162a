// Package curated picks the small row of highlighted projects on the landing
// page: one random project per category, laid out left to right in category
// order.
package curated

import (
	"math/rand/v2"
	"strings"

	"golang.org/x/exp/slices"

	"showcase/internal/models"
)

// DefaultCategories fill the left, centre and right cards.
var DefaultCategories = []string{"fragrances", "furniture", "groceries"}

type Picker struct {
	// Intn returns a number in [0, n). Defaults to math/rand/v2.
	Intn func(n int) int
}

// Pick returns one project per category that has any, in category order,
// and the categories that had none.
func (p Picker) Pick(projects []models.Project, categories []string) (picked []models.Project, missing []string) {
	intn := p.Intn
	if intn == nil {
		intn = rand.IntN
	}

	for _, category := range categories {
		var candidates []int
		for i, project := range projects {
			if strings.EqualFold(project.Category, category) {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			missing = append(missing, category)
			continue
		}
		picked = append(picked, projects[candidates[intn(len(candidates))]])
	}
	return picked, missing
}

// ParseCategories splits a comma separated list, dropping blanks and
// duplicates.
func ParseCategories(s string) []string {
	var out []string
	for _, c := range strings.Split(s, ",") {
		c = strings.TrimSpace(c)
		if c == "" || slices.Contains(out, c) {
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return slices.Clone(DefaultCategories)
	}
	return out
}
