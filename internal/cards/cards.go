// Package cards renders a project as a card fragment.
package cards

import (
	"bytes"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"showcase/internal/lib/logger/utils"
	"showcase/internal/models"
)

const placeholderBase = "https://placehold.co/400x300/23374D/FFFFFF"

// PlaceholderImage is the image shown when a project has none or its image
// fails to load.
func PlaceholderImage(category string) string {
	return placeholderBase + "?text=" + strings.ReplaceAll(url.QueryEscape(category), "+", "%20")
}

// DetailsURL is the page of a single project.
func DetailsURL(p models.Project) string {
	return "/projects/" + strconv.Itoa(p.ID)
}

// CuratedURL is the page of a curated product. Curated picks come from the
// product API, so their ids do not name catalogue projects.
func CuratedURL(p models.Project) string {
	return "/curated/" + strconv.Itoa(p.ID)
}

type cardData struct {
	Title       string
	Description string
	Category    string
	Image       string
	Placeholder string
	Link        string
}

func newCardData(p models.Project, link string) cardData {
	placeholder := PlaceholderImage(p.Category)
	image := p.ImageURL
	if image == "" {
		image = placeholder
	}
	return cardData{
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Image:       image,
		Placeholder: placeholder,
		Link:        link,
	}
}

var (
	exploreTmpl = template.Must(template.New("explore").Parse(`<div class="col">
  <div class="card ms-0 rounded-4 border bg-light">
    <a href="{{.Link}}" class="text-decoration-none">
      <img src="{{.Image}}" class="card-img-top rounded-top-3" alt="{{.Title}}" data-fallback="{{.Placeholder}}" />
      <div class="card-body">
        <h5 class="card-title text-secondary fw-bolder">{{.Title}}</h5>
        <p class="card-text text-dark small">{{.Description}}</p>
      </div>
    </a>
  </div>
</div>`))

	featuredTmpl = template.Must(template.New("featured").Parse(`<div class="col">
  <div class="card h-100 ms-0 rounded-4 shadow-sm">
    <a href="{{.Link}}" class="text-decoration-none">
      <img src="{{.Image}}" class="card-img-top rounded-top-4" alt="{{.Title}}" data-fallback="{{.Placeholder}}" />
      <div class="card-body">
        <span class="badge text-bg-secondary mb-2">{{.Category}}</span>
        <h5 class="card-title text-dark fw-bold">{{.Title}}</h5>
      </div>
    </a>
  </div>
</div>`))

	curatedTmpl = template.Must(template.New("curated").Parse(`<div class="col col-12 col-md-6 col-lg-4 mb-4">
  <div class="card h-100 ms-0 rounded-4">
    <a href="{{.Link}}" class="text-decoration-none">
      <img src="{{.Image}}" class="card-img-top w-100 rounded-top-3" alt="{{.Title}}" data-fallback="{{.Placeholder}}" />
      <h5 class="card-title text-secondary fw-bold px-3">{{.Title}}</h5>
      <p class="card-text text-dark fw-light small px-3 pb-4">{{.Description}}</p>
    </a>
  </div>
</div>`))
)

// Explore renders the card used on the explore page grid.
func Explore(p models.Project) template.HTML {
	return execute(exploreTmpl, p, DetailsURL(p))
}

// Featured renders the compact card of the landing page grid: category badge
// and title, no description.
func Featured(p models.Project) template.HTML {
	return execute(featuredTmpl, p, DetailsURL(p))
}

// Curated renders the wide card of the curated row.
func Curated(p models.Project) template.HTML {
	return execute(curatedTmpl, p, CuratedURL(p))
}

func execute(t *template.Template, p models.Project, link string) template.HTML {
	var buf bytes.Buffer
	if err := t.Execute(&buf, newCardData(p, link)); err != nil {
		utils.Logger.Error("cards - template execution failed", zap.Error(err), zap.String("template", t.Name()), zap.Int("project_id", p.ID))
		return ""
	}
	return template.HTML(buf.String())
}
