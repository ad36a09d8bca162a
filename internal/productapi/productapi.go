// internal/productapi/productapi.go
package productapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"showcase/internal/lib/logger/utils"
	"showcase/internal/models"
)

const DefaultURL = "https://dummyjson.com/products"

var ErrUpstream = errors.New("product API error")

//go:generate mockgen -source=productapi.go -destination=mocks/mock_productapi.go -package=mock_productapi

type ProductAPI interface {
	GetProducts(ctx context.Context, limit int) ([]models.ProductFromAPI, error)
}

type ProductAPIClient struct {
	baseURL string
	client  *http.Client
}

func NewProductAPIClient(baseURL string) *ProductAPIClient {
	return &ProductAPIClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// GetProducts lists products. A limit of 0 asks for every product.
func (api *ProductAPIClient) GetProducts(ctx context.Context, limit int) ([]models.ProductFromAPI, error) {
	apiURL := api.baseURL
	if apiURL == "" {
		return nil, fmt.Errorf("PRODUCTS_API_URL not configured: %w", ErrUpstream)
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PRODUCTS_API_URL: %w", err)
	}

	query := u.Query()
	query.Set("limit", strconv.Itoa(limit))
	u.RawQuery = query.Encode()

	utils.Logger.Debug("Calling product API", zap.String("url", u.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build product API request: %w", err)
	}

	resp, err := api.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call product API: %w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product API returned %s: %w", resp.Status, ErrUpstream)
	}

	var body models.ProductsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode product API response: %w: %w", ErrUpstream, err)
	}

	utils.Logger.Debug("Product API response", zap.Int("count", len(body.Products)), zap.Int("total", body.Total))
	return body.Products, nil
}

// Projects fetches every product as a project, so the product API can back
// the project grids.
func (api *ProductAPIClient) Projects(ctx context.Context) ([]models.Project, error) {
	products, err := api.GetProducts(ctx, 0)
	if err != nil {
		return nil, err
	}
	return ToProjects(products), nil
}

func ToProject(p models.ProductFromAPI) models.Project {
	image := p.Thumbnail
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return models.Project{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		ImageURL:    image,
		Images:      p.Images,
	}
}

func ToProjects(products []models.ProductFromAPI) []models.Project {
	projects := make([]models.Project, 0, len(products))
	for _, p := range products {
		projects = append(projects, ToProject(p))
	}
	return projects
}
