// internal/models/project.go
package models

import "time"

type Project struct {
	ID          int       `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Category    string    `json:"category" yaml:"category"`
	ImageURL    string    `json:"imageUrl" yaml:"imageUrl"`
	Images      []string  `json:"images,omitempty" yaml:"images"`
	CreatedAt   time.Time `json:"createdAt,omitzero" yaml:"-"`
}

// ProductFromAPI is one entry of the demo product API listing.
type ProductFromAPI struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
}

type ProductsResponse struct {
	Products []ProductFromAPI `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// CategoryCount is one button of the category filter bar.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
