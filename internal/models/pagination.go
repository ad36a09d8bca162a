// internal/models/pagination.go
package models

import "showcase/internal/pagination"

// PageQuery is the page request of a project listing. Go carries the clicked
// control ("prev", "next" or a page number) relative to Page.
type PageQuery struct {
	Category string `json:"category" form:"category"`
	Page     int    `json:"page" form:"page"`
	PageSize int    `json:"pageSize" form:"pageSize"`
	Go       string `json:"go,omitempty" form:"go"`
}

func NewPageQuery(category string, page, pageSize int, goTo string) *PageQuery {
	if page <= 0 {
		page = 1
	}
	if pageSize < 0 {
		pageSize = 0
	}
	return &PageQuery{
		Category: category,
		Page:     page,
		PageSize: pageSize,
		Go:       goTo,
	}
}

// PageView is one rendered page of projects.
type PageView[R any] struct {
	Category   string              `json:"category"`
	Items      []R                 `json:"items"`
	Buttons    []pagination.Button `json:"buttons"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalPages int                 `json:"totalPages"`
	TotalItems int                 `json:"totalItems"`
}
