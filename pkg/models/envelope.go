package models

import "errors"

// Sentinel errors shared by the store and handlers.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidID        = errors.New("invalid id")
	ErrDuplicateSlug    = errors.New("duplicate slug")
	ErrInvalidFieldType = errors.New("invalid schema field type")
)

// Response is the API envelope: exactly one of Data or Error is set.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// ListResponse wraps paginated list data.
type ListResponse struct {
	Data       any    `json:"data"`
	Error      string `json:"error,omitempty"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	PerPage    int    `json:"per_page"`
}

// TotalPages computes the page count for total rows at perPage per page.
// Zero rows still report one (empty) page.
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	return pages
}
