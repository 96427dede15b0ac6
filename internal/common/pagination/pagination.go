// Package pagination provides page/limit query parsing and the metadata
// block returned alongside paged result sets.
package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// ParseQueryParams reads page and limit from the request query string,
// applying the defaults when a parameter is absent. Out-of-range values are
// rejected rather than clamped.
func ParseQueryParams(r *http.Request) (Params, error) {
	params := Params{Page: DefaultPage, Limit: DefaultLimit}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid query parameter: page must be a positive integer")
		}
		params.Page = page
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", MaxLimit)
		}
		params.Limit = limit
	}

	return params, nil
}

// Offset converts the 1-based page into a database OFFSET.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewMetadata builds the metadata block for a paged result. An empty result
// set still reports one page.
func NewMetadata(total int64, params Params) Metadata {
	totalPages := 1
	if total > 0 {
		totalPages = int((total + int64(params.Limit) - 1) / int64(params.Limit))
	}
	return Metadata{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages,
	}
}

// Response is a generic paginated response wrapper.
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// NewResponse creates a paginated response with data and metadata.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{Data: data, Pagination: metadata}
}
