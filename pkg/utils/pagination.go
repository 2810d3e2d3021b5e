package utils

import "math"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// PaginationParams holds pagination request parameters
type PaginationParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PaginationMeta holds pagination response metadata
type PaginationMeta struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
}

// GetPaginationParams extracts page and limit with defaults.
// Default: page=1, limit=10; limit is capped at MaxPageLimit.
func GetPaginationParams(page, limit int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PaginationParams{
		Page:  page,
		Limit: limit,
	}
}

// CalculateOffset returns the number of rows to skip
func (p PaginationParams) CalculateOffset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// CalculateMeta generates pagination metadata
func CalculateMeta(total int64, page, limit int) PaginationMeta {
	if limit <= 0 {
		return PaginationMeta{
			Current: 1,
			Pages:   1,
			Total:   total,
			Limit:   int(total),
		}
	}

	pages := int(math.Ceil(float64(total) / float64(limit)))
	if pages < 0 {
		pages = 0
	}

	return PaginationMeta{
		Current: page,
		Pages:   pages,
		Total:   total,
		Limit:   limit,
	}
}
