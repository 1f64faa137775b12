package pagination

import "strconv"

const (
	// DefaultLimit is the page size applied when none is requested.
	DefaultLimit = 10
	// MaxLimit caps the requested page size.
	MaxLimit = 100
)

// Options are the raw pagination and sorting parameters of a list request.
type Options struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Meta describes the page returned by a list operation.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// FromQuery parses pagination options from query string values.
func FromQuery(page, limit, sortBy, sortOrder string) Options {
	opts := Options{SortBy: sortBy, SortOrder: sortOrder}
	if p, err := strconv.Atoi(page); err == nil {
		opts.Page = p
	}
	if l, err := strconv.Atoi(limit); err == nil {
		opts.Limit = l
	}
	return opts
}

// Normalize applies defaults and returns the effective page, limit and
// offset. Sorting defaults to newest first; when only one of sortBy and
// sortOrder is supplied the pair falls back to the defaults.
func (o Options) Normalize() (page, limit, offset int, sortBy, sortOrder string) {
	page = o.Page
	if page < 1 {
		page = 1
	}
	limit = o.Limit
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	offset = (page - 1) * limit

	sortBy, sortOrder = o.SortBy, o.SortOrder
	if sortBy == "" || sortOrder == "" {
		sortBy, sortOrder = "created_at", "desc"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}
	return page, limit, offset, sortBy, sortOrder
}
