// Package pagination implements the page/limit contract shared by every
// list endpoint: offset math and response metadata.
package pagination

// Params holds the page and limit for a list query. Values arrive
// already coerced to integers (non-numeric query input falls back to
// the endpoint default); they are intentionally not clamped, so a page
// of 0 or a negative limit passes through as-is.
type Params struct {
	Page  int
	Limit int
}

// Meta is the pagination block returned alongside every list response.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// Offset returns the row offset for the current page: (page-1)*limit.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta computes the metadata for a query that matched total rows.
// TotalPages is ceiling(total/limit); HasNext holds when rows remain
// past the current page.
func (p Params) Meta(total int64) Meta {
	var totalPages int64
	if p.Limit > 0 {
		totalPages = (total + int64(p.Limit) - 1) / int64(p.Limit)
	}
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    int64(p.Page)*int64(p.Limit) < total,
		HasPrev:    p.Page > 1,
	}
}
