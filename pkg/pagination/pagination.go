package pagination

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 30
)

// Params holds a validated page/per-page window.
type Params struct {
	Page    int
	PerPage int
}

// Offset returns the row offset for SQL queries.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Meta is the pagination metadata attached to list responses.
type Meta struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// BuildMeta computes pagination metadata for a total row count.
// Params are assumed to be validated (page >= 1, 1 <= per_page <= MaxPerPage).
func BuildMeta(p Params, total int64) Meta {
	pages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	return Meta{
		Total:   total,
		Page:    p.Page,
		PerPage: p.PerPage,
		Pages:   pages,
		HasNext: p.Page < pages,
		HasPrev: p.Page > 1,
	}
}
