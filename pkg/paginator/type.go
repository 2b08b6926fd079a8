package paginator

// PaginateQuery is the page request, bound from ?page=&limit=.
type PaginateQuery struct {
	Page  int   `json:"page" form:"page"`
	Limit int64 `json:"limit" form:"limit"`
}

// Paginator describes the page that was returned.
type Paginator struct {
	Total       int64 `json:"total"`
	Count       int64 `json:"count"`
	PerPage     int64 `json:"per_page"`
	CurrentPage int   `json:"current_page"`
}

// PaginatorResponse is Paginator plus the derived fields clients use to
// render page controls.
type PaginatorResponse struct {
	Total       int64 `json:"total"`
	Count       int64 `json:"count"`
	PerPage     int64 `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}
