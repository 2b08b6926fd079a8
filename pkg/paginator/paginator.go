package paginator

// Adjust replaces out-of-range values with defaults and caps the limit.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset is the index of the first item of the page.
func (p PaginateQuery) Offset() int64 {
	return int64(p.Page-1) * p.Limit
}

// Page cuts the requested page out of items, which are already in display
// order. A page past the end is empty, not an error.
func Page[T any](items []T, q PaginateQuery) ([]T, Paginator) {
	q.Adjust()

	total := int64(len(items))
	start := min(q.Offset(), total)
	end := min(start+q.Limit, total)
	page := items[start:end]

	return page, Paginator{
		Total:       total,
		Count:       int64(len(page)),
		PerPage:     q.Limit,
		CurrentPage: q.Page,
	}
}

func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return int((p.Total + p.PerPage - 1) / p.PerPage)
}

func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

func (p Paginator) HasPreviousPage() bool {
	return p.CurrentPage > 1
}

func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrev:     p.HasPreviousPage(),
	}
}
