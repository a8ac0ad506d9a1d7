package models

// Pagination tracks the current page (1-based), page size and the number of
// known records.
type Pagination struct {
	Page    int
	PerPage int
	Total   int
}

// DefaultPagination is the first page with ten rows.
func DefaultPagination() Pagination {
	return Pagination{Page: 1, PerPage: 10}
}

// Bounds returns the [start, end) slice bounds of the current page within a
// list of n items, clamped to [0, n].
func (p Pagination) Bounds(n int) (int, int) {
	page, per := p.Page, p.PerPage
	if page < 1 {
		page = 1
	}
	if per < 0 {
		per = 0
	}
	start := (page - 1) * per
	end := page * per
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	return start, end
}
