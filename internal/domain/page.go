package domain

// =============================================================================
// Upstream Page
// =============================================================================

// Page wraps one page of upstream Claims API results together with the
// pagination metadata the API reported. Aggregators never re-paginate: they
// trust these boundaries and only reshape the items.
type Page[T any] struct {
	Items         []T
	Number        int // Zero-based page index
	Size          int // Requested page size
	TotalElements int // Total matching records across all pages
	TotalPages    int
}

// Pagination carries page state through to the view layer.
type Pagination struct {
	Number        int
	Size          int
	TotalElements int
	TotalPages    int
}

// Meta returns the page's pagination metadata for pass-through to a view
// model. Boundaries are never recomputed, only clamped.
func (p Page[T]) Meta() Pagination {
	totalPages := p.TotalPages
	if totalPages == 0 && p.Size > 0 && p.TotalElements > 0 {
		totalPages = (p.TotalElements + p.Size - 1) / p.Size
	}
	return Pagination{
		Number:        max(p.Number, 0),
		Size:          p.Size,
		TotalElements: max(p.TotalElements, 0),
		TotalPages:    totalPages,
	}
}

// HasPrevious returns true if there are previous results available.
func (p Pagination) HasPrevious() bool {
	return p.Number > 0
}

// HasNext returns true if there are more results available.
func (p Pagination) HasNext() bool {
	return p.Number+1 < p.TotalPages
}

// CurrentPage returns the current page number (1-indexed) for display.
func (p Pagination) CurrentPage() int {
	return p.Number + 1
}
