// Package pagination computes the metadata envelope for zero-based
// paged listings.
package pagination

// Page describes one window of a paged listing
type Page struct {
	Number        int   // zero-based page number as requested
	Size          int   // requested page size (>= 1)
	TotalElements int64 // total matching rows across all pages
	TotalPages    int
	First         bool
	Last          bool
	HasNext       bool
	HasPrevious   bool
}

// New computes page metadata. The page number is not clamped: a page
// beyond the last one keeps its metadata and simply has no items.
// TotalPages is 0 when there are no elements, and Last is true in
// that case.
func New(page, size int, total int64) Page {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	first := page == 0
	last := page >= totalPages-1

	return Page{
		Number:        page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         first,
		Last:          last,
		HasNext:       !last,
		HasPrevious:   !first,
	}
}

// Offset returns the row offset for SQL LIMIT/OFFSET queries
func (p Page) Offset() int {
	return p.Number * p.Size
}
