// file: internals/store/view.go
package store

import "sort"

// DefaultPageSize mengikuti konstanta list view portal admin.
const DefaultPageSize = 5

// PageInfo adalah metadata hasil paginasi setelah clamping.
type PageInfo struct {
	Page       int
	PerPage    int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// SortBy mengurutkan salinan sequence dengan comparator (stable).
func SortBy[T any](records []T, less func(a, b T) bool) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Paginate memotong sequence yang sudah difilter ke satu halaman.
// Page di-clamp ke [1, max(1, ceil(total/perPage))], tidak pernah dangling
// setelah delete atau filter menyempit.
func Paginate[T any](records []T, page, perPage int) ([]T, PageInfo) {
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	total := len(records)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	first := (page - 1) * perPage
	last := first + perPage
	if first > total {
		first = total
	}
	if last > total {
		last = total
	}

	items := make([]T, last-first)
	copy(items, records[first:last])

	return items, PageInfo{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
