// Package query holds the pure in-memory transforms applied to a loaded
// collection. Composition order is always filter, then sort, then page;
// the total count a caller reports must come from the post-filter,
// pre-page slice.
package query

import (
	"sort"
	"strings"
)

// PagedResult is one page of a filtered, sorted collection plus the total
// count before paging.
type PagedResult[T any] struct {
	Items      []T
	TotalCount int
	Page       int
	PageSize   int
}

// Filter keeps the records where any of the given text fields contains
// term as a case-insensitive substring. An empty term keeps everything.
// Relative order of survivors is preserved.
func Filter[T any](records []T, term string, fields ...func(T) string) []T {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)

	filtered := make([]T, 0, len(records))
	for _, r := range records {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(r)), needle) {
				filtered = append(filtered, r)
				break
			}
		}
	}
	return filtered
}

// SortStable orders records by the given less function, descending when
// requested. The sort is stable in both directions: records comparing
// equal keep their relative order, so equal salaries stay in file order.
func SortStable[T any](records []T, less func(a, b T) bool, descending bool) []T {
	sorted := make([]T, len(records))
	copy(sorted, records)

	if descending {
		// Swapping the operands instead of negating keeps ties stable.
		sort.SliceStable(sorted, func(i, j int) bool {
			return less(sorted[j], sorted[i])
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return less(sorted[i], sorted[j])
		})
	}
	return sorted
}

// Page returns the 1-based page of the given size, clipped to the
// available length. Pages past the end are empty, not an error;
// non-positive page or size is clamped rather than rejected.
func Page[T any](records []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	start := (page - 1) * size
	if start >= len(records) {
		return []T{}
	}
	end := start + size
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
