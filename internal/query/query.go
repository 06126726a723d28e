// Package query implements the shared filter-then-paginate contract used by
// every collection listing: case-insensitive substring match over named
// fields (OR across fields), computed on the full collection before any
// slicing, so TotalRecords always reflects the filtered pre-pagination
// count.
package query

import "strings"

// Options carries an optional global text filter and an optional
// offset/limit window. Nil First/Rows means "return the full filtered set".
type Options struct {
	GlobalFilter string
	First        *int
	Rows         *int
}

// Result pairs a page of records with the filtered total.
type Result[T any] struct {
	Data         []T `json:"data"`
	TotalRecords int `json:"totalRecords"`
}

// Apply filters records with fields (which lists the searchable strings of
// one record) and then slices the requested window. An out-of-range window
// yields an empty page, not an error.
func Apply[T any](records []T, opts Options, fields func(T) []string) Result[T] {
	filtered := records
	if opts.GlobalFilter != "" {
		needle := strings.ToLower(opts.GlobalFilter)
		filtered = make([]T, 0, len(records))
		for _, rec := range records {
			for _, f := range fields(rec) {
				if f != "" && strings.Contains(strings.ToLower(f), needle) {
					filtered = append(filtered, rec)
					break
				}
			}
		}
	}

	total := len(filtered)
	if opts.First != nil && opts.Rows != nil {
		filtered = Slice(filtered, *opts.First, *opts.Rows)
	}
	return Result[T]{Data: filtered, TotalRecords: total}
}

// Slice returns records[first : first+rows), clamped to the valid range.
func Slice[T any](records []T, first, rows int) []T {
	if first < 0 {
		first = 0
	}
	if first >= len(records) || rows <= 0 {
		return []T{}
	}
	end := first + rows
	if end > len(records) {
		end = len(records)
	}
	return records[first:end]
}

// Last returns up to n trailing elements, preserving order. Used for the
// "most recent contributors" drill-down caps.
func Last[T any](records []T, n int) []T {
	if len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}
