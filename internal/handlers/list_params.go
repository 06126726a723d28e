package handlers

import (
	"net/http"
	"strconv"

	"invoice-backend/internal/query"
)

// listOptions reads the filter/first/rows query parameters shared by every
// collection listing. Absent or malformed paging params mean "no
// pagination".
func listOptions(r *http.Request) query.Options {
	q := r.URL.Query()
	opts := query.Options{GlobalFilter: q.Get("filter")}

	if first, err := strconv.Atoi(q.Get("first")); err == nil {
		if rows, err := strconv.Atoi(q.Get("rows")); err == nil {
			opts.First = &first
			opts.Rows = &rows
		}
	}
	return opts
}

// pathID parses the {id} route variable (a millisecond-timestamp id).
func pathID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
