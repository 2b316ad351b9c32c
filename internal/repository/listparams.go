package repository

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// ListParams captures the filter/sort/pagination surface the list endpoints
// expose: any filterable field becomes a substring filter, sort_by/direction
// pick the ordering, page/per_page slice the result.
type ListParams struct {
	Filters   map[string]string
	SortBy    string
	Direction string
	Page      int
	PerPage   int
}

// ParseListParams reads params from the query string, keeping only fields
// in the allowed set. Unknown fields and bad numbers fall back to defaults
// rather than erroring, matching the lenient behavior of the old service.
func ParseListParams(values url.Values, allowedFields []string) ListParams {
	allowed := map[string]struct{}{}
	for _, f := range allowedFields {
		allowed[f] = struct{}{}
	}

	params := ListParams{
		Filters:   map[string]string{},
		Direction: "asc",
		Page:      1,
		PerPage:   defaultPerPage,
	}

	for key := range values {
		if _, ok := allowed[key]; ok {
			if v := strings.TrimSpace(values.Get(key)); v != "" {
				params.Filters[key] = v
			}
		}
	}

	if sortBy := values.Get("sort_by"); sortBy != "" {
		if _, ok := allowed[sortBy]; ok {
			params.SortBy = sortBy
		}
	}
	if values.Get("direction") == "desc" {
		params.Direction = "desc"
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		params.Page = page
	}
	if perPage, err := strconv.Atoi(values.Get("per_page")); err == nil && perPage > 0 {
		params.PerPage = min(perPage, maxPerPage)
	}

	return params
}

// buildListQuery renders params into a WHERE/ORDER BY/LIMIT/OFFSET suffix
// with positional arguments starting at $1. Column names only ever come from
// the caller's whitelist, never from the request.
func buildListQuery(params ListParams) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(params.Filters))

	for field, value := range params.Filters {
		if len(args) == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, "%"+value+"%")
		fmt.Fprintf(&sb, "%s ILIKE $%d", field, len(args))
	}

	if params.SortBy != "" {
		direction := "ASC"
		if params.Direction == "desc" {
			direction = "DESC"
		}
		fmt.Fprintf(&sb, " ORDER BY %s %s", params.SortBy, direction)
	} else {
		sb.WriteString(" ORDER BY id ASC")
	}

	fmt.Fprintf(&sb, " LIMIT %d OFFSET %d", params.PerPage, (params.Page-1)*params.PerPage)

	return sb.String(), args
}
