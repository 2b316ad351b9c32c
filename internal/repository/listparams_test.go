package repository

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseListParams(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		params := ParseListParams(url.Values{}, CustomerFields)
		require.Empty(t, params.Filters)
		require.Equal(t, "", params.SortBy)
		require.Equal(t, "asc", params.Direction)
		require.Equal(t, 1, params.Page)
		require.Equal(t, 10, params.PerPage)
	})

	t.Run("keeps only whitelisted fields", func(t *testing.T) {
		values := url.Values{}
		values.Set("name", "ali")
		values.Set("password_hash", "x")
		values.Set("sort_by", "email")
		values.Set("direction", "desc")
		values.Set("page", "3")
		values.Set("per_page", "25")

		params := ParseListParams(values, CustomerFields)
		require.Equal(t, map[string]string{"name": "ali"}, params.Filters)
		require.Equal(t, "email", params.SortBy)
		require.Equal(t, "desc", params.Direction)
		require.Equal(t, 3, params.Page)
		require.Equal(t, 25, params.PerPage)
	})

	t.Run("rejects non-whitelisted sort column", func(t *testing.T) {
		values := url.Values{}
		values.Set("sort_by", "password_hash")

		params := ParseListParams(values, CustomerFields)
		require.Equal(t, "", params.SortBy)
	})

	t.Run("caps per_page and ignores garbage numbers", func(t *testing.T) {
		values := url.Values{}
		values.Set("per_page", "100000")
		values.Set("page", "zero")

		params := ParseListParams(values, CustomerFields)
		require.Equal(t, 100, params.PerPage)
		require.Equal(t, 1, params.Page)
	})
}

func TestBuildListQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		suffix, args := buildListQuery(ListParams{Direction: "asc", Page: 1, PerPage: 10})
		require.Equal(t, " ORDER BY id ASC LIMIT 10 OFFSET 0", suffix)
		require.Empty(t, args)
	})

	t.Run("filter with sort and pagination", func(t *testing.T) {
		suffix, args := buildListQuery(ListParams{
			Filters:   map[string]string{"name": "ali"},
			SortBy:    "email",
			Direction: "desc",
			Page:      2,
			PerPage:   20,
		})
		require.Equal(t, " WHERE name ILIKE $1 ORDER BY email DESC LIMIT 20 OFFSET 20", suffix)
		require.Equal(t, []any{"%ali%"}, args)
	})
}
