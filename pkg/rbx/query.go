package rbx

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams captures the query options shared by cursor-paginated Roblox
// list endpoints.
type QueryParams struct {
	// Cursor is the opaque page cursor from a previous response.
	Cursor string

	// Limit is the page size. Roblox accepts 10, 25, 50, or 100 on most
	// endpoints; zero omits the parameter.
	Limit int

	// SortOrder orders results ascending or descending by creation time.
	SortOrder SortOrder

	// Keyword is the search term for search endpoints.
	Keyword string

	// Extra holds endpoint-specific parameters, e.g. "userSort" on group
	// member listings. Multi-value parameters are joined with commas.
	Extra map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithCursor sets the page cursor.
func (q *QueryParams) WithCursor(cursor string) *QueryParams {
	q.Cursor = cursor

	return q
}

// WithLimit sets the page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithSortOrder sets the sort order.
func (q *QueryParams) WithSortOrder(order SortOrder) *QueryParams {
	q.SortOrder = order

	return q
}

// WithKeyword sets the search keyword.
func (q *QueryParams) WithKeyword(keyword string) *QueryParams {
	q.Keyword = keyword

	return q
}

// WithExtra adds an endpoint-specific parameter.
func (q *QueryParams) WithExtra(key string, values ...string) *QueryParams {
	if q.Extra == nil {
		q.Extra = make(map[string][]string)
	}

	q.Extra[key] = values

	return q
}

// ToValues converts QueryParams to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Cursor != "" {
		values.Set("cursor", q.Cursor)
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.SortOrder != "" {
		values.Set("sortOrder", string(q.SortOrder))
	}

	if q.Keyword != "" {
		values.Set("keyword", q.Keyword)
	}

	for key, vals := range q.Extra {
		values.Set(key, strings.Join(vals, ","))
	}

	return values
}

// Clone returns a copy of the params that can be mutated independently.
func (q *QueryParams) Clone() *QueryParams {
	if q == nil {
		return NewQueryParams()
	}

	clone := *q

	if q.Extra != nil {
		clone.Extra = make(map[string][]string, len(q.Extra))
		for key, vals := range q.Extra {
			clone.Extra[key] = append([]string(nil), vals...)
		}
	}

	return &clone
}
