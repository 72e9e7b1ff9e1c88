package netsim

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents common query parameters for list endpoints. Filters
// are passed through to the API verbatim; the client performs no filtering of
// its own.
type QueryParams struct {
	Limit   int
	OrderBy string
	Filters map[string][]string
}

// NewQueryParams creates a new QueryParams instance.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithLimit sets the page size requested from the API.
func (p *QueryParams) WithLimit(limit int) *QueryParams {
	p.Limit = limit

	return p
}

// WithOrderBy sets the ordering field, e.g. "-created".
func (p *QueryParams) WithOrderBy(orderBy string) *QueryParams {
	p.OrderBy = orderBy

	return p
}

// WithFilter appends filter values for a key.
func (p *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if p.Filters == nil {
		p.Filters = make(map[string][]string)
	}

	p.Filters[key] = append(p.Filters[key], values...)

	return p
}

// ToValues converts QueryParams to url.Values.
func (p *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	if p.OrderBy != "" {
		values.Set("order_by", p.OrderBy)
	}

	for key, filterValues := range p.Filters {
		if len(filterValues) > 0 {
			values.Set(key, strings.Join(filterValues, ","))
		}
	}

	return values
}
