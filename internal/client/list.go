package client

import (
	"net/url"
	"strconv"

	"github.com/netsim-io/netsim-client/internal/constants"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// defaultListQuery converts list params to query values, applying the default
// page size when the caller did not set one.
func defaultListQuery(params *netsim.QueryParams) url.Values {
	query := params.ToValues()
	if query.Get("limit") == "" {
		query.Set("limit", strconv.Itoa(constants.DefaultPageSize))
	}

	return query
}
