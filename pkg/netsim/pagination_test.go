package netsim_test

import (
	"context"
	"testing"

	"github.com/netsim-io/netsim-client/pkg/netsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestFollowPages_MultiplePages(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.responses["GET /v1/nodes/"] = []byte(`{
		"count": 5,
		"next": "https://air.example.com/api/v1/nodes/?limit=3&page=2",
		"previous": null,
		"results": [{"id": "1", "name": "a"}, {"id": "2", "name": "b"}, {"id": "3", "name": "c"}]
	}`)
	api.responses["GET https://air.example.com/api/v1/nodes/?limit=3&page=2"] = []byte(`{
		"count": 5,
		"next": null,
		"previous": "https://air.example.com/api/v1/nodes/?limit=3",
		"results": [{"id": "4", "name": "d"}, {"id": "5", "name": "e"}]
	}`)

	items, err := netsim.FollowPages[pageItem](context.Background(), api, "/v1/nodes/", netsim.NewQueryParams().WithLimit(3).ToValues())
	require.NoError(t, err)
	require.Len(t, items, 5)

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)

	// Caller query only on the first request; the next link carries its own.
	require.Len(t, api.calls, 2)
	assert.Equal(t, "3", api.calls[0].Query.Get("limit"))
	assert.Nil(t, api.calls[1].Query)
}

func TestFollowPages_BareArray(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.responses["GET /v1/workers/"] = []byte(`  [{"id": "1", "name": "w1"}, {"id": "2", "name": "w2"}]`)

	items, err := netsim.FollowPages[pageItem](context.Background(), api, "/v1/workers/", nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "w1", items[0].Name)
}

func TestFollowPages_RequestError(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.errs["GET /v1/nodes/"] = &netsim.ForbiddenError{Endpoint: "/v1/nodes/"}

	_, err := netsim.FollowPages[pageItem](context.Background(), api, "/v1/nodes/", nil)
	require.Error(t, err)
	assert.True(t, netsim.IsForbidden(err))
}

func TestFollowPages_MalformedBody(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.responses["GET /v1/nodes/"] = []byte(`not json`)

	_, err := netsim.FollowPages[pageItem](context.Background(), api, "/v1/nodes/", nil)
	require.Error(t, err)
}

func TestPageIterator(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.responses["GET /v1/nodes/"] = []byte(`{
		"count": 3,
		"next": "https://air.example.com/api/v1/nodes/?page=2",
		"previous": null,
		"results": [{"id": "1", "name": "a"}, {"id": "2", "name": "b"}]
	}`)
	api.responses["GET https://air.example.com/api/v1/nodes/?page=2"] = []byte(`{
		"count": 3,
		"next": null,
		"previous": "https://air.example.com/api/v1/nodes/",
		"results": [{"id": "3", "name": "c"}]
	}`)

	it := netsim.NewPageIterator[pageItem](api, "/v1/nodes/", nil)

	require.True(t, it.HasMore())
	first, err := it.NextPage(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 2)

	require.True(t, it.HasMore())
	second, err := it.NextPage(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)

	assert.False(t, it.HasMore())
	empty, err := it.NextPage(context.Background())
	require.NoError(t, err)
	assert.Empty(t, empty)
}
