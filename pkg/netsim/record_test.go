package netsim_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/netsim-io/netsim-client/pkg/netsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCall struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// fakeAPI implements netsim.Requester, serving canned responses keyed by
// "METHOD path" and recording every call.
type fakeAPI struct {
	responses map[string][]byte
	errs      map[string]error
	calls     []fakeCall
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		responses: make(map[string][]byte),
		errs:      make(map[string]error),
	}
}

func (f *fakeAPI) Request(_ context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	f.calls = append(f.calls, fakeCall{Method: method, Path: path, Query: query, Body: body})

	key := method + " " + path
	if err, ok := f.errs[key]; ok {
		return nil, err
	}

	if response, ok := f.responses[key]; ok {
		return response, nil
	}

	return nil, &netsim.NotFoundError{Endpoint: path}
}

func (f *fakeAPI) countCalls(method, path string) int {
	count := 0

	for _, call := range f.calls {
		if call.Method == method && call.Path == path {
			count++
		}
	}

	return count
}

const (
	simID      = "aaaaaaaa-1111-2222-3333-444444444444"
	topologyID = "bbbbbbbb-1111-2222-3333-444444444444"
	simURL     = "https://air.example.com/api/v1/simulations/" + simID + "/"
	topoURL    = "https://air.example.com/api/v1/topologies/" + topologyID + "/"
)

func newSimRecord(t *testing.T, api *fakeAPI) *netsim.Record {
	t.Helper()

	registry := netsim.DefaultRegistry()
	schema, ok := registry.Lookup("simulations")
	require.True(t, ok)

	return netsim.NewRecord(api, registry, schema, "v1", map[string]any{
		"id":       simID,
		"url":      simURL,
		"name":     "build test",
		"state":    netsim.SimulationStateNew,
		"topology": topoURL,
	})
}

func TestRecord_SetPatchesSingleField(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.responses["PATCH "+simURL] = []byte(`{"name": "renamed", "state": "LOADED", "modified": "2026-08-25T00:00:00Z"}`)

	record := newSimRecord(t, api)

	err := record.Set(context.Background(), "name", "renamed")
	require.NoError(t, err)

	require.Len(t, api.calls, 1)
	assert.Equal(t, "PATCH", api.calls[0].Method)
	assert.Equal(t, simURL, api.calls[0].Path)
	assert.Equal(t, map[string]any{"name": "renamed"}, api.calls[0].Body)

	name, _ := record.Get("name")
	assert.Equal(t, "renamed", name)

	// Server-computed fields from the response land in the bag too.
	state, _ := record.Get("state")
	assert.Equal(t, "LOADED", state)
	_, ok := record.Get("modified")
	assert.True(t, ok)
}

func TestRecord_SetFailedPatchLeavesBagUnchanged(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.errs["PATCH "+simURL] = &netsim.UnexpectedResponseError{StatusCode: 500, Endpoint: simURL}

	record := newSimRecord(t, api)

	err := record.Set(context.Background(), "name", "renamed")
	require.Error(t, err)

	var unexpected *netsim.UnexpectedResponseError
	require.ErrorAs(t, err, &unexpected)

	name, _ := record.Get("name")
	assert.Equal(t, "build test", name)
}

func TestRecord_SetOnUnpersistedRecordIsLocal(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	registry := netsim.DefaultRegistry()
	schema, ok := registry.Lookup("simulations")
	require.True(t, ok)

	record := netsim.NewRecord(api, registry, schema, "v1", map[string]any{"name": "draft"})

	err := record.Set(context.Background(), "name", "renamed")
	require.NoError(t, err)
	assert.Empty(t, api.calls)

	name, _ := record.Get("name")
	assert.Equal(t, "renamed", name)
}

func TestRecord_UpdatePatchesNamedFields(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.responses["PATCH "+simURL] = []byte(`{"name": "renamed", "sleep_at": "2026-09-01T00:00:00Z"}`)

	record := newSimRecord(t, api)

	err := record.Update(context.Background(), map[string]any{
		"name":     "renamed",
		"sleep_at": "2026-09-01T00:00:00Z",
	})
	require.NoError(t, err)

	require.Len(t, api.calls, 1)
	assert.Equal(t, "PATCH", api.calls[0].Method)
	assert.Equal(t, map[string]any{
		"name":     "renamed",
		"sleep_at": "2026-09-01T00:00:00Z",
	}, api.calls[0].Body)
}

func TestRecord_UpdateUnpersistedFails(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	registry := netsim.DefaultRegistry()
	schema, _ := registry.Lookup("simulations")
	record := netsim.NewRecord(api, registry, schema, "v1", nil)

	err := record.Update(context.Background(), map[string]any{"name": "x"})
	require.ErrorIs(t, err, netsim.ErrNotPersisted)
}

func TestRecord_RefreshOverwritesBag(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.responses["GET "+simURL] = []byte(`{"id": "` + simID + `", "url": "` + simURL + `", "name": "server name", "state": "LOADED"}`)

	record := newSimRecord(t, api)

	err := record.Refresh(context.Background())
	require.NoError(t, err)

	name, _ := record.Get("name")
	assert.Equal(t, "server name", name)

	// Fields absent from the server response are gone, not merged over.
	_, ok := record.Get("topology")
	assert.False(t, ok)
}

func TestRecord_RelatedResolvesAndCaches(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.responses["GET "+topoURL] = []byte(`{"id": "` + topologyID + `", "url": "` + topoURL + `", "name": "leaf-spine"}`)

	record := newSimRecord(t, api)

	topology, err := record.Related(context.Background(), "topology")
	require.NoError(t, err)
	assert.Equal(t, "topologies", topology.Type())
	assert.Equal(t, topologyID, topology.ID())

	again, err := record.Related(context.Background(), "topology")
	require.NoError(t, err)
	assert.Same(t, topology, again)
	assert.Equal(t, 1, api.countCalls("GET", topoURL))
}

func TestRecord_RefreshClearsRelatedCache(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.responses["GET "+topoURL] = []byte(`{"id": "` + topologyID + `", "url": "` + topoURL + `", "name": "leaf-spine"}`)
	api.responses["GET "+simURL] = []byte(`{"id": "` + simID + `", "url": "` + simURL + `", "topology": "` + topoURL + `"}`)

	record := newSimRecord(t, api)

	_, err := record.Related(context.Background(), "topology")
	require.NoError(t, err)

	require.NoError(t, record.Refresh(context.Background()))

	_, err = record.Related(context.Background(), "topology")
	require.NoError(t, err)
	assert.Equal(t, 2, api.countCalls("GET", topoURL))
}

func TestRecord_RelatedMissingTargetIsNotFound(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	record := newSimRecord(t, api)

	_, err := record.Related(context.Background(), "topology")
	require.Error(t, err)
	assert.True(t, netsim.IsNotFound(err))
}

func TestRecord_RelatedNonRelationshipField(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	record := newSimRecord(t, api)

	_, err := record.Related(context.Background(), "name")
	require.ErrorIs(t, err, netsim.ErrNotRelationship)

	_, err = record.Related(context.Background(), "no_such_field")
	require.ErrorIs(t, err, netsim.ErrUnknownField)
}

func TestRecord_RelatedListResolvesEachReference(t *testing.T) {
	t.Parallel()

	ifaceA := "cccccccc-1111-2222-3333-444444444444"
	ifaceB := "dddddddd-1111-2222-3333-444444444444"
	urlA := "https://air.example.com/api/v1/simulation-interfaces/" + ifaceA + "/"
	urlB := "https://air.example.com/api/v1/simulation-interfaces/" + ifaceB + "/"

	api := newFakeAPI()
	api.responses["GET "+urlA] = []byte(`{"id": "` + ifaceA + `", "url": "` + urlA + `", "name": "eth0"}`)
	api.responses["GET "+urlB] = []byte(`{"id": "` + ifaceB + `", "url": "` + urlB + `", "name": "eth1"}`)

	registry := netsim.DefaultRegistry()
	schema, _ := registry.Lookup("simulation-nodes")
	record := netsim.NewRecord(api, registry, schema, "v1", map[string]any{
		"id":         simID,
		"interfaces": []any{urlA, urlB},
	})

	interfaces, err := record.RelatedList(context.Background(), "interfaces")
	require.NoError(t, err)
	require.Len(t, interfaces, 2)
	assert.Equal(t, ifaceA, interfaces[0].ID())
	assert.Equal(t, ifaceB, interfaces[1].ID())

	// Cached after the first resolution.
	_, err = record.RelatedList(context.Background(), "interfaces")
	require.NoError(t, err)
	assert.Equal(t, 1, api.countCalls("GET", urlA))
}

func TestRecord_IsRelationship(t *testing.T) {
	t.Parallel()

	record := newSimRecord(t, newFakeAPI())

	assert.True(t, record.IsRelationship("topology"))
	assert.False(t, record.IsRelationship("name"))
	assert.False(t, record.IsRelationship("no_such_field"))
}

func TestRecord_SameResource(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	registry := netsim.DefaultRegistry()
	schema, _ := registry.Lookup("simulations")

	first := netsim.NewRecord(api, registry, schema, "v1", map[string]any{
		"id": simID, "url": simURL, "name": "a",
	})
	second := netsim.NewRecord(api, registry, schema, "v1", map[string]any{
		"id": simID, "url": simURL, "name": "stale name",
	})
	other := netsim.NewRecord(api, registry, schema, "v1", map[string]any{
		"id":  topologyID,
		"url": "https://air.example.com/api/v1/simulations/" + topologyID + "/",
	})

	assert.True(t, first.SameResource(second))
	assert.False(t, first.SameResource(other))
	assert.False(t, first.SameResource(nil))

	unpersisted := netsim.NewRecord(api, registry, schema, "v1", nil)
	assert.False(t, unpersisted.SameResource(unpersisted))
}

func TestRecord_DeleteIssuesDelete(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.responses["DELETE "+simURL] = []byte{}

	record := newSimRecord(t, api)
	require.NoError(t, record.Delete(context.Background()))

	require.Len(t, api.calls, 1)
	assert.Equal(t, "DELETE", api.calls[0].Method)
}

func TestRecords_ListWrapsResults(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.responses["GET /v1/simulations/"] = []byte(`{"count": 2, "next": null, "previous": null, "results": [
		{"id": "` + simID + `", "name": "one"},
		{"id": "` + topologyID + `", "name": "two"}
	]}`)

	registry := netsim.DefaultRegistry()
	schema, _ := registry.Lookup("simulations")
	records := netsim.NewRecords(api, registry, schema, "v1")

	list, err := records.List(context.Background(), netsim.NewQueryParams().WithFilter("state", "LOADED"))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "simulations", list[0].Type())

	require.Len(t, api.calls, 1)
	assert.Equal(t, "LOADED", api.calls[0].Query.Get("state"))
}

func TestRecords_GetAcceptsIDOrInstance(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.responses["GET /v1/simulations/"+simID+"/"] = []byte(`{"id": "` + simID + `", "name": "one"}`)

	registry := netsim.DefaultRegistry()
	schema, _ := registry.Lookup("simulations")
	records := netsim.NewRecords(api, registry, schema, "v1")

	byID, err := records.Get(context.Background(), simID)
	require.NoError(t, err)
	assert.Equal(t, simID, byID.ID())

	byInstance, err := records.Get(context.Background(), byID)
	require.NoError(t, err)
	assert.Equal(t, simID, byInstance.ID())
}

func TestRecords_Create(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.responses["POST /v1/simulations/"] = []byte(`{"id": "` + simID + `", "url": "` + simURL + `", "name": "created"}`)

	registry := netsim.DefaultRegistry()
	schema, _ := registry.Lookup("simulations")
	records := netsim.NewRecords(api, registry, schema, "v1")

	record, err := records.Create(context.Background(), map[string]any{"topology": topologyID})
	require.NoError(t, err)
	assert.Equal(t, simID, record.ID())
	assert.Equal(t, simURL, record.CanonicalURL())
}

func TestResolveID(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse(simID)

	tests := []struct {
		name    string
		ref     any
		want    string
		wantErr bool
	}{
		{name: "string", ref: simID, want: simID},
		{name: "uuid", ref: id, want: simID},
		{name: "typed resource", ref: netsim.Simulation{Resource: netsim.Resource{ID: simID}}, want: simID},
		{name: "typed resource pointer", ref: &netsim.Simulation{Resource: netsim.Resource{ID: simID}}, want: simID},
		{name: "empty string", ref: "", wantErr: true},
		{name: "unsupported type", ref: 42, wantErr: true},
		{name: "nil", ref: nil, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := netsim.ResolveID(tt.ref)
			if tt.wantErr {
				require.ErrorIs(t, err, netsim.ErrInvalidIdentifier)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
