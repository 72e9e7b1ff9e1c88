package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/netsim-io/netsim-client/internal/client"
	"github.com/netsim-io/netsim-client/pkg/netsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/jobs/", r.URL.Path)
		assert.Equal(t, "PENDING", r.URL.Query().Get("state"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"count":    1,
			"next":     nil,
			"previous": nil,
			"results": []map[string]any{
				{"id": "job-1", "category": "start_simulation", "state": "PENDING"},
			},
		})
	}))
	defer server.Close()

	cli := client.NewTestClient(server.URL)

	jobs, err := cli.Jobs().List(context.Background(), netsim.NewQueryParams().WithFilter("state", "PENDING"))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "start_simulation", jobs[0].Category)
}

func TestJobsClient_UpdateReportsProgress(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/jobs/job-1/", r.URL.Path)

		var fields map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.Equal(t, "COMPLETE", fields["state"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "job-1", "category": "start_simulation", "state": "COMPLETE",
		})
	}))
	defer server.Close()

	cli := client.NewTestClient(server.URL)

	job, err := cli.Jobs().Update(context.Background(), "job-1", map[string]any{"state": "COMPLETE"})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETE", job.State)
}

func TestJobsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/jobs/job-1/", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "job-1", "category": "stop_simulation", "state": "RUNNING", "worker": "worker-1",
			"data": map[string]any{"simulation": "sim-1"},
		})
	}))
	defer server.Close()

	cli := client.NewTestClient(server.URL)

	job, err := cli.Jobs().Get(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, "worker-1", job.Worker)
	assert.Equal(t, "sim-1", job.Data["simulation"])
}
