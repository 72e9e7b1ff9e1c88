package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// JobsClient implements netsim.JobsClient.
type JobsClient struct {
	httpClient *http.Client
	version    string
}

// NewJobsClient creates a new jobs client.
func NewJobsClient(httpClient *http.Client, version string) *JobsClient {
	return &JobsClient{
		httpClient: httpClient,
		version:    version,
	}
}

func (c *JobsClient) basePath() string {
	return "/" + c.version + "/jobs/"
}

// List implements netsim.JobsClient.List.
func (c *JobsClient) List(ctx context.Context, params *netsim.QueryParams) ([]netsim.Job, error) {
	jobs, err := netsim.FollowPages[netsim.Job](ctx, c.httpClient, c.basePath(), defaultListQuery(params))
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	return jobs, nil
}

// Get implements netsim.JobsClient.Get.
func (c *JobsClient) Get(ctx context.Context, ref any) (*netsim.Job, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, c.basePath()+id+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting job: %w", err)
	}

	var job netsim.Job
	if err := json.Unmarshal(resp.Body, &job); err != nil {
		return nil, fmt.Errorf("parsing job response: %w", err)
	}

	return &job, nil
}

// Update implements netsim.JobsClient.Update. Workers report progress by
// patching job state.
func (c *JobsClient) Update(ctx context.Context, ref any, fields map[string]any) (*netsim.Job, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, c.basePath()+id+"/", fields)
	if err != nil {
		return nil, fmt.Errorf("updating job: %w", err)
	}

	var job netsim.Job
	if err := json.Unmarshal(resp.Body, &job); err != nil {
		return nil, fmt.Errorf("parsing job response: %w", err)
	}

	return &job, nil
}
