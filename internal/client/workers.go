package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// WorkersClient implements netsim.WorkersClient.
type WorkersClient struct {
	httpClient *http.Client
	version    string
}

// NewWorkersClient creates a new workers client.
func NewWorkersClient(httpClient *http.Client, version string) *WorkersClient {
	return &WorkersClient{
		httpClient: httpClient,
		version:    version,
	}
}

func (c *WorkersClient) basePath() string {
	return "/" + c.version + "/workers/"
}

// List implements netsim.WorkersClient.List.
func (c *WorkersClient) List(ctx context.Context, params *netsim.QueryParams) ([]netsim.Worker, error) {
	workers, err := netsim.FollowPages[netsim.Worker](ctx, c.httpClient, c.basePath(), defaultListQuery(params))
	if err != nil {
		return nil, fmt.Errorf("listing workers: %w", err)
	}

	return workers, nil
}

// Get implements netsim.WorkersClient.Get.
func (c *WorkersClient) Get(ctx context.Context, ref any) (*netsim.Worker, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, c.basePath()+id+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting worker: %w", err)
	}

	var worker netsim.Worker
	if err := json.Unmarshal(resp.Body, &worker); err != nil {
		return nil, fmt.Errorf("parsing worker response: %w", err)
	}

	return &worker, nil
}

// Update implements netsim.WorkersClient.Update.
func (c *WorkersClient) Update(ctx context.Context, ref any, fields map[string]any) (*netsim.Worker, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, c.basePath()+id+"/", fields)
	if err != nil {
		return nil, fmt.Errorf("updating worker: %w", err)
	}

	var worker netsim.Worker
	if err := json.Unmarshal(resp.Body, &worker); err != nil {
		return nil, fmt.Errorf("parsing worker response: %w", err)
	}

	return &worker, nil
}

// SetAvailable implements netsim.WorkersClient.SetAvailable.
func (c *WorkersClient) SetAvailable(ctx context.Context, ref any, available bool) (*netsim.Worker, error) {
	return c.Update(ctx, ref, map[string]any{"available": available})
}
