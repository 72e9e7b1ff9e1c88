package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// SimulationNodesClient implements netsim.SimulationNodesClient.
type SimulationNodesClient struct {
	httpClient *http.Client
	version    string
}

// NewSimulationNodesClient creates a new simulation nodes client.
func NewSimulationNodesClient(httpClient *http.Client, version string) *SimulationNodesClient {
	return &SimulationNodesClient{
		httpClient: httpClient,
		version:    version,
	}
}

func (c *SimulationNodesClient) basePath() string {
	return "/" + c.version + "/simulation-nodes/"
}

// List implements netsim.SimulationNodesClient.List.
func (c *SimulationNodesClient) List(ctx context.Context, params *netsim.QueryParams) ([]netsim.SimulationNode, error) {
	nodes, err := netsim.FollowPages[netsim.SimulationNode](ctx, c.httpClient, c.basePath(), defaultListQuery(params))
	if err != nil {
		return nil, fmt.Errorf("listing simulation nodes: %w", err)
	}

	return nodes, nil
}

// Get implements netsim.SimulationNodesClient.Get.
func (c *SimulationNodesClient) Get(ctx context.Context, ref any) (*netsim.SimulationNode, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, c.basePath()+id+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting simulation node: %w", err)
	}

	var node netsim.SimulationNode
	if err := json.Unmarshal(resp.Body, &node); err != nil {
		return nil, fmt.Errorf("parsing simulation node response: %w", err)
	}

	return &node, nil
}

// Update implements netsim.SimulationNodesClient.Update.
func (c *SimulationNodesClient) Update(ctx context.Context, ref any, fields map[string]any) (*netsim.SimulationNode, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, c.basePath()+id+"/", fields)
	if err != nil {
		return nil, fmt.Errorf("updating simulation node: %w", err)
	}

	var node netsim.SimulationNode
	if err := json.Unmarshal(resp.Body, &node); err != nil {
		return nil, fmt.Errorf("parsing simulation node response: %w", err)
	}

	return &node, nil
}

// Control implements netsim.SimulationNodesClient.Control.
func (c *SimulationNodesClient) Control(ctx context.Context, ref any, action string, options map[string]any) (map[string]any, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{"action": action}
	for key, value := range options {
		payload[key] = value
	}

	resp, err := c.httpClient.Post(ctx, c.basePath()+id+"/control/", payload)
	if err != nil {
		return nil, fmt.Errorf("controlling simulation node: %w", err)
	}

	result := make(map[string]any)
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &result); err != nil {
			return nil, fmt.Errorf("parsing control response: %w", err)
		}
	}

	return result, nil
}
