package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// NodesClient implements netsim.NodesClient.
type NodesClient struct {
	httpClient *http.Client
	version    string
}

// NewNodesClient creates a new topology nodes client.
func NewNodesClient(httpClient *http.Client, version string) *NodesClient {
	return &NodesClient{
		httpClient: httpClient,
		version:    version,
	}
}

func (c *NodesClient) basePath() string {
	return "/" + c.version + "/nodes/"
}

// List implements netsim.NodesClient.List.
func (c *NodesClient) List(ctx context.Context, params *netsim.QueryParams) ([]netsim.Node, error) {
	nodes, err := netsim.FollowPages[netsim.Node](ctx, c.httpClient, c.basePath(), defaultListQuery(params))
	if err != nil {
		return nil, fmt.Errorf("listing nodes: %w", err)
	}

	return nodes, nil
}

// Get implements netsim.NodesClient.Get.
func (c *NodesClient) Get(ctx context.Context, ref any) (*netsim.Node, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, c.basePath()+id+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting node: %w", err)
	}

	var node netsim.Node
	if err := json.Unmarshal(resp.Body, &node); err != nil {
		return nil, fmt.Errorf("parsing node response: %w", err)
	}

	return &node, nil
}
