package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
	"gopkg.in/yaml.v3"
)

// TopologiesClient implements netsim.TopologiesClient.
type TopologiesClient struct {
	httpClient *http.Client
	version    string
}

// NewTopologiesClient creates a new topologies client.
func NewTopologiesClient(httpClient *http.Client, version string) *TopologiesClient {
	return &TopologiesClient{
		httpClient: httpClient,
		version:    version,
	}
}

func (c *TopologiesClient) basePath() string {
	return "/" + c.version + "/topologies/"
}

// List implements netsim.TopologiesClient.List.
func (c *TopologiesClient) List(ctx context.Context, params *netsim.QueryParams) ([]netsim.Topology, error) {
	topologies, err := netsim.FollowPages[netsim.Topology](ctx, c.httpClient, c.basePath(), defaultListQuery(params))
	if err != nil {
		return nil, fmt.Errorf("listing topologies: %w", err)
	}

	return topologies, nil
}

// Get implements netsim.TopologiesClient.Get.
func (c *TopologiesClient) Get(ctx context.Context, ref any) (*netsim.Topology, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, c.basePath()+id+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting topology: %w", err)
	}

	var topology netsim.Topology
	if err := json.Unmarshal(resp.Body, &topology); err != nil {
		return nil, fmt.Errorf("parsing topology response: %w", err)
	}

	return &topology, nil
}

// Create implements netsim.TopologiesClient.Create.
func (c *TopologiesClient) Create(ctx context.Context, request *netsim.TopologyCreateRequest) (*netsim.Topology, error) {
	resp, err := c.httpClient.Post(ctx, c.basePath(), request)
	if err != nil {
		return nil, fmt.Errorf("creating topology: %w", err)
	}

	var topology netsim.Topology
	if err := json.Unmarshal(resp.Body, &topology); err != nil {
		return nil, fmt.Errorf("parsing topology response: %w", err)
	}

	return &topology, nil
}

// Update implements netsim.TopologiesClient.Update.
func (c *TopologiesClient) Update(ctx context.Context, ref any, fields map[string]any) (*netsim.Topology, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, c.basePath()+id+"/", fields)
	if err != nil {
		return nil, fmt.Errorf("updating topology: %w", err)
	}

	var topology netsim.Topology
	if err := json.Unmarshal(resp.Body, &topology); err != nil {
		return nil, fmt.Errorf("parsing topology response: %w", err)
	}

	return &topology, nil
}

// Delete implements netsim.TopologiesClient.Delete.
func (c *TopologiesClient) Delete(ctx context.Context, ref any) error {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, c.basePath()+id+"/")
	if err != nil {
		return fmt.Errorf("deleting topology: %w", err)
	}

	return nil
}

// CreateFromManifest implements netsim.TopologiesClient.CreateFromManifest.
func (c *TopologiesClient) CreateFromManifest(ctx context.Context, manifest []byte) (*netsim.Topology, error) {
	var parsed netsim.TopologyManifest
	if err := yaml.Unmarshal(manifest, &parsed); err != nil {
		return nil, fmt.Errorf("parsing topology manifest: %w", err)
	}

	return c.Create(ctx, &netsim.TopologyCreateRequest{
		Name:          parsed.Name,
		Documentation: parsed.Documentation,
		Organization:  parsed.Organization,
		Nodes:         parsed.Nodes,
		Links:         parsed.Links,
	})
}

// CreateFromFile implements netsim.TopologiesClient.CreateFromFile.
func (c *TopologiesClient) CreateFromFile(ctx context.Context, path string) (*netsim.Topology, error) {
	manifest, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading topology manifest: %w", err)
	}

	return c.CreateFromManifest(ctx, manifest)
}
