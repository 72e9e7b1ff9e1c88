package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// SimulationsClient implements netsim.SimulationsClient.
type SimulationsClient struct {
	httpClient *http.Client
	version    string
}

// NewSimulationsClient creates a new simulations client.
func NewSimulationsClient(httpClient *http.Client, version string) *SimulationsClient {
	return &SimulationsClient{
		httpClient: httpClient,
		version:    version,
	}
}

func (c *SimulationsClient) basePath() string {
	return "/" + c.version + "/simulations/"
}

// List implements netsim.SimulationsClient.List.
func (c *SimulationsClient) List(ctx context.Context, params *netsim.QueryParams) ([]netsim.Simulation, error) {
	sims, err := netsim.FollowPages[netsim.Simulation](ctx, c.httpClient, c.basePath(), defaultListQuery(params))
	if err != nil {
		return nil, fmt.Errorf("listing simulations: %w", err)
	}

	return sims, nil
}

// Get implements netsim.SimulationsClient.Get.
func (c *SimulationsClient) Get(ctx context.Context, ref any) (*netsim.Simulation, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, c.basePath()+id+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting simulation: %w", err)
	}

	var sim netsim.Simulation
	if err := json.Unmarshal(resp.Body, &sim); err != nil {
		return nil, fmt.Errorf("parsing simulation response: %w", err)
	}

	return &sim, nil
}

// Create implements netsim.SimulationsClient.Create.
func (c *SimulationsClient) Create(ctx context.Context, request *netsim.SimulationCreateRequest) (*netsim.Simulation, error) {
	resp, err := c.httpClient.Post(ctx, c.basePath(), request)
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}

	var sim netsim.Simulation
	if err := json.Unmarshal(resp.Body, &sim); err != nil {
		return nil, fmt.Errorf("parsing simulation response: %w", err)
	}

	return &sim, nil
}

// Update implements netsim.SimulationsClient.Update. Changes go through a
// single PATCH carrying only the named fields.
func (c *SimulationsClient) Update(ctx context.Context, ref any, fields map[string]any) (*netsim.Simulation, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, c.basePath()+id+"/", fields)
	if err != nil {
		return nil, fmt.Errorf("updating simulation: %w", err)
	}

	var sim netsim.Simulation
	if err := json.Unmarshal(resp.Body, &sim); err != nil {
		return nil, fmt.Errorf("parsing simulation response: %w", err)
	}

	return &sim, nil
}

// Delete implements netsim.SimulationsClient.Delete.
func (c *SimulationsClient) Delete(ctx context.Context, ref any) error {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, c.basePath()+id+"/")
	if err != nil {
		return fmt.Errorf("deleting simulation: %w", err)
	}

	return nil
}

// Control implements netsim.SimulationsClient.Control.
func (c *SimulationsClient) Control(ctx context.Context, ref any, action string, options map[string]any) (map[string]any, error) {
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
		return nil, fmt.Errorf("controlling simulation: %w", err)
	}

	result := make(map[string]any)
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &result); err != nil {
			return nil, fmt.Errorf("parsing control response: %w", err)
		}
	}

	return result, nil
}

// Start implements netsim.SimulationsClient.Start.
func (c *SimulationsClient) Start(ctx context.Context, ref any) error {
	_, err := c.Control(ctx, ref, "load", nil)

	return err
}

// Stop implements netsim.SimulationsClient.Stop.
func (c *SimulationsClient) Stop(ctx context.Context, ref any) error {
	_, err := c.Control(ctx, ref, "store", nil)

	return err
}

// Duplicate implements netsim.SimulationsClient.Duplicate.
func (c *SimulationsClient) Duplicate(ctx context.Context, ref any, fields map[string]any) (*netsim.Simulation, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, c.basePath()+id+"/duplicate/", fields)
	if err != nil {
		return nil, fmt.Errorf("duplicating simulation: %w", err)
	}

	var sim netsim.Simulation
	if err := json.Unmarshal(resp.Body, &sim); err != nil {
		return nil, fmt.Errorf("parsing simulation response: %w", err)
	}

	return &sim, nil
}
