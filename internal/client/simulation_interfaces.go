package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// SimulationInterfacesClient implements netsim.SimulationInterfacesClient.
type SimulationInterfacesClient struct {
	httpClient *http.Client
	version    string
}

// NewSimulationInterfacesClient creates a new simulation interfaces client.
func NewSimulationInterfacesClient(httpClient *http.Client, version string) *SimulationInterfacesClient {
	return &SimulationInterfacesClient{
		httpClient: httpClient,
		version:    version,
	}
}

func (c *SimulationInterfacesClient) basePath() string {
	return "/" + c.version + "/simulation-interfaces/"
}

// List implements netsim.SimulationInterfacesClient.List.
func (c *SimulationInterfacesClient) List(ctx context.Context, params *netsim.QueryParams) ([]netsim.SimulationInterface, error) {
	interfaces, err := netsim.FollowPages[netsim.SimulationInterface](ctx, c.httpClient, c.basePath(), defaultListQuery(params))
	if err != nil {
		return nil, fmt.Errorf("listing simulation interfaces: %w", err)
	}

	return interfaces, nil
}

// Get implements netsim.SimulationInterfacesClient.Get.
func (c *SimulationInterfacesClient) Get(ctx context.Context, ref any) (*netsim.SimulationInterface, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, c.basePath()+id+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting simulation interface: %w", err)
	}

	var iface netsim.SimulationInterface
	if err := json.Unmarshal(resp.Body, &iface); err != nil {
		return nil, fmt.Errorf("parsing simulation interface response: %w", err)
	}

	return &iface, nil
}
