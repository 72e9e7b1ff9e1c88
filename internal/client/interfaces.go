package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// InterfacesClient implements netsim.InterfacesClient.
type InterfacesClient struct {
	httpClient *http.Client
	version    string
}

// NewInterfacesClient creates a new topology interfaces client.
func NewInterfacesClient(httpClient *http.Client, version string) *InterfacesClient {
	return &InterfacesClient{
		httpClient: httpClient,
		version:    version,
	}
}

func (c *InterfacesClient) basePath() string {
	return "/" + c.version + "/interfaces/"
}

// List implements netsim.InterfacesClient.List.
func (c *InterfacesClient) List(ctx context.Context, params *netsim.QueryParams) ([]netsim.Interface, error) {
	interfaces, err := netsim.FollowPages[netsim.Interface](ctx, c.httpClient, c.basePath(), defaultListQuery(params))
	if err != nil {
		return nil, fmt.Errorf("listing interfaces: %w", err)
	}

	return interfaces, nil
}

// Get implements netsim.InterfacesClient.Get.
func (c *InterfacesClient) Get(ctx context.Context, ref any) (*netsim.Interface, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, c.basePath()+id+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting interface: %w", err)
	}

	var iface netsim.Interface
	if err := json.Unmarshal(resp.Body, &iface); err != nil {
		return nil, fmt.Errorf("parsing interface response: %w", err)
	}

	return &iface, nil
}
