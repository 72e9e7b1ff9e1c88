package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// ServicesClient implements netsim.ServicesClient.
type ServicesClient struct {
	httpClient *http.Client
	version    string
}

// NewServicesClient creates a new services client.
func NewServicesClient(httpClient *http.Client, version string) *ServicesClient {
	return &ServicesClient{
		httpClient: httpClient,
		version:    version,
	}
}

func (c *ServicesClient) basePath() string {
	return "/" + c.version + "/services/"
}

// List implements netsim.ServicesClient.List.
func (c *ServicesClient) List(ctx context.Context, params *netsim.QueryParams) ([]netsim.Service, error) {
	services, err := netsim.FollowPages[netsim.Service](ctx, c.httpClient, c.basePath(), defaultListQuery(params))
	if err != nil {
		return nil, fmt.Errorf("listing services: %w", err)
	}

	return services, nil
}

// Get implements netsim.ServicesClient.Get.
func (c *ServicesClient) Get(ctx context.Context, ref any) (*netsim.Service, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, c.basePath()+id+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting service: %w", err)
	}

	var service netsim.Service
	if err := json.Unmarshal(resp.Body, &service); err != nil {
		return nil, fmt.Errorf("parsing service response: %w", err)
	}

	return &service, nil
}

// Create implements netsim.ServicesClient.Create.
func (c *ServicesClient) Create(ctx context.Context, request *netsim.ServiceCreateRequest) (*netsim.Service, error) {
	resp, err := c.httpClient.Post(ctx, c.basePath(), request)
	if err != nil {
		return nil, fmt.Errorf("creating service: %w", err)
	}

	var service netsim.Service
	if err := json.Unmarshal(resp.Body, &service); err != nil {
		return nil, fmt.Errorf("parsing service response: %w", err)
	}

	return &service, nil
}

// Delete implements netsim.ServicesClient.Delete.
func (c *ServicesClient) Delete(ctx context.Context, ref any) error {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, c.basePath()+id+"/")
	if err != nil {
		return fmt.Errorf("deleting service: %w", err)
	}

	return nil
}
