package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// OrganizationsClient implements netsim.OrganizationsClient.
type OrganizationsClient struct {
	httpClient *http.Client
	version    string
}

// NewOrganizationsClient creates a new organizations client.
func NewOrganizationsClient(httpClient *http.Client, version string) *OrganizationsClient {
	return &OrganizationsClient{
		httpClient: httpClient,
		version:    version,
	}
}

func (c *OrganizationsClient) basePath() string {
	return "/" + c.version + "/organizations/"
}

// List implements netsim.OrganizationsClient.List.
func (c *OrganizationsClient) List(ctx context.Context, params *netsim.QueryParams) ([]netsim.Organization, error) {
	organizations, err := netsim.FollowPages[netsim.Organization](ctx, c.httpClient, c.basePath(), defaultListQuery(params))
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	return organizations, nil
}

// Get implements netsim.OrganizationsClient.Get.
func (c *OrganizationsClient) Get(ctx context.Context, ref any) (*netsim.Organization, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, c.basePath()+id+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting organization: %w", err)
	}

	var organization netsim.Organization
	if err := json.Unmarshal(resp.Body, &organization); err != nil {
		return nil, fmt.Errorf("parsing organization response: %w", err)
	}

	return &organization, nil
}

// Create implements netsim.OrganizationsClient.Create.
func (c *OrganizationsClient) Create(ctx context.Context, request *netsim.OrganizationCreateRequest) (*netsim.Organization, error) {
	resp, err := c.httpClient.Post(ctx, c.basePath(), request)
	if err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	var organization netsim.Organization
	if err := json.Unmarshal(resp.Body, &organization); err != nil {
		return nil, fmt.Errorf("parsing organization response: %w", err)
	}

	return &organization, nil
}

// Update implements netsim.OrganizationsClient.Update.
func (c *OrganizationsClient) Update(ctx context.Context, ref any, fields map[string]any) (*netsim.Organization, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, c.basePath()+id+"/", fields)
	if err != nil {
		return nil, fmt.Errorf("updating organization: %w", err)
	}

	var organization netsim.Organization
	if err := json.Unmarshal(resp.Body, &organization); err != nil {
		return nil, fmt.Errorf("parsing organization response: %w", err)
	}

	return &organization, nil
}

// Delete implements netsim.OrganizationsClient.Delete.
func (c *OrganizationsClient) Delete(ctx context.Context, ref any) error {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, c.basePath()+id+"/")
	if err != nil {
		return fmt.Errorf("deleting organization: %w", err)
	}

	return nil
}
