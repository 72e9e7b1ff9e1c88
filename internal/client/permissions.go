package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// PermissionsClient implements netsim.PermissionsClient.
type PermissionsClient struct {
	httpClient *http.Client
	version    string
}

// NewPermissionsClient creates a new permissions client.
func NewPermissionsClient(httpClient *http.Client, version string) *PermissionsClient {
	return &PermissionsClient{
		httpClient: httpClient,
		version:    version,
	}
}

func (c *PermissionsClient) basePath() string {
	return "/" + c.version + "/permissions/"
}

// List implements netsim.PermissionsClient.List.
func (c *PermissionsClient) List(ctx context.Context, params *netsim.QueryParams) ([]netsim.Permission, error) {
	permissions, err := netsim.FollowPages[netsim.Permission](ctx, c.httpClient, c.basePath(), defaultListQuery(params))
	if err != nil {
		return nil, fmt.Errorf("listing permissions: %w", err)
	}

	return permissions, nil
}

// Create implements netsim.PermissionsClient.Create.
func (c *PermissionsClient) Create(ctx context.Context, request *netsim.PermissionCreateRequest) (*netsim.Permission, error) {
	resp, err := c.httpClient.Post(ctx, c.basePath(), request)
	if err != nil {
		return nil, fmt.Errorf("creating permission: %w", err)
	}

	var permission netsim.Permission
	if err := json.Unmarshal(resp.Body, &permission); err != nil {
		return nil, fmt.Errorf("parsing permission response: %w", err)
	}

	return &permission, nil
}

// Delete implements netsim.PermissionsClient.Delete.
func (c *PermissionsClient) Delete(ctx context.Context, ref any) error {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, c.basePath()+id+"/")
	if err != nil {
		return fmt.Errorf("deleting permission: %w", err)
	}

	return nil
}
