package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// ImagesClient implements netsim.ImagesClient.
type ImagesClient struct {
	httpClient *http.Client
	version    string
}

// NewImagesClient creates a new images client.
func NewImagesClient(httpClient *http.Client, version string) *ImagesClient {
	return &ImagesClient{
		httpClient: httpClient,
		version:    version,
	}
}

func (c *ImagesClient) basePath() string {
	return "/" + c.version + "/images/"
}

// List implements netsim.ImagesClient.List.
func (c *ImagesClient) List(ctx context.Context, params *netsim.QueryParams) ([]netsim.Image, error) {
	images, err := netsim.FollowPages[netsim.Image](ctx, c.httpClient, c.basePath(), defaultListQuery(params))
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}

	return images, nil
}

// Get implements netsim.ImagesClient.Get.
func (c *ImagesClient) Get(ctx context.Context, ref any) (*netsim.Image, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, c.basePath()+id+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting image: %w", err)
	}

	var image netsim.Image
	if err := json.Unmarshal(resp.Body, &image); err != nil {
		return nil, fmt.Errorf("parsing image response: %w", err)
	}

	return &image, nil
}

// Create implements netsim.ImagesClient.Create.
func (c *ImagesClient) Create(ctx context.Context, request *netsim.ImageCreateRequest) (*netsim.Image, error) {
	resp, err := c.httpClient.Post(ctx, c.basePath(), request)
	if err != nil {
		return nil, fmt.Errorf("creating image: %w", err)
	}

	var image netsim.Image
	if err := json.Unmarshal(resp.Body, &image); err != nil {
		return nil, fmt.Errorf("parsing image response: %w", err)
	}

	return &image, nil
}

// Update implements netsim.ImagesClient.Update.
func (c *ImagesClient) Update(ctx context.Context, ref any, fields map[string]any) (*netsim.Image, error) {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, c.basePath()+id+"/", fields)
	if err != nil {
		return nil, fmt.Errorf("updating image: %w", err)
	}

	var image netsim.Image
	if err := json.Unmarshal(resp.Body, &image); err != nil {
		return nil, fmt.Errorf("parsing image response: %w", err)
	}

	return &image, nil
}

// Delete implements netsim.ImagesClient.Delete.
func (c *ImagesClient) Delete(ctx context.Context, ref any) error {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, c.basePath()+id+"/")
	if err != nil {
		return fmt.Errorf("deleting image: %w", err)
	}

	return nil
}
