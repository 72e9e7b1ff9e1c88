package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// SSHKeysClient implements netsim.SSHKeysClient.
type SSHKeysClient struct {
	httpClient *http.Client
	version    string
}

// NewSSHKeysClient creates a new SSH keys client.
func NewSSHKeysClient(httpClient *http.Client, version string) *SSHKeysClient {
	return &SSHKeysClient{
		httpClient: httpClient,
		version:    version,
	}
}

func (c *SSHKeysClient) basePath() string {
	return "/" + c.version + "/ssh-keys/"
}

// List implements netsim.SSHKeysClient.List.
func (c *SSHKeysClient) List(ctx context.Context, params *netsim.QueryParams) ([]netsim.SSHKey, error) {
	keys, err := netsim.FollowPages[netsim.SSHKey](ctx, c.httpClient, c.basePath(), defaultListQuery(params))
	if err != nil {
		return nil, fmt.Errorf("listing ssh keys: %w", err)
	}

	return keys, nil
}

// Create implements netsim.SSHKeysClient.Create.
func (c *SSHKeysClient) Create(ctx context.Context, name, publicKey string) (*netsim.SSHKey, error) {
	resp, err := c.httpClient.Post(ctx, c.basePath(), map[string]string{
		"name":       name,
		"public_key": publicKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating ssh key: %w", err)
	}

	var key netsim.SSHKey
	if err := json.Unmarshal(resp.Body, &key); err != nil {
		return nil, fmt.Errorf("parsing ssh key response: %w", err)
	}

	return &key, nil
}

// Delete implements netsim.SSHKeysClient.Delete.
func (c *SSHKeysClient) Delete(ctx context.Context, ref any) error {
	id, err := netsim.ResolveID(ref)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, c.basePath()+id+"/")
	if err != nil {
		return fmt.Errorf("deleting ssh key: %w", err)
	}

	return nil
}
