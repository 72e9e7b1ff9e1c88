package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/netsim-io/netsim-client/internal/constants"
	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// LoginClient implements netsim.LoginClient.
type LoginClient struct {
	httpClient *http.Client
	version    string
}

// NewLoginClient creates a new login identity client.
func NewLoginClient(httpClient *http.Client, version string) *LoginClient {
	return &LoginClient{
		httpClient: httpClient,
		version:    version,
	}
}

// Get implements netsim.LoginClient.Get.
func (c *LoginClient) Get(ctx context.Context) (*netsim.Account, error) {
	path := "/" + c.version + "/" + constants.AccountPathSegment + "/"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	var account netsim.Account
	if err := json.Unmarshal(resp.Body, &account); err != nil {
		return nil, fmt.Errorf("parsing account response: %w", err)
	}

	return &account, nil
}
