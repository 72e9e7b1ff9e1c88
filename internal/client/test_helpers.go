package client

import (
	internalhttp "github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// NewTestClient creates a client wired to a test server without
// authentication.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		version:    netsim.DefaultAPIVersion,
		registry:   netsim.DefaultRegistry(),
	}

	client.initializeResourceClients()

	return client
}

// NewTestClientWithLogger is NewTestClient with a logger attached.
func NewTestClientWithLogger(baseURL string, logger netsim.Logger) *Client {
	client := NewTestClient(baseURL)
	client.logger = logger

	return client
}
