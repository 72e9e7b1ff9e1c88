// Package netsimclient provides the main entry point for creating simulation
// platform API clients.
package netsimclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/netsim-io/netsim-client/internal/client"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// New creates a new platform API client from the given configuration.
//
// The configuration is validated before any network call: exactly one
// credential form must be present. The API URL is normalized so callers can
// pass a bare console hostname.
func New(ctx context.Context, config *netsim.Config) (netsim.Client, error) {
	if config == nil {
		return nil, netsim.ErrConfigRequired
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if config.APIURL != "" {
		config.APIURL = normalizeAPIURL(config.APIURL)
	}

	cli, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// normalizeAPIURL turns a console hostname into a full API base URL. A missing
// scheme defaults to https and a missing "/api" suffix is appended.
func normalizeAPIURL(raw string) string {
	apiURL := strings.TrimSuffix(raw, "/")

	if !strings.HasPrefix(apiURL, "http://") && !strings.HasPrefix(apiURL, "https://") {
		apiURL = "https://" + apiURL
	}

	if !strings.HasSuffix(apiURL, "/api") {
		apiURL += "/api"
	}

	return apiURL
}

// NewWithPassword creates a new client using username/password authentication.
func NewWithPassword(ctx context.Context, apiURL, username, password string) (netsim.Client, error) {
	return New(ctx, &netsim.Config{
		APIURL:   apiURL,
		Username: username,
		Password: password,
	})
}

// NewWithToken creates a new client with a pre-issued bearer token.
func NewWithToken(ctx context.Context, apiURL, token string) (netsim.Client, error) {
	return New(ctx, &netsim.Config{
		APIURL:      apiURL,
		BearerToken: token,
	})
}

// NewWithAPIToken creates a new client with a long-lived API token.
func NewWithAPIToken(ctx context.Context, apiURL, token string) (netsim.Client, error) {
	return New(ctx, &netsim.Config{
		APIURL:   apiURL,
		APIToken: token,
	})
}
