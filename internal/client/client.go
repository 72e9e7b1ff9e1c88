// Package client implements the netsim.Client interface on top of the
// authenticated transport.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/netsim-io/netsim-client/internal/auth"
	"github.com/netsim-io/netsim-client/internal/constants"
	"github.com/netsim-io/netsim-client/internal/http"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// Client implements the netsim.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	version      string
	logger       netsim.Logger
	registry     *netsim.Registry

	identityMu sync.RWMutex
	identity   *netsim.Account

	// Resource clients
	simulations          netsim.SimulationsClient
	simulationNodes      netsim.SimulationNodesClient
	simulationInterfaces netsim.SimulationInterfacesClient
	topologies           netsim.TopologiesClient
	nodes                netsim.NodesClient
	interfaces           netsim.InterfacesClient
	images               netsim.ImagesClient
	services             netsim.ServicesClient
	workers              netsim.WorkersClient
	jobs                 netsim.JobsClient
	organizations        netsim.OrganizationsClient
	permissions          netsim.PermissionsClient
	sshKeys              netsim.SSHKeysClient
	login                netsim.LoginClient
}

// New creates a new platform API client. It validates the credential
// configuration, then authenticates against the API so a misconfigured or
// rejected credential surfaces here rather than on the first resource call.
func New(ctx context.Context, config *netsim.Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL := config.APIURL
	if baseURL == "" {
		baseURL = netsim.DefaultAPIURL
	}

	version := config.APIVersion
	if version == "" {
		version = netsim.DefaultAPIVersion
	}

	tokenManager := createTokenManager(config, baseURL, version)
	httpClient := http.NewClient(baseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      baseURL,
		version:      version,
		logger:       config.Logger,
		registry:     netsim.DefaultRegistry(),
	}

	client.initializeResourceClients()

	if _, err := tokenManager.GetToken(ctx); err != nil {
		return nil, err
	}

	// Identity is informational; not every token can read the account
	// endpoint, so a failure here does not fail construction.
	_ = client.FetchIdentity(ctx)

	return client, nil
}

// initializeResourceClients wires the per-resource clients to the transport.
func (c *Client) initializeResourceClients() {
	c.simulations = NewSimulationsClient(c.httpClient, c.version)
	c.simulationNodes = NewSimulationNodesClient(c.httpClient, c.version)
	c.simulationInterfaces = NewSimulationInterfacesClient(c.httpClient, c.version)
	c.topologies = NewTopologiesClient(c.httpClient, c.version)
	c.nodes = NewNodesClient(c.httpClient, c.version)
	c.interfaces = NewInterfacesClient(c.httpClient, c.version)
	c.images = NewImagesClient(c.httpClient, c.version)
	c.services = NewServicesClient(c.httpClient, c.version)
	c.workers = NewWorkersClient(c.httpClient, c.version)
	c.jobs = NewJobsClient(c.httpClient, c.version)
	c.organizations = NewOrganizationsClient(c.httpClient, c.version)
	c.permissions = NewPermissionsClient(c.httpClient, c.version)
	c.sshKeys = NewSSHKeysClient(c.httpClient, c.version)
	c.login = NewLoginClient(c.httpClient, c.version)
}

// createTokenManager creates the appropriate token manager for the single
// credential form carried by the config.
func createTokenManager(config *netsim.Config, baseURL, version string) auth.TokenManager {
	switch {
	case config.Username != "" && config.Password != "":
		loginURL := baseURL + "/" + version + "/" + constants.LoginPathSegment + "/"

		return auth.NewLoginTokenManager(loginURL, config.Username, config.Password, nil)
	case config.BearerToken != "":
		return auth.NewStaticTokenManager(config.BearerToken)
	default:
		return auth.NewStaticTokenManager(config.APIToken)
	}
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *netsim.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin <= 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax <= 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return httpOpts
}

// Simulations returns the simulations resource client.
func (c *Client) Simulations() netsim.SimulationsClient {
	return c.simulations
}

// SimulationNodes returns the simulation nodes resource client.
func (c *Client) SimulationNodes() netsim.SimulationNodesClient {
	return c.simulationNodes
}

// SimulationInterfaces returns the simulation interfaces resource client.
func (c *Client) SimulationInterfaces() netsim.SimulationInterfacesClient {
	return c.simulationInterfaces
}

// Topologies returns the topologies resource client.
func (c *Client) Topologies() netsim.TopologiesClient {
	return c.topologies
}

// Nodes returns the topology nodes resource client.
func (c *Client) Nodes() netsim.NodesClient {
	return c.nodes
}

// Interfaces returns the topology interfaces resource client.
func (c *Client) Interfaces() netsim.InterfacesClient {
	return c.interfaces
}

// Images returns the images resource client.
func (c *Client) Images() netsim.ImagesClient {
	return c.images
}

// Services returns the services resource client.
func (c *Client) Services() netsim.ServicesClient {
	return c.services
}

// Workers returns the workers resource client.
func (c *Client) Workers() netsim.WorkersClient {
	return c.workers
}

// Jobs returns the jobs resource client.
func (c *Client) Jobs() netsim.JobsClient {
	return c.jobs
}

// Organizations returns the organizations resource client.
func (c *Client) Organizations() netsim.OrganizationsClient {
	return c.organizations
}

// Permissions returns the permissions resource client.
func (c *Client) Permissions() netsim.PermissionsClient {
	return c.permissions
}

// SSHKeys returns the SSH keys resource client.
func (c *Client) SSHKeys() netsim.SSHKeysClient {
	return c.sshKeys
}

// Login returns the login identity client.
func (c *Client) Login() netsim.LoginClient {
	return c.login
}

// Records returns the generic record collection for a registered resource
// type.
func (c *Client) Records(resourceType string) (*netsim.Records, error) {
	schema, ok := c.registry.Lookup(resourceType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", netsim.ErrUnknownResourceType, resourceType)
	}

	return netsim.NewRecords(c.httpClient, c.registry, schema, c.version), nil
}

// Identity returns the cached account identity, or nil.
func (c *Client) Identity() *netsim.Account {
	c.identityMu.RLock()
	defer c.identityMu.RUnlock()

	return c.identity
}

// FetchIdentity fetches and caches the authenticated account identity.
func (c *Client) FetchIdentity(ctx context.Context) error {
	path := "/" + c.version + "/" + constants.AccountPathSegment + "/"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("fetching identity: %w", err)
	}

	var account netsim.Account
	if err := json.Unmarshal(resp.Body, &account); err != nil {
		return fmt.Errorf("parsing identity response: %w", err)
	}

	c.identityMu.Lock()
	c.identity = &account
	c.identityMu.Unlock()

	return nil
}

// warnDeprecated logs a deprecation warning for the old verb-based API.
func (c *Client) warnDeprecated(method, replacement string) {
	if c.logger == nil {
		return
	}

	c.logger.Warn("deprecated method called", map[string]interface{}{
		"method": method,
		"use":    replacement,
	})
}

// GetSimulations implements the deprecated verb-based API.
//
// Deprecated: Use Simulations().List instead.
func (c *Client) GetSimulations(ctx context.Context, params *netsim.QueryParams) ([]netsim.Simulation, error) {
	c.warnDeprecated("GetSimulations", "Simulations().List")

	return c.simulations.List(ctx, params)
}

// CreateSimulation implements the deprecated verb-based API.
//
// Deprecated: Use Simulations().Create instead.
func (c *Client) CreateSimulation(ctx context.Context, request *netsim.SimulationCreateRequest) (*netsim.Simulation, error) {
	c.warnDeprecated("CreateSimulation", "Simulations().Create")

	return c.simulations.Create(ctx, request)
}

// GetTopologies implements the deprecated verb-based API.
//
// Deprecated: Use Topologies().List instead.
func (c *Client) GetTopologies(ctx context.Context, params *netsim.QueryParams) ([]netsim.Topology, error) {
	c.warnDeprecated("GetTopologies", "Topologies().List")

	return c.topologies.List(ctx, params)
}

// GetNodes implements the deprecated verb-based API.
//
// Deprecated: Use Nodes().List instead.
func (c *Client) GetNodes(ctx context.Context, params *netsim.QueryParams) ([]netsim.Node, error) {
	c.warnDeprecated("GetNodes", "Nodes().List")

	return c.nodes.List(ctx, params)
}

// GetWorkers implements the deprecated verb-based API.
//
// Deprecated: Use Workers().List instead.
func (c *Client) GetWorkers(ctx context.Context, params *netsim.QueryParams) ([]netsim.Worker, error) {
	c.warnDeprecated("GetWorkers", "Workers().List")

	return c.workers.List(ctx, params)
}

// UpdateWorker implements the deprecated verb-based API.
//
// Deprecated: Use Workers().Update instead.
func (c *Client) UpdateWorker(ctx context.Context, ref any, fields map[string]any) (*netsim.Worker, error) {
	c.warnDeprecated("UpdateWorker", "Workers().Update")

	return c.workers.Update(ctx, ref, fields)
}
