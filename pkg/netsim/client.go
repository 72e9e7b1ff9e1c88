package netsim

import (
	"context"
	"time"
)

// DefaultAPIURL is the production API endpoint.
const DefaultAPIURL = "https://console.netsim.io/api"

// DefaultAPIVersion is the API version used when Config.APIVersion is empty.
const DefaultAPIVersion = "v1"

// TopologyClients provides access to topology-scoped resource clients.
type TopologyClients interface {
	Topologies() TopologiesClient
	Nodes() NodesClient
	Interfaces() InterfacesClient
	Images() ImagesClient
}

// SimulationClients provides access to simulation-scoped resource clients.
type SimulationClients interface {
	Simulations() SimulationsClient
	SimulationNodes() SimulationNodesClient
	SimulationInterfaces() SimulationInterfacesClient
	Services() ServicesClient
}

// PlatformClients provides access to platform and account resource clients.
type PlatformClients interface {
	Workers() WorkersClient
	Jobs() JobsClient
	Organizations() OrganizationsClient
	Permissions() PermissionsClient
	SSHKeys() SSHKeysClient
	Login() LoginClient
}

// Client is the top-level interface for talking to the simulation platform.
type Client interface {
	TopologyClients
	SimulationClients
	PlatformClients

	// Records returns the generic record collection for a resource type
	// registered in the default schema registry, e.g. "simulations".
	Records(resourceType string) (*Records, error)

	// Identity returns the account identity cached at authorization time,
	// or nil if it has not been fetched.
	Identity() *Account

	// FetchIdentity fetches and caches the authenticated account identity.
	FetchIdentity(ctx context.Context) error

	// Deprecated aliases retained for callers of the old verb-based API.
	// Each delegates to the corresponding resource client and logs a
	// deprecation warning.

	// Deprecated: Use Simulations().List instead.
	GetSimulations(ctx context.Context, params *QueryParams) ([]Simulation, error)
	// Deprecated: Use Simulations().Create instead.
	CreateSimulation(ctx context.Context, request *SimulationCreateRequest) (*Simulation, error)
	// Deprecated: Use Topologies().List instead.
	GetTopologies(ctx context.Context, params *QueryParams) ([]Topology, error)
	// Deprecated: Use Nodes().List instead.
	GetNodes(ctx context.Context, params *QueryParams) ([]Node, error)
	// Deprecated: Use Workers().List instead.
	GetWorkers(ctx context.Context, params *QueryParams) ([]Worker, error)
	// Deprecated: Use Workers().Update instead.
	UpdateWorker(ctx context.Context, ref any, fields map[string]any) (*Worker, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a netsim.Client.
//
// # Credentials
//
// Exactly one credential form must be provided:
//  1. Username/Password: exchanged for a bearer token against the login
//     endpoint during construction.
//  2. BearerToken: a token obtained out of band, used directly. It cannot be
//     refreshed; a 401 surfaces as an AuthorizationError.
//  3. APIToken: a long-lived service token, presented as a bearer token. Like
//     BearerToken it cannot be refreshed.
//
// Zero or more than one form is a configuration error reported before any
// network call.
//
// # Timeouts and retries
//
// Every call is bounded by HTTPTimeout (a sensible default applies when
// zero) and surfaces a ConnectionError on expiry. The client performs no
// retries beyond the single re-authentication-and-replay on a 401; RetryMax
// and friends exist for callers who explicitly want transport-level retries
// on 5xx responses and are zero by default.
type Config struct {
	// APIURL: base URL of the platform API, e.g. "https://console.netsim.io/api".
	// netsimclient.New normalizes this value by adding "https://" when no
	// scheme is present and an "/api" suffix when missing.
	APIURL string
	// APIVersion: API version segment used in resource paths ("v1" default).
	APIVersion string

	// Username: account username, used with Password.
	Username string
	// Password: account password, used with Username.
	Password string
	// BearerToken: pre-issued bearer token used directly.
	BearerToken string
	// APIToken: long-lived API token presented as a bearer token.
	APIToken string

	// HTTPTimeout: bound on every request. Defaults to the package default
	// when zero.
	HTTPTimeout time.Duration
	// RetryMax: optional transport-level retries for 5xx responses. Zero
	// disables retries entirely.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided. Credential material is redacted before logging.
	Debug bool
	// Logger: optional structured logger owned by the client.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}

// Validate checks that the configuration carries exactly one credential form.
// It never touches the network.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	if c.Username != "" || c.Password != "" {
		if c.Username == "" || c.Password == "" {
			return ErrPasswordRequired
		}
	}

	forms := 0
	if c.Username != "" && c.Password != "" {
		forms++
	}

	if c.BearerToken != "" {
		forms++
	}

	if c.APIToken != "" {
		forms++
	}

	switch {
	case forms == 0:
		return ErrNoCredentials
	case forms > 1:
		return ErrConflictingCredentials
	}

	return nil
}
