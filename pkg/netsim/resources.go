package netsim

import (
	"context"
	"time"
)

// Simulation represents a running or stored copy of a topology.
type Simulation struct {
	Resource

	Title           string     `json:"title"                      yaml:"title"`
	State           string     `json:"state"                      yaml:"state"`
	Sleep           bool       `json:"sleep"                      yaml:"sleep"`
	Owner           string     `json:"owner,omitempty"            yaml:"owner,omitempty"`
	Expires         bool       `json:"expires"                    yaml:"expires"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"       yaml:"expires_at,omitempty"`
	Documentation   string     `json:"documentation,omitempty"    yaml:"documentation,omitempty"`
	Topology        string     `json:"topology,omitempty"         yaml:"topology,omitempty"`
	Organization    string     `json:"organization,omitempty"     yaml:"organization,omitempty"`
	PreferredWorker string     `json:"preferred_worker,omitempty" yaml:"preferred_worker,omitempty"`
}

// Simulation states reported by the platform.
const (
	SimulationStateNew     = "NEW"
	SimulationStateLoaded  = "LOADED"
	SimulationStateLoading = "LOADING"
	SimulationStateStored  = "STORED"
	SimulationStateStoring = "STORING"
)

// SimulationCreateRequest is the payload for creating a simulation.
type SimulationCreateRequest struct {
	Topology        string     `json:"topology"`
	Title           string     `json:"title,omitempty"`
	Documentation   string     `json:"documentation,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	Organization    string     `json:"organization,omitempty"`
	PreferredWorker string     `json:"preferred_worker,omitempty"`
}

// SimulationsClient provides simulation management operations.
type SimulationsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Simulation, error)
	Get(ctx context.Context, ref any) (*Simulation, error)
	Create(ctx context.Context, request *SimulationCreateRequest) (*Simulation, error)
	Update(ctx context.Context, ref any, fields map[string]any) (*Simulation, error)
	Delete(ctx context.Context, ref any) error

	// Control posts a control action (e.g. "load", "store", "destroy") with
	// optional extra payload fields.
	Control(ctx context.Context, ref any, action string, options map[string]any) (map[string]any, error)
	// Start loads the simulation onto a worker.
	Start(ctx context.Context, ref any) error
	// Stop stores the simulation and releases its worker resources.
	Stop(ctx context.Context, ref any) error
	// Duplicate clones the simulation and returns the copy.
	Duplicate(ctx context.Context, ref any, fields map[string]any) (*Simulation, error)
}

// SimulationNode represents one node inside a simulation.
type SimulationNode struct {
	Resource

	Name        string   `json:"name"                   yaml:"name"`
	State       string   `json:"state"                  yaml:"state"`
	Console     int      `json:"console,omitempty"      yaml:"console,omitempty"`
	Simulation  string   `json:"simulation,omitempty"   yaml:"simulation,omitempty"`
	Node        string   `json:"node,omitempty"         yaml:"node,omitempty"`
	Worker      string   `json:"worker,omitempty"       yaml:"worker,omitempty"`
	Interfaces  []string `json:"interfaces,omitempty"   yaml:"interfaces,omitempty"`
	InstrErrors []string `json:"instr_errors,omitempty" yaml:"instr_errors,omitempty"`
}

// SimulationNodesClient provides simulation node operations.
type SimulationNodesClient interface {
	List(ctx context.Context, params *QueryParams) ([]SimulationNode, error)
	Get(ctx context.Context, ref any) (*SimulationNode, error)
	Update(ctx context.Context, ref any, fields map[string]any) (*SimulationNode, error)

	// Control posts an instruction such as "reset" or "rebuild" to the node.
	Control(ctx context.Context, ref any, action string, options map[string]any) (map[string]any, error)
}

// SimulationInterface represents a node interface inside a simulation.
type SimulationInterface struct {
	Resource

	Name       string   `json:"name"                 yaml:"name"`
	LinkUp     bool     `json:"link_up"              yaml:"link_up"`
	Node       string   `json:"node,omitempty"       yaml:"node,omitempty"`
	Original   string   `json:"original,omitempty"   yaml:"original,omitempty"`
	Services   []string `json:"services,omitempty"   yaml:"services,omitempty"`
	MACAddress string   `json:"mac_address,omitempty" yaml:"mac_address,omitempty"`
}

// SimulationInterfacesClient provides read access to simulation interfaces.
type SimulationInterfacesClient interface {
	List(ctx context.Context, params *QueryParams) ([]SimulationInterface, error)
	Get(ctx context.Context, ref any) (*SimulationInterface, error)
}

// Topology represents a network blueprint from which simulations are created.
type Topology struct {
	Resource

	Name          string `json:"name"                    yaml:"name"`
	Documentation string `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Organization  string `json:"organization,omitempty"  yaml:"organization,omitempty"`
	DiagramURL    string `json:"diagram_url,omitempty"   yaml:"diagram_url,omitempty"`
}

// TopologyCreateRequest is the payload for creating a topology.
type TopologyCreateRequest struct {
	Name          string                 `json:"name"`
	Documentation string                 `json:"documentation,omitempty"`
	Organization  string                 `json:"organization,omitempty"`
	Nodes         []TopologyNodeManifest `json:"nodes,omitempty"`
	Links         [][]string             `json:"links,omitempty"`
}

// TopologyManifest is the YAML document accepted by
// TopologiesClient.CreateFromFile.
type TopologyManifest struct {
	Name          string                 `json:"name"                    yaml:"name"`
	Documentation string                 `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Organization  string                 `json:"organization,omitempty"  yaml:"organization,omitempty"`
	Nodes         []TopologyNodeManifest `json:"nodes,omitempty"         yaml:"nodes,omitempty"`
	Links         [][]string             `json:"links,omitempty"         yaml:"links,omitempty"`
}

// TopologyNodeManifest describes one node in a topology manifest.
type TopologyNodeManifest struct {
	Name       string   `json:"name"                 yaml:"name"`
	OS         string   `json:"os,omitempty"         yaml:"os,omitempty"`
	Memory     int      `json:"memory,omitempty"     yaml:"memory,omitempty"`
	Storage    int      `json:"storage,omitempty"    yaml:"storage,omitempty"`
	CPU        int      `json:"cpu,omitempty"        yaml:"cpu,omitempty"`
	Interfaces []string `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
}

// TopologiesClient provides topology management operations.
type TopologiesClient interface {
	List(ctx context.Context, params *QueryParams) ([]Topology, error)
	Get(ctx context.Context, ref any) (*Topology, error)
	Create(ctx context.Context, request *TopologyCreateRequest) (*Topology, error)
	Update(ctx context.Context, ref any, fields map[string]any) (*Topology, error)
	Delete(ctx context.Context, ref any) error

	// CreateFromManifest parses a YAML topology manifest and creates the
	// topology it describes.
	CreateFromManifest(ctx context.Context, manifest []byte) (*Topology, error)
	// CreateFromFile reads a YAML topology manifest from disk and creates
	// the topology it describes.
	CreateFromFile(ctx context.Context, path string) (*Topology, error)
}

// Node represents a device definition inside a topology.
type Node struct {
	Resource

	Name       string   `json:"name"                 yaml:"name"`
	OS         string   `json:"os,omitempty"         yaml:"os,omitempty"`
	Memory     int      `json:"memory,omitempty"     yaml:"memory,omitempty"`
	Storage    int      `json:"storage,omitempty"    yaml:"storage,omitempty"`
	CPU        int      `json:"cpu,omitempty"        yaml:"cpu,omitempty"`
	Topology   string   `json:"topology,omitempty"   yaml:"topology,omitempty"`
	Interfaces []string `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
}

// NodesClient provides read access to topology nodes.
type NodesClient interface {
	List(ctx context.Context, params *QueryParams) ([]Node, error)
	Get(ctx context.Context, ref any) (*Node, error)
}

// Interface represents a device interface inside a topology.
type Interface struct {
	Resource

	Name       string `json:"name"                  yaml:"name"`
	Node       string `json:"node,omitempty"        yaml:"node,omitempty"`
	MACAddress string `json:"mac_address,omitempty" yaml:"mac_address,omitempty"`
}

// InterfacesClient provides read access to topology interfaces.
type InterfacesClient interface {
	List(ctx context.Context, params *QueryParams) ([]Interface, error)
	Get(ctx context.Context, ref any) (*Interface, error)
}

// Image represents a bootable OS image available to nodes.
type Image struct {
	Resource

	Name         string `json:"name"                   yaml:"name"`
	Version      string `json:"version,omitempty"      yaml:"version,omitempty"`
	Default      bool   `json:"default"                yaml:"default"`
	Published    bool   `json:"published"              yaml:"published"`
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
}

// ImageCreateRequest is the payload for registering an image.
type ImageCreateRequest struct {
	Name         string `json:"name"`
	Version      string `json:"version,omitempty"`
	Organization string `json:"organization,omitempty"`
}

// ImagesClient provides image management operations.
type ImagesClient interface {
	List(ctx context.Context, params *QueryParams) ([]Image, error)
	Get(ctx context.Context, ref any) (*Image, error)
	Create(ctx context.Context, request *ImageCreateRequest) (*Image, error)
	Update(ctx context.Context, ref any, fields map[string]any) (*Image, error)
	Delete(ctx context.Context, ref any) error
}

// Service represents an exposed endpoint into a running simulation, such as
// SSH to a node's management interface.
type Service struct {
	Resource

	Name       string `json:"name"                 yaml:"name"`
	Simulation string `json:"simulation,omitempty" yaml:"simulation,omitempty"`
	Interface  string `json:"interface,omitempty"  yaml:"interface,omitempty"`
	DestPort   int    `json:"dest_port,omitempty"  yaml:"dest_port,omitempty"`
	SrcPort    int    `json:"src_port,omitempty"   yaml:"src_port,omitempty"`
	Host       string `json:"host,omitempty"       yaml:"host,omitempty"`
}

// ServiceCreateRequest is the payload for exposing a service.
type ServiceCreateRequest struct {
	Name       string `json:"name"`
	Simulation string `json:"simulation"`
	Interface  string `json:"interface"`
	DestPort   int    `json:"dest_port"`
}

// ServicesClient provides service management operations.
type ServicesClient interface {
	List(ctx context.Context, params *QueryParams) ([]Service, error)
	Get(ctx context.Context, ref any) (*Service, error)
	Create(ctx context.Context, request *ServiceCreateRequest) (*Service, error)
	Delete(ctx context.Context, ref any) error
}

// Worker represents a compute host that runs simulations.
type Worker struct {
	Resource

	FQDN      string `json:"fqdn"                 yaml:"fqdn"`
	CPU       int    `json:"cpu,omitempty"        yaml:"cpu,omitempty"`
	Memory    int    `json:"memory,omitempty"     yaml:"memory,omitempty"`
	Storage   int    `json:"storage,omitempty"    yaml:"storage,omitempty"`
	IPAddress string `json:"ip_address,omitempty" yaml:"ip_address,omitempty"`
	PortRange string `json:"port_range,omitempty" yaml:"port_range,omitempty"`
	Region    string `json:"region,omitempty"     yaml:"region,omitempty"`
	Available bool   `json:"available"            yaml:"available"`
}

// WorkersClient provides worker fleet operations.
type WorkersClient interface {
	List(ctx context.Context, params *QueryParams) ([]Worker, error)
	Get(ctx context.Context, ref any) (*Worker, error)
	Update(ctx context.Context, ref any, fields map[string]any) (*Worker, error)

	// SetAvailable marks the worker as accepting (or not accepting) new
	// simulations.
	SetAvailable(ctx context.Context, ref any, available bool) (*Worker, error)
}

// Job represents a unit of asynchronous work assigned to a worker.
type Job struct {
	Resource

	Category string         `json:"category"         yaml:"category"`
	State    string         `json:"state"            yaml:"state"`
	Worker   string         `json:"worker,omitempty" yaml:"worker,omitempty"`
	Data     map[string]any `json:"data,omitempty"   yaml:"data,omitempty"`
}

// JobsClient provides job queue operations.
type JobsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Job, error)
	Get(ctx context.Context, ref any) (*Job, error)
	Update(ctx context.Context, ref any, fields map[string]any) (*Job, error)
}

// Organization represents a tenant that owns topologies and simulations.
type Organization struct {
	Resource

	Name        string `json:"name"                   yaml:"name"`
	MemberCount int    `json:"member_count,omitempty" yaml:"member_count,omitempty"`
}

// OrganizationCreateRequest is the payload for creating an organization.
type OrganizationCreateRequest struct {
	Name    string   `json:"name"`
	Members []string `json:"members,omitempty"`
}

// OrganizationsClient provides organization management operations.
type OrganizationsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Organization, error)
	Get(ctx context.Context, ref any) (*Organization, error)
	Create(ctx context.Context, request *OrganizationCreateRequest) (*Organization, error)
	Update(ctx context.Context, ref any, fields map[string]any) (*Organization, error)
	Delete(ctx context.Context, ref any) error
}

// Permission grants an account access to a simulation or topology.
type Permission struct {
	Resource

	Email      string `json:"email"                yaml:"email"`
	Simulation string `json:"simulation,omitempty" yaml:"simulation,omitempty"`
	Topology   string `json:"topology,omitempty"   yaml:"topology,omitempty"`
	WriteOK    bool   `json:"write_ok"             yaml:"write_ok"`
}

// PermissionCreateRequest is the payload for granting a permission.
type PermissionCreateRequest struct {
	Email      string `json:"email"`
	Simulation string `json:"simulation,omitempty"`
	Topology   string `json:"topology,omitempty"`
	WriteOK    bool   `json:"write_ok,omitempty"`
}

// PermissionsClient provides permission management operations.
type PermissionsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Permission, error)
	Create(ctx context.Context, request *PermissionCreateRequest) (*Permission, error)
	Delete(ctx context.Context, ref any) error
}

// SSHKey represents a public key registered for console access.
type SSHKey struct {
	Resource

	Name      string `json:"name"       yaml:"name"`
	PublicKey string `json:"public_key" yaml:"public_key"`
}

// SSHKeysClient provides SSH key management operations.
type SSHKeysClient interface {
	List(ctx context.Context, params *QueryParams) ([]SSHKey, error)
	Create(ctx context.Context, name, publicKey string) (*SSHKey, error)
	Delete(ctx context.Context, ref any) error
}

// Account represents the identity of the authenticated caller.
type Account struct {
	Resource

	Username string `json:"username" yaml:"username"`
}

// LoginClient exposes the login identity endpoint.
type LoginClient interface {
	// Get returns the account identity associated with the current token.
	Get(ctx context.Context) (*Account, error)
}
