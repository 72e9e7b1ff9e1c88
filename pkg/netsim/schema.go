package netsim

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Schema describes one remote resource type: the path segment its collection
// lives under and which of its fields are relationship references to other
// resource types. The enumeration of concrete endpoints is configuration
// data, not code; adding a resource type means adding a Schema.
type Schema struct {
	// Type is the canonical resource type name, e.g. "simulations".
	Type string
	// Path is the URL path segment for the collection, e.g. "simulations".
	Path string
	// Relationships maps field names to the resource type their value
	// references, e.g. {"topology": "topologies"}.
	Relationships map[string]string
}

// Registry holds the set of known resource schemas and answers whether a URL
// points at a registered resource instance.
type Registry struct {
	schemas map[string]*Schema
}

// NewRegistry creates a registry from the given schemas.
func NewRegistry(schemas ...*Schema) *Registry {
	registry := &Registry{schemas: make(map[string]*Schema, len(schemas))}
	for _, schema := range schemas {
		registry.schemas[schema.Type] = schema
	}

	return registry
}

// Lookup returns the schema for a resource type.
func (r *Registry) Lookup(resourceType string) (*Schema, bool) {
	schema, ok := r.schemas[resourceType]

	return schema, ok
}

// Types returns the registered resource type names.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		types = append(types, name)
	}

	return types
}

// MatchURL reports whether raw is the canonical URL of a registered resource
// instance, returning the resource type and id when it is. A canonical URL
// has the shape {base}/{version}/{resource}/{id}/ with a UUID id.
func (r *Registry) MatchURL(raw string) (resourceType, id string, ok bool) {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "", "", false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", "", false
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i := 0; i < len(segments)-1; i++ {
		schema := r.schemaForPath(segments[i])
		if schema == nil {
			continue
		}

		candidate := segments[i+1]
		if _, err := uuid.Parse(candidate); err != nil {
			continue
		}

		return schema.Type, candidate, true
	}

	return "", "", false
}

func (r *Registry) schemaForPath(segment string) *Schema {
	for _, schema := range r.schemas {
		if schema.Path == segment {
			return schema
		}
	}

	return nil
}

// DefaultRegistry returns the registry of resource types exposed by the
// platform API.
func DefaultRegistry() *Registry {
	return NewRegistry(
		&Schema{
			Type: "simulations",
			Path: "simulations",
			Relationships: map[string]string{
				"topology":         "topologies",
				"organization":     "organizations",
				"preferred_worker": "workers",
			},
		},
		&Schema{
			Type: "simulation-nodes",
			Path: "simulation-nodes",
			Relationships: map[string]string{
				"simulation": "simulations",
				"node":       "nodes",
				"worker":     "workers",
				"interfaces": "simulation-interfaces",
			},
		},
		&Schema{
			Type: "simulation-interfaces",
			Path: "simulation-interfaces",
			Relationships: map[string]string{
				"node":     "simulation-nodes",
				"original": "interfaces",
				"services": "services",
			},
		},
		&Schema{
			Type: "topologies",
			Path: "topologies",
			Relationships: map[string]string{
				"organization": "organizations",
			},
		},
		&Schema{
			Type: "nodes",
			Path: "nodes",
			Relationships: map[string]string{
				"topology":   "topologies",
				"os":         "images",
				"interfaces": "interfaces",
			},
		},
		&Schema{
			Type: "interfaces",
			Path: "interfaces",
			Relationships: map[string]string{
				"node": "nodes",
			},
		},
		&Schema{
			Type: "images",
			Path: "images",
			Relationships: map[string]string{
				"organization": "organizations",
			},
		},
		&Schema{
			Type: "services",
			Path: "services",
			Relationships: map[string]string{
				"simulation": "simulations",
				"interface":  "simulation-interfaces",
			},
		},
		&Schema{
			Type: "workers",
			Path: "workers",
		},
		&Schema{
			Type: "jobs",
			Path: "jobs",
			Relationships: map[string]string{
				"worker": "workers",
			},
		},
		&Schema{
			Type: "organizations",
			Path: "organizations",
		},
		&Schema{
			Type: "permissions",
			Path: "permissions",
			Relationships: map[string]string{
				"simulation": "simulations",
				"topology":   "topologies",
			},
		},
		&Schema{
			Type: "ssh-keys",
			Path: "ssh-keys",
		},
	)
}
