package netsim

// Resource represents the base structure for all platform API resources.
// Every resource carries an opaque identifier and a canonical reference URL
// following the {base_url}/{api_version}/{resource}/{id}/ convention.
type Resource struct {
	ID  string `json:"id"            yaml:"id"`
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Identifier returns the resource id. It allows any typed resource value to
// be passed where an id-or-instance argument is accepted.
func (r Resource) Identifier() string {
	return r.ID
}

// Identified is satisfied by values that know their canonical id: typed
// resources (via the embedded Resource) and generic Records.
type Identified interface {
	Identifier() string
}

// ListResponse represents a paginated list response. List endpoints may also
// return a bare JSON array; pagination helpers accept both shapes.
type ListResponse[T any] struct {
	Count    int     `json:"count"    yaml:"count"`
	Next     *string `json:"next"     yaml:"next"`
	Previous *string `json:"previous" yaml:"previous"`
	Results  []T     `json:"results"  yaml:"results"`
}
