package netsim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Requester issues raw API requests on behalf of records and collections. It
// is implemented by the client's transport. Paths starting with "http" are
// treated as absolute URLs.
type Requester interface {
	Request(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error)
}

// Record is the generic representation of one remote resource instance: a
// bag of fields, a canonical reference URL, and the rules for propagating
// local mutations to the API.
//
// A Record's cached fields and the remote state may diverge until Refresh or
// one of the record's own mutating calls is issued; the record never polls.
// Records are not safe for concurrent use without external locking.
type Record struct {
	api      Requester
	registry *Registry
	schema   *Schema
	version  string
	fields   map[string]any
	related  map[string]any
}

// NewRecord wraps one JSON object as a Record. The field bag is copied.
func NewRecord(api Requester, registry *Registry, schema *Schema, version string, fields map[string]any) *Record {
	bag := make(map[string]any, len(fields))
	for key, value := range fields {
		bag[key] = value
	}

	return &Record{
		api:      api,
		registry: registry,
		schema:   schema,
		version:  version,
		fields:   bag,
		related:  make(map[string]any),
	}
}

// Type returns the record's resource type, e.g. "simulations".
func (r *Record) Type() string {
	return r.schema.Type
}

// ID returns the record's identifier, or "" when not persisted.
func (r *Record) ID() string {
	if id, ok := r.fields["id"].(string); ok {
		return id
	}

	return ""
}

// Identifier implements Identified.
func (r *Record) Identifier() string {
	return r.ID()
}

// CanonicalURL returns the record's canonical reference URL, or "".
func (r *Record) CanonicalURL() string {
	if rawURL, ok := r.fields["url"].(string); ok {
		return rawURL
	}

	return ""
}

// SameResource reports whether two records refer to the same logical remote
// resource, regardless of field-bag staleness.
func (r *Record) SameResource(other *Record) bool {
	if other == nil {
		return false
	}

	return r.CanonicalURL() != "" && r.CanonicalURL() == other.CanonicalURL()
}

// Get returns a field value from the local bag. It never touches the
// network; use Related for relationship fields.
func (r *Record) Get(field string) (any, bool) {
	value, ok := r.fields[field]

	return value, ok
}

// Fields returns a copy of the local field bag.
func (r *Record) Fields() map[string]any {
	bag := make(map[string]any, len(r.fields))
	for key, value := range r.fields {
		bag[key] = value
	}

	return bag
}

// Set assigns one field. On a persisted record it issues a PATCH containing
// only that field and commits the server's response into the local bag; a
// failed PATCH leaves the bag untouched. On an unpersisted record the
// mutation is purely local.
func (r *Record) Set(ctx context.Context, field string, value any) error {
	path := r.detailPath()
	if path == "" {
		r.fields[field] = value

		return nil
	}

	body, err := r.api.Request(ctx, http.MethodPatch, path, nil, map[string]any{field: value})
	if err != nil {
		return err
	}

	return r.merge(body)
}

// Update issues a single PATCH with all given fields, then updates the local
// bag from the response body rather than the input, so server-computed
// derived fields are captured.
func (r *Record) Update(ctx context.Context, fields map[string]any) error {
	path := r.detailPath()
	if path == "" {
		return ErrNotPersisted
	}

	body, err := r.api.Request(ctx, http.MethodPatch, path, nil, fields)
	if err != nil {
		return err
	}

	return r.merge(body)
}

// Refresh re-fetches the record's canonical URL, overwrites the entire local
// bag, and drops every cached relationship resolution.
func (r *Record) Refresh(ctx context.Context) error {
	path := r.detailPath()
	if path == "" {
		return ErrNotPersisted
	}

	body, err := r.api.Request(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(body, &fields); err != nil {
		return fmt.Errorf("parsing record response: %w", err)
	}

	r.fields = fields
	r.related = make(map[string]any)

	return nil
}

// Delete issues a DELETE to the record's canonical URL. The record is not
// marked dead; callers must discard it, and a later mutation will surface
// the API's 404.
func (r *Record) Delete(ctx context.Context) error {
	path := r.detailPath()
	if path == "" {
		return ErrNotPersisted
	}

	_, err := r.api.Request(ctx, http.MethodDelete, path, nil, nil)

	return err
}

// IsRelationship reports whether a field holds a reference (or list of
// references) to another resource.
func (r *Record) IsRelationship(field string) bool {
	value, ok := r.fields[field]
	if !ok {
		return false
	}

	if list, isList := value.([]any); isList {
		if len(list) == 0 {
			_, declared := r.schema.Relationships[field]

			return declared
		}

		value = list[0]
	}

	_, _, ok = r.resolveReference(field, value)

	return ok
}

// Related resolves a to-one relationship field into a live Record. The first
// read fetches the referenced URL; the result is cached on the instance and
// returned unchanged until Refresh invalidates it. A missing target surfaces
// as a NotFoundError.
func (r *Record) Related(ctx context.Context, field string) (*Record, error) {
	if cached, ok := r.related[field]; ok {
		if record, isRecord := cached.(*Record); isRecord {
			return record, nil
		}
	}

	value, ok := r.fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	targetType, id, ok := r.resolveReference(field, value)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRelationship, field)
	}

	record, err := r.fetchTarget(ctx, targetType, id, value)
	if err != nil {
		return nil, err
	}

	r.related[field] = record

	return record, nil
}

// RelatedList resolves a to-many relationship field into live Records, one
// fetch per reference. Results are cached like Related.
func (r *Record) RelatedList(ctx context.Context, field string) ([]*Record, error) {
	if cached, ok := r.related[field]; ok {
		if records, isList := cached.([]*Record); isList {
			return records, nil
		}
	}

	value, ok := r.fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	list, isList := value.([]any)
	if !isList {
		return nil, fmt.Errorf("%w: %s is not a list", ErrNotRelationship, field)
	}

	records := make([]*Record, 0, len(list))

	for _, item := range list {
		targetType, id, ok := r.resolveReference(field, item)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotRelationship, field)
		}

		record, err := r.fetchTarget(ctx, targetType, id, item)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	r.related[field] = records

	return records, nil
}

// detailPath prefers the canonical URL reported by the API and falls back to
// the conventional {version}/{resource}/{id}/ path.
func (r *Record) detailPath() string {
	if rawURL := r.CanonicalURL(); rawURL != "" {
		return rawURL
	}

	if id := r.ID(); id != "" {
		return collectionPath(r.version, r.schema.Path) + id + "/"
	}

	return ""
}

// merge folds a PATCH response into the local bag and invalidates cached
// relationship resolutions for the fields it touched.
func (r *Record) merge(body []byte) error {
	updated := make(map[string]any)
	if err := json.Unmarshal(body, &updated); err != nil {
		return fmt.Errorf("parsing record response: %w", err)
	}

	for key, value := range updated {
		r.fields[key] = value
		delete(r.related, key)
	}

	return nil
}

// resolveReference determines the target type and id of one reference value.
// A field is a reference when the schema declares it, or when its value is a
// URL matching a registered resource route.
func (r *Record) resolveReference(field string, value any) (targetType, id string, ok bool) {
	switch v := value.(type) {
	case string:
		if matchedType, matchedID, matched := r.registry.MatchURL(v); matched {
			declared, hasDeclared := r.schema.Relationships[field]
			if hasDeclared {
				return declared, matchedID, true
			}

			return matchedType, matchedID, true
		}

		if declared, hasDeclared := r.schema.Relationships[field]; hasDeclared {
			if _, err := uuid.Parse(v); err == nil {
				return declared, v, true
			}
		}
	case map[string]any:
		declared, hasDeclared := r.schema.Relationships[field]
		if !hasDeclared {
			return "", "", false
		}

		if rawID, hasID := v["id"].(string); hasID {
			return declared, rawID, true
		}
	}

	return "", "", false
}

// fetchTarget materializes the referenced record. When the reference value is
// itself a canonical URL the fetch goes straight to it.
func (r *Record) fetchTarget(ctx context.Context, targetType, id string, value any) (*Record, error) {
	schema, ok := r.registry.Lookup(targetType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResourceType, targetType)
	}

	path := collectionPath(r.version, schema.Path) + id + "/"
	if rawURL, isString := value.(string); isString && strings.HasPrefix(rawURL, "http") {
		path = rawURL
	}

	body, err := r.api.Request(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}

	return NewRecord(r.api, r.registry, schema, r.version, fields), nil
}

// collectionPath builds the conventional collection path, e.g.
// "/v1/simulations/".
func collectionPath(version, segment string) string {
	return "/" + version + "/" + segment + "/"
}

// Records is the generic per-resource-type accessor: it lists, fetches,
// creates, and deletes Record instances for one registered resource type.
type Records struct {
	api      Requester
	registry *Registry
	schema   *Schema
	version  string
}

// NewRecords creates a record collection for one resource type.
func NewRecords(api Requester, registry *Registry, schema *Schema, version string) *Records {
	return &Records{
		api:      api,
		registry: registry,
		schema:   schema,
		version:  version,
	}
}

// Type returns the collection's resource type.
func (c *Records) Type() string {
	return c.schema.Type
}

// List fetches all records matching the caller-supplied filters, following
// pagination links until exhausted. Filters are applied by the API, not
// locally.
func (c *Records) List(ctx context.Context, params *QueryParams) ([]*Record, error) {
	pages, err := FollowPages[map[string]any](ctx, c.api, collectionPath(c.version, c.schema.Path), params.ToValues())
	if err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(pages))
	for _, fields := range pages {
		records = append(records, NewRecord(c.api, c.registry, c.schema, c.version, fields))
	}

	return records, nil
}

// Get fetches one record by id or instance.
func (c *Records) Get(ctx context.Context, ref any) (*Record, error) {
	id, err := ResolveID(ref)
	if err != nil {
		return nil, err
	}

	body, err := c.api.Request(ctx, http.MethodGet, collectionPath(c.version, c.schema.Path)+id+"/", nil, nil)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}

	return NewRecord(c.api, c.registry, c.schema, c.version, fields), nil
}

// Create issues a POST with the given fields and wraps the response.
func (c *Records) Create(ctx context.Context, fields map[string]any) (*Record, error) {
	body, err := c.api.Request(ctx, http.MethodPost, collectionPath(c.version, c.schema.Path), nil, fields)
	if err != nil {
		return nil, err
	}

	created := make(map[string]any)
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}

	return NewRecord(c.api, c.registry, c.schema, c.version, created), nil
}

// Delete removes one record by id or instance.
func (c *Records) Delete(ctx context.Context, ref any) error {
	id, err := ResolveID(ref)
	if err != nil {
		return err
	}

	_, err = c.api.Request(ctx, http.MethodDelete, collectionPath(c.version, c.schema.Path)+id+"/", nil, nil)

	return err
}

// ResolveID coerces an id-or-instance argument into a raw identifier. It
// accepts a non-empty string, a uuid.UUID, or any value implementing
// Identified (typed resources and Records).
func ResolveID(ref any) (string, error) {
	switch v := ref.(type) {
	case string:
		if v == "" {
			return "", ErrInvalidIdentifier
		}

		return v, nil
	case uuid.UUID:
		return v.String(), nil
	case Identified:
		id := v.Identifier()
		if id == "" {
			return "", ErrInvalidIdentifier
		}

		return id, nil
	}

	return "", ErrInvalidIdentifier
}
