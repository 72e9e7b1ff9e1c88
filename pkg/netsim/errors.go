package netsim

import (
	"errors"
	"fmt"
)

// AuthorizationError indicates the API rejected the client's credentials or
// bearer token. It is surfaced when the login endpoint does not return a
// token, or after the single re-authentication attempt on a 401 response has
// also failed.
type AuthorizationError struct {
	Message string
}

// Error implements the error interface.
func (e *AuthorizationError) Error() string {
	if e.Message == "" {
		return "authorization with the API failed"
	}

	return e.Message
}

// ForbiddenError indicates a 403 response. Unlike a 401 it never triggers
// re-authentication: the token is valid but lacks permission for the endpoint.
type ForbiddenError struct {
	Endpoint string
}

// Error implements the error interface.
func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("received 403 Forbidden for %s", e.Endpoint)
}

// NotFoundError indicates a 404 response from a get, delete, or relationship
// resolution.
type NotFoundError struct {
	Endpoint string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found at %s", e.Endpoint)
}

// UnexpectedResponseError carries the status code and raw body of any other
// non-2xx response, or of a 2xx response whose body is not valid JSON.
type UnexpectedResponseError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

// Error implements the error interface.
func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response from %s (%d): %s", e.Endpoint, e.StatusCode, e.Body)
}

// ConnectionError wraps network-level failures, including timeouts.
type ConnectionError struct {
	Endpoint string
	Err      error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying network error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired         = errors.New("config is required")
	ErrAPIURLRequired         = errors.New("API URL is required")
	ErrNoCredentials          = errors.New("one of username/password, bearer token, or API token is required")
	ErrConflictingCredentials = errors.New("conflicting credential forms provided; supply exactly one")
	ErrPasswordRequired       = errors.New("username and password must both be provided")
	ErrUnknownResourceType    = errors.New("unknown resource type")
	ErrInvalidIdentifier      = errors.New("identifier must be a non-empty string, uuid.UUID, or a resource instance")
	ErrNotPersisted           = errors.New("record has no canonical URL")
	ErrNotRelationship        = errors.New("field is not a relationship reference")
	ErrUnknownField           = errors.New("field is not present on the record")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	notFound := &NotFoundError{}

	return errors.As(err, &notFound)
}

// IsUnauthorized checks if the error is an authorization error.
func IsUnauthorized(err error) bool {
	authErr := &AuthorizationError{}

	return errors.As(err, &authErr)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	forbidden := &ForbiddenError{}

	return errors.As(err, &forbidden)
}

// IsConnectionError checks if the error is a network-level failure.
func IsConnectionError(err error) bool {
	connErr := &ConnectionError{}

	return errors.As(err, &connErr)
}
