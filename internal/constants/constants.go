package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultConnectTimeout is the timeout for establishing connections.
	DefaultConnectTimeout = 16 * time.Second

	// DefaultHTTPTimeout is the default end-to-end timeout for HTTP requests.
	DefaultHTTPTimeout = 61 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Failed requests are not retried unless the caller opts in
// through the retry configuration.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between opted-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between opted-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Token handling.
const (
	// TokenExpirationBuffer is the buffer time before token expiration.
	TokenExpirationBuffer = 30 * time.Second
)

// Pagination limits.
const (
	// DefaultPageSize is the page size requested from list endpoints.
	DefaultPageSize = 200
)

// API path segments. Full paths are built as /{version}/{segment}/.
const (
	// LoginPathSegment is the username/password login endpoint segment.
	LoginPathSegment = "login"

	// AccountPathSegment is the authenticated identity endpoint segment.
	AccountPathSegment = "account"
)
