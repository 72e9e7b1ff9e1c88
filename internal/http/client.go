// Package http provides the authenticated transport for the platform API.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/netsim-io/netsim-client/internal/constants"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// TokenManager is the subset of token management the transport needs.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
}

// Client is an HTTP client for the platform API. It injects bearer tokens,
// re-authenticates once on a 401, and maps response status codes onto the
// typed error taxonomy.
type Client struct {
	baseURL      string
	tokenManager TokenManager
	httpClient   *retryablehttp.Client
	logger       netsim.Logger
	debug        bool
	userAgent    string
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger netsim.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig opts in to retrying failed requests. Requests are not
// retried at all unless this option is applied.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout sets the end-to-end request timeout.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new API transport.
func NewClient(baseURL string, tokenManager TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.HTTPClient.Transport = &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: constants.DefaultConnectTimeout,
		}).DialContext,
	}
	retryClient.Logger = nil
	// Surface the final response instead of a "giving up" error so status
	// codes map onto the error taxonomy even when retries are exhausted.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Do executes a request against the API. A 401 triggers a single
// re-authentication followed by one replay; a 403 never does.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	var bodyBytes []byte
	if req.Body != nil {
		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	resp, err := c.doOnce(ctx, req, fullURL, bodyBytes)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && c.tokenManager != nil {
		if refreshErr := c.tokenManager.RefreshToken(ctx); refreshErr != nil {
			if netsim.IsConnectionError(refreshErr) {
				return nil, refreshErr
			}

			return nil, &netsim.AuthorizationError{
				Message: fmt.Sprintf("re-authentication failed: %v", refreshErr),
			}
		}

		resp, err = c.doOnce(ctx, req, fullURL, bodyBytes)
		if err != nil {
			return nil, err
		}
	}

	return c.checkResponse(req, resp)
}

// doOnce performs a single attempt, including token injection.
func (c *Client) doOnce(ctx context.Context, req *Request, fullURL string, bodyBytes []byte) (*Response, error) {
	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if bodyBytes != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, err
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	c.logRequest(req.Method, fullURL, httpReq.Header)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &netsim.ConnectionError{Endpoint: req.Path, Err: err}
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &netsim.ConnectionError{Endpoint: req.Path, Err: err}
	}

	c.logResponse(req.Method, fullURL, httpResp.StatusCode, respBody)

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// checkResponse maps status codes onto the typed error taxonomy. A 2xx with
// a non-JSON body is treated as unexpected.
func (c *Client) checkResponse(req *Request, resp *Response) (*Response, error) {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if len(bytes.TrimSpace(resp.Body)) > 0 && !json.Valid(resp.Body) {
			return resp, &netsim.UnexpectedResponseError{
				StatusCode: resp.StatusCode,
				Endpoint:   req.Path,
				Body:       string(resp.Body),
			}
		}

		return resp, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return resp, &netsim.AuthorizationError{
			Message: fmt.Sprintf("received 401 Unauthorized for %s", req.Path),
		}
	case resp.StatusCode == http.StatusForbidden:
		return resp, &netsim.ForbiddenError{Endpoint: req.Path}
	case resp.StatusCode == http.StatusNotFound:
		return resp, &netsim.NotFoundError{Endpoint: req.Path}
	default:
		return resp, &netsim.UnexpectedResponseError{
			StatusCode: resp.StatusCode,
			Endpoint:   req.Path,
			Body:       string(resp.Body),
		}
	}
}

// buildURL resolves a request path against the base URL. Absolute URLs, such
// as pagination "next" links and canonical record URLs, pass through as-is.
func (c *Client) buildURL(req *Request) (string, error) {
	fullURL := req.Path
	if !strings.HasPrefix(fullURL, "http://") && !strings.HasPrefix(fullURL, "https://") {
		fullURL = c.baseURL + req.Path
	}

	if len(req.Query) == 0 {
		return fullURL, nil
	}

	parsed, err := url.Parse(fullURL)
	if err != nil {
		return "", fmt.Errorf("parsing request URL: %w", err)
	}

	query := parsed.Query()

	for key, values := range req.Query {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

func (c *Client) logRequest(method, fullURL string, headers http.Header) {
	if !c.debug || c.logger == nil {
		return
	}

	redacted := make(map[string]interface{}, len(headers))

	for key := range headers {
		if key == "Authorization" {
			redacted[key] = "[REDACTED]"

			continue
		}

		redacted[key] = headers.Get(key)
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  method,
		"url":     fullURL,
		"headers": redacted,
	})
}

func (c *Client) logResponse(method, fullURL string, statusCode int, body []byte) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method": method,
		"url":    fullURL,
		"status": statusCode,
		"size":   len(body),
	})
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch performs a PATCH request. Mutations always go through PATCH; the API
// has no PUT surface.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Request implements the generic record transport: it executes the request
// and returns the raw response body.
func (c *Client) Request(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	resp, err := c.Do(ctx, &Request{Method: method, Path: path, Query: query, Body: body})
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}
