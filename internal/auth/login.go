package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/netsim-io/netsim-client/internal/constants"
	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// Static errors for err113 compliance.
var (
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
)

// TokenManager handles bearer token acquisition and refresh.
type TokenManager interface {
	// GetToken returns a valid bearer token, acquiring one if necessary.
	GetToken(ctx context.Context) (string, error)
	// RefreshToken discards any cached token and acquires a fresh one.
	RefreshToken(ctx context.Context) error
	// SetToken manually sets the bearer token.
	SetToken(token string, expiresAt time.Time)
}

// LoginTokenManager obtains bearer tokens from the login endpoint using a
// username and password. Re-authentication after a token expires reuses the
// stored credentials, so a LoginTokenManager can refresh indefinitely.
type LoginTokenManager struct {
	loginURL   string
	username   string
	password   string
	httpClient *http.Client
	store      *TokenStore
	mutex      sync.Mutex
}

// NewLoginTokenManager creates a token manager backed by the login endpoint.
func NewLoginTokenManager(loginURL, username, password string, httpClient *http.Client) *LoginTokenManager {
	if httpClient == nil {
		// Logins are small exchanges and should fail fast.
		httpClient = &http.Client{Timeout: constants.ShortHTTPTimeout}
	}

	return &LoginTokenManager{
		loginURL:   loginURL,
		username:   username,
		password:   password,
		httpClient: httpClient,
		store:      NewTokenStore(),
	}
}

// GetToken returns a valid bearer token, logging in if none is cached.
func (m *LoginTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if token := m.store.Get(); token.Valid() {
		return token.Value, nil
	}

	token, err := m.login(ctx)
	if err != nil {
		return "", err
	}

	m.store.Set(token)

	return token.Value, nil
}

// RefreshToken discards the cached token and logs in again.
func (m *LoginTokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.store.Clear()

	token, err := m.login(ctx)
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetToken manually sets the bearer token.
func (m *LoginTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{Value: token, ExpiresAt: expiresAt})
}

// login posts the stored credentials and extracts the bearer token from the
// response.
func (m *LoginTokenManager) login(ctx context.Context) (*Token, error) {
	payload, err := json.Marshal(map[string]string{
		"username": m.username,
		"password": m.password,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.loginURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building login request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, &netsim.ConnectionError{Endpoint: m.loginURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &netsim.ConnectionError{Endpoint: m.loginURL, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &netsim.AuthorizationError{Message: "login credentials were rejected"}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &netsim.UnexpectedResponseError{
			StatusCode: resp.StatusCode,
			Endpoint:   m.loginURL,
			Body:       string(body),
		}
	}

	var result struct {
		Token string `json:"token"`
	}

	if err := json.Unmarshal(body, &result); err != nil || result.Token == "" {
		return nil, &netsim.AuthorizationError{Message: "login response did not include a token"}
	}

	return &Token{Value: result.Token}, nil
}

// StaticTokenManager serves a caller-supplied bearer or API token. It cannot
// re-authenticate; a rejected token stays rejected.
type StaticTokenManager struct {
	store *TokenStore
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	manager := &StaticTokenManager{store: NewTokenStore()}
	manager.store.Set(&Token{Value: token})

	return manager
}

// GetToken returns the fixed token.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	token := m.store.Get()
	if !token.Valid() {
		return "", &netsim.AuthorizationError{Message: "no valid token available"}
	}

	return token.Value, nil
}

// RefreshToken always fails; there are no credentials to log in with.
func (m *StaticTokenManager) RefreshToken(_ context.Context) error {
	return ErrStaticTokenCannotRefresh
}

// SetToken replaces the fixed token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{Value: token, ExpiresAt: expiresAt})
}
