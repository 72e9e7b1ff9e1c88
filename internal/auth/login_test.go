package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/netsim-io/netsim-client/internal/auth"
	"github.com/netsim-io/netsim-client/pkg/netsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginTokenManager_GetToken(t *testing.T) {
	t.Parallel()

	var logins atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logins.Add(1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds["username"])
		assert.Equal(t, "hunter2", creds["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token": "tok-1", "username": "alice"}`))
	}))
	defer server.Close()

	manager := auth.NewLoginTokenManager(server.URL+"/v1/login/", "alice", "hunter2", nil)

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	// Cached until refreshed.
	token, err = manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, int64(1), logins.Load())

	require.NoError(t, manager.RefreshToken(context.Background()))
	assert.Equal(t, int64(2), logins.Load())
}

func TestLoginTokenManager_RejectedCredentials(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Invalid username/password."}`))
	}))
	defer server.Close()

	manager := auth.NewLoginTokenManager(server.URL+"/v1/login/", "alice", "wrong", nil)

	_, err := manager.GetToken(context.Background())
	require.Error(t, err)
	assert.True(t, netsim.IsUnauthorized(err))
}

func TestLoginTokenManager_MissingToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"username": "alice"}`))
	}))
	defer server.Close()

	manager := auth.NewLoginTokenManager(server.URL+"/v1/login/", "alice", "hunter2", nil)

	_, err := manager.GetToken(context.Background())
	require.Error(t, err)
	assert.True(t, netsim.IsUnauthorized(err))
}

func TestLoginTokenManager_ServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer server.Close()

	manager := auth.NewLoginTokenManager(server.URL+"/v1/login/", "alice", "hunter2", nil)

	_, err := manager.GetToken(context.Background())
	require.Error(t, err)

	var unexpected *netsim.UnexpectedResponseError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, http.StatusBadGateway, unexpected.StatusCode)
	assert.Equal(t, "bad gateway", unexpected.Body)
}

func TestLoginTokenManager_ConnectionError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	manager := auth.NewLoginTokenManager(server.URL+"/v1/login/", "alice", "hunter2", nil)

	_, err := manager.GetToken(context.Background())
	require.Error(t, err)
	assert.True(t, netsim.IsConnectionError(err))
}

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticTokenManager("api-token-1")

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "api-token-1", token)

	err = manager.RefreshToken(context.Background())
	require.ErrorIs(t, err, auth.ErrStaticTokenCannotRefresh)
}
