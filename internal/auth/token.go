// Package auth provides token acquisition and storage for the platform API.
package auth

import (
	"sync"
	"time"

	"github.com/netsim-io/netsim-client/internal/constants"
)

// Token represents a bearer token with optional expiration metadata. The
// login endpoint does not report an expiry; such tokens stay valid until the
// API rejects them.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Valid checks if the token is present and not within the expiration buffer.
func (t *Token) Valid() bool {
	if t == nil || t.Value == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(constants.TokenExpirationBuffer).Before(t.ExpiresAt)
}

// TokenStore provides thread-safe token storage.
type TokenStore struct {
	mutex sync.RWMutex
	token *Token
}

// NewTokenStore creates a new token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token, or nil.
func (s *TokenStore) Get() *Token {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token
}

// Set stores a token.
func (s *TokenStore) Set(token *Token) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = token
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = nil
}
