package sessions

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// CookieName is the cookie the session token travels in for browser clients.
const CookieName = "session_token"

// TokenFromRequest extracts the session token from the Authorization header
// (Bearer scheme) or, failing that, from the session cookie.
func TokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Fields(authHeader)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1], nil
		}
		return "", errors.New("invalid authorization header format")
	}

	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", errors.New("session token missing")
}

// Registry maps opaque session tokens to user IDs. It lives only in process
// memory: a restart invalidates every session. One Registry is constructed in
// main and shared by all requests, so access goes through a mutex.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]uuid.UUID
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		tokens: make(map[string]uuid.UUID),
	}
}

// Create issues a new unguessable token for the given user and stores it.
func (r *Registry) Create(userID uuid.UUID) string {
	token := uuid.NewString()

	r.mu.Lock()
	r.tokens[token] = userID
	r.mu.Unlock()

	return token
}

// Resolve returns the user ID a token was issued for. The second return value
// is false for unknown or empty tokens; Resolve never fails otherwise.
func (r *Registry) Resolve(token string) (uuid.UUID, bool) {
	r.mu.RLock()
	userID, ok := r.tokens[token]
	r.mu.RUnlock()
	return userID, ok
}

// Delete removes a token. Deleting an unknown token is a no-op.
func (r *Registry) Delete(token string) {
	r.mu.Lock()
	delete(r.tokens, token)
	r.mu.Unlock()
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}
