// Package session owns the bearer token lifecycle. The token is an opaque
// string: no structure is parsed, no expiry is tracked client-side. A request
// counts as authenticated iff a token is present in the store at call time.
package session

import "github.com/confideapp/confide/internal/kv"

const tokenKey = "auth_token"

// Store is the single persistence point for the bearer token.
type Store struct {
	kv kv.Store
}

// NewStore returns a Store backed by the given key-value port.
func NewStore(store kv.Store) *Store {
	return &Store{kv: store}
}

// SetToken writes the token, overwriting any existing value. No validation
// is performed; the backend is the only authority on token validity.
func (s *Store) SetToken(token string) error {
	return s.kv.Set(tokenKey, token)
}

// Token returns the current token and whether one is present. Read failures
// are treated as absence so callers fall back to unauthenticated requests.
func (s *Store) Token() (string, bool) {
	v, ok, err := s.kv.Get(tokenKey)
	if err != nil || !ok || v == "" {
		return "", false
	}
	return v, true
}

// ClearToken removes the token. This is the only path that destroys a
// session; a backend-rejected token is surfaced to the user, never
// auto-cleared.
func (s *Store) ClearToken() error {
	return s.kv.Delete(tokenKey)
}

// LoggedIn reports whether a token is present.
func (s *Store) LoggedIn() bool {
	_, ok := s.Token()
	return ok
}
