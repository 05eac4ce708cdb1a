package auth

import "sync"

// CSRFStore is a thread-safe holder for the X-CSRF-Token Roblox hands back
// on rejected state-changing requests. The token is shared by all requests
// on a client and replaced whenever the server rotates it.
type CSRFStore struct {
	mu    sync.RWMutex
	token string
}

// NewCSRFStore creates an empty token store.
func NewCSRFStore() *CSRFStore {
	return &CSRFStore{}
}

// Get returns the current token, or "" before the first handshake.
func (s *CSRFStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the current token. Empty values are ignored so a response
// without the header cannot clear a valid token.
func (s *CSRFStore) Set(token string) {
	if token == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}
