package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/rbxweb/rbxweb/internal/http"
)

// newTestClient spins up a test server and a client pointed at it. Subdomain
// routing is disabled when the base URL carries a scheme, so handlers match
// on path alone.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := &Client{
		httpClient: internalhttp.NewClient(server.URL, nil),
		baseDomain: server.URL,
	}
	client.initializeResourceClients()

	return client
}
