// Package rbxclient provides the main entry point for creating Roblox web API clients
package rbxclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/rbxweb/rbxweb/internal/client"
	"github.com/rbxweb/rbxweb/pkg/rbx"
)

// New creates a new Roblox web API client.
//
// A nil or empty BaseDomain defaults to "roblox.com". Schemes and a leading
// "www." are stripped, so "https://www.roblox.com/" and "roblox.com" build
// the same client.
func New(config *rbx.Config) (rbx.Client, error) {
	if config == nil {
		config = &rbx.Config{}
	}

	config.BaseDomain = normalizeBaseDomain(config.BaseDomain)

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewAuthenticated creates a client and verifies the configured session
// cookie by fetching the authenticated user. It fails fast on a missing or
// expired cookie instead of surfacing 401s on later calls.
func NewAuthenticated(ctx context.Context, config *rbx.Config) (rbx.Client, *rbx.AuthenticatedUser, error) {
	if config == nil || config.Cookie == "" {
		return nil, nil, rbx.ErrNoCookieConfigured
	}

	apiClient, err := New(config)
	if err != nil {
		return nil, nil, err
	}

	user, err := apiClient.Users().GetAuthenticated(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("verifying session cookie: %w", err)
	}

	return apiClient, user, nil
}

// normalizeBaseDomain reduces a user-supplied domain or URL to the apex
// domain the subdomain router expects. Base values carrying a scheme other
// than to a real Roblox domain (e.g. test servers) are passed through.
func normalizeBaseDomain(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return "roblox.com"
	}

	// Test servers configure a full URL; leave those alone.
	if strings.Contains(base, "://") && !strings.Contains(base, "roblox.com") {
		return strings.TrimSuffix(base, "/")
	}

	base = strings.TrimPrefix(base, "https://")
	base = strings.TrimPrefix(base, "http://")
	base = strings.TrimPrefix(base, "www.")
	base = strings.TrimSuffix(base, "/")

	return base
}
