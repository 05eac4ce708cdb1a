package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rbxweb/rbxweb/internal/http"
	"github.com/rbxweb/rbxweb/pkg/rbx"
)

const presenceSubdomain = "presence"

// PresenceClient implements rbx.PresenceClient.
type PresenceClient struct {
	httpClient *http.Client
}

// NewPresenceClient creates a new presence client.
func NewPresenceClient(httpClient *http.Client) *PresenceClient {
	return &PresenceClient{httpClient: httpClient}
}

type presenceRequest struct {
	UserIDs []int64 `json:"userIds"`
}

// GetForUsers implements rbx.PresenceClient.GetForUsers.
func (c *PresenceClient) GetForUsers(ctx context.Context, userIDs []int64) ([]rbx.Presence, error) {
	resp, err := c.httpClient.Post(ctx, presenceSubdomain, "/v1/presence/users", presenceRequest{UserIDs: userIDs})
	if err != nil {
		return nil, fmt.Errorf("getting presences: %w", err)
	}

	var result struct {
		UserPresences []rbx.Presence `json:"userPresences"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing presences response: %w", err)
	}

	return result.UserPresences, nil
}

// LastOnline implements rbx.PresenceClient.LastOnline.
func (c *PresenceClient) LastOnline(ctx context.Context, userIDs []int64) ([]rbx.LastOnline, error) {
	resp, err := c.httpClient.Post(ctx, presenceSubdomain, "/v1/presence/last-online", presenceRequest{UserIDs: userIDs})
	if err != nil {
		return nil, fmt.Errorf("getting last online timestamps: %w", err)
	}

	var result struct {
		LastOnlineTimestamps []rbx.LastOnline `json:"lastOnlineTimestamps"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing last online response: %w", err)
	}

	return result.LastOnlineTimestamps, nil
}
