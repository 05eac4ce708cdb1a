package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rbxweb/rbxweb/internal/http"
	"github.com/rbxweb/rbxweb/pkg/rbx"
)

const badgesSubdomain = "badges"

// BadgesClient implements rbx.BadgesClient.
type BadgesClient struct {
	httpClient *http.Client
}

// NewBadgesClient creates a new badges client.
func NewBadgesClient(httpClient *http.Client) *BadgesClient {
	return &BadgesClient{httpClient: httpClient}
}

// Get implements rbx.BadgesClient.Get.
func (c *BadgesClient) Get(ctx context.Context, badgeID int64) (*rbx.Badge, error) {
	path := fmt.Sprintf("/v1/badges/%d", badgeID)

	resp, err := c.httpClient.Get(ctx, badgesSubdomain, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting badge: %w", err)
	}

	var badge rbx.Badge
	if err := json.Unmarshal(resp.Body, &badge); err != nil {
		return nil, fmt.Errorf("parsing badge response: %w", err)
	}

	return &badge, nil
}

// ListForUser implements rbx.BadgesClient.ListForUser.
func (c *BadgesClient) ListForUser(ctx context.Context, userID int64, params *rbx.QueryParams) (*rbx.Page[rbx.Badge], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	path := fmt.Sprintf("/v1/users/%d/badges", userID)

	resp, err := c.httpClient.Get(ctx, badgesSubdomain, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing user badges: %w", err)
	}

	var page rbx.Page[rbx.Badge]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing user badges response: %w", err)
	}

	return &page, nil
}

// ListForUniverse implements rbx.BadgesClient.ListForUniverse.
func (c *BadgesClient) ListForUniverse(ctx context.Context, universeID int64, params *rbx.QueryParams) (*rbx.Page[rbx.Badge], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	path := fmt.Sprintf("/v1/universes/%d/badges", universeID)

	resp, err := c.httpClient.Get(ctx, badgesSubdomain, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing universe badges: %w", err)
	}

	var page rbx.Page[rbx.Badge]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing universe badges response: %w", err)
	}

	return &page, nil
}
