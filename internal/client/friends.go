package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rbxweb/rbxweb/internal/http"
	"github.com/rbxweb/rbxweb/pkg/rbx"
)

const friendsSubdomain = "friends"

// FriendsClient implements rbx.FriendsClient.
type FriendsClient struct {
	httpClient *http.Client
}

// NewFriendsClient creates a new friends client.
func NewFriendsClient(httpClient *http.Client) *FriendsClient {
	return &FriendsClient{httpClient: httpClient}
}

// List implements rbx.FriendsClient.List. The friends listing is not
// paginated; the full list comes back in one response.
func (c *FriendsClient) List(ctx context.Context, userID int64) ([]rbx.Friend, error) {
	path := fmt.Sprintf("/v1/users/%d/friends", userID)

	resp, err := c.httpClient.Get(ctx, friendsSubdomain, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing friends: %w", err)
	}

	var result rbx.DataWrapper[rbx.Friend]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing friends response: %w", err)
	}

	return result.Data, nil
}

// Count implements rbx.FriendsClient.Count.
func (c *FriendsClient) Count(ctx context.Context, userID int64) (int64, error) {
	path := fmt.Sprintf("/v1/users/%d/friends/count", userID)

	resp, err := c.httpClient.Get(ctx, friendsSubdomain, path, nil)
	if err != nil {
		return 0, fmt.Errorf("getting friend count: %w", err)
	}

	var count rbx.FriendCount
	if err := json.Unmarshal(resp.Body, &count); err != nil {
		return 0, fmt.Errorf("parsing friend count response: %w", err)
	}

	return count.Count, nil
}

// Followers implements rbx.FriendsClient.Followers.
func (c *FriendsClient) Followers(ctx context.Context, userID int64, params *rbx.QueryParams) (*rbx.Page[rbx.Friend], error) {
	return c.page(ctx, fmt.Sprintf("/v1/users/%d/followers", userID), params)
}

// Following implements rbx.FriendsClient.Following.
func (c *FriendsClient) Following(ctx context.Context, userID int64, params *rbx.QueryParams) (*rbx.Page[rbx.Friend], error) {
	return c.page(ctx, fmt.Sprintf("/v1/users/%d/followings", userID), params)
}

func (c *FriendsClient) page(ctx context.Context, path string, params *rbx.QueryParams) (*rbx.Page[rbx.Friend], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, friendsSubdomain, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing followers: %w", err)
	}

	var page rbx.Page[rbx.Friend]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing followers response: %w", err)
	}

	return &page, nil
}
