package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rbxweb/rbxweb/internal/http"
	"github.com/rbxweb/rbxweb/pkg/rbx"
)

const usersSubdomain = "users"

// UsersClient implements rbx.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// Get implements rbx.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID int64) (*rbx.User, error) {
	path := fmt.Sprintf("/v1/users/%d", userID)

	resp, err := c.httpClient.Get(ctx, usersSubdomain, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user rbx.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// GetAuthenticated implements rbx.UsersClient.GetAuthenticated.
func (c *UsersClient) GetAuthenticated(ctx context.Context) (*rbx.AuthenticatedUser, error) {
	resp, err := c.httpClient.Get(ctx, usersSubdomain, "/v1/users/authenticated", nil)
	if err != nil {
		return nil, fmt.Errorf("getting authenticated user: %w", err)
	}

	var user rbx.AuthenticatedUser
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing authenticated user response: %w", err)
	}

	return &user, nil
}

// GetByUsernames implements rbx.UsersClient.GetByUsernames.
func (c *UsersClient) GetByUsernames(ctx context.Context, usernames []string, excludeBanned bool) ([]rbx.RequestedUser, error) {
	request := struct {
		Usernames          []string `json:"usernames"`
		ExcludeBannedUsers bool     `json:"excludeBannedUsers"`
	}{Usernames: usernames, ExcludeBannedUsers: excludeBanned}

	resp, err := c.httpClient.Post(ctx, usersSubdomain, "/v1/usernames/users", request)
	if err != nil {
		return nil, fmt.Errorf("looking up users by username: %w", err)
	}

	var result rbx.DataWrapper[rbx.RequestedUser]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing username lookup response: %w", err)
	}

	return result.Data, nil
}

// GetByIDs implements rbx.UsersClient.GetByIDs.
func (c *UsersClient) GetByIDs(ctx context.Context, userIDs []int64, excludeBanned bool) ([]rbx.SkinnyUser, error) {
	request := struct {
		UserIDs            []int64 `json:"userIds"`
		ExcludeBannedUsers bool    `json:"excludeBannedUsers"`
	}{UserIDs: userIDs, ExcludeBannedUsers: excludeBanned}

	resp, err := c.httpClient.Post(ctx, usersSubdomain, "/v1/users", request)
	if err != nil {
		return nil, fmt.Errorf("looking up users by id: %w", err)
	}

	var result rbx.DataWrapper[rbx.SkinnyUser]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing user lookup response: %w", err)
	}

	return result.Data, nil
}

// Search implements rbx.UsersClient.Search.
func (c *UsersClient) Search(ctx context.Context, keyword string, params *rbx.QueryParams) (*rbx.Page[rbx.SkinnyUser], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	} else {
		query = url.Values{}
	}

	query.Set("keyword", keyword)

	resp, err := c.httpClient.Get(ctx, usersSubdomain, "/v1/users/search", query)
	if err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}

	var page rbx.Page[rbx.SkinnyUser]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing user search response: %w", err)
	}

	return &page, nil
}

// UsernameHistory implements rbx.UsersClient.UsernameHistory.
func (c *UsersClient) UsernameHistory(ctx context.Context, userID int64, params *rbx.QueryParams) (*rbx.Page[rbx.UsernameRecord], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	path := fmt.Sprintf("/v1/users/%d/username-history", userID)

	resp, err := c.httpClient.Get(ctx, usersSubdomain, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting username history: %w", err)
	}

	var page rbx.Page[rbx.UsernameRecord]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing username history response: %w", err)
	}

	return &page, nil
}
