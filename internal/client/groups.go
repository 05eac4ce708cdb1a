package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rbxweb/rbxweb/internal/http"
	"github.com/rbxweb/rbxweb/pkg/rbx"
)

const groupsSubdomain = "groups"

// GroupsClient implements rbx.GroupsClient.
type GroupsClient struct {
	httpClient *http.Client
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(httpClient *http.Client) *GroupsClient {
	return &GroupsClient{httpClient: httpClient}
}

// Get implements rbx.GroupsClient.Get.
func (c *GroupsClient) Get(ctx context.Context, groupID int64) (*rbx.Group, error) {
	path := fmt.Sprintf("/v1/groups/%d", groupID)

	resp, err := c.httpClient.Get(ctx, groupsSubdomain, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting group: %w", err)
	}

	var group rbx.Group
	if err := json.Unmarshal(resp.Body, &group); err != nil {
		return nil, fmt.Errorf("parsing group response: %w", err)
	}

	return &group, nil
}

// GetRoles implements rbx.GroupsClient.GetRoles.
func (c *GroupsClient) GetRoles(ctx context.Context, groupID int64) ([]rbx.GroupRole, error) {
	path := fmt.Sprintf("/v1/groups/%d/roles", groupID)

	resp, err := c.httpClient.Get(ctx, groupsSubdomain, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting group roles: %w", err)
	}

	var result struct {
		GroupID int64           `json:"groupId"`
		Roles   []rbx.GroupRole `json:"roles"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing group roles response: %w", err)
	}

	return result.Roles, nil
}

// ListMembers implements rbx.GroupsClient.ListMembers.
func (c *GroupsClient) ListMembers(ctx context.Context, groupID int64, params *rbx.QueryParams) (*rbx.Page[rbx.GroupMember], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	path := fmt.Sprintf("/v1/groups/%d/users", groupID)

	resp, err := c.httpClient.Get(ctx, groupsSubdomain, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing group members: %w", err)
	}

	var page rbx.Page[rbx.GroupMember]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing group members response: %w", err)
	}

	return &page, nil
}

// GetUserRoles implements rbx.GroupsClient.GetUserRoles.
func (c *GroupsClient) GetUserRoles(ctx context.Context, userID int64) ([]rbx.GroupMembership, error) {
	path := fmt.Sprintf("/v1/users/%d/groups/roles", userID)

	resp, err := c.httpClient.Get(ctx, groupsSubdomain, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user group roles: %w", err)
	}

	var result rbx.DataWrapper[rbx.GroupMembership]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing user group roles response: %w", err)
	}

	return result.Data, nil
}

// Search implements rbx.GroupsClient.Search.
func (c *GroupsClient) Search(ctx context.Context, keyword string, params *rbx.QueryParams) (*rbx.Page[rbx.GroupSearchResult], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	} else {
		query = url.Values{}
	}

	query.Set("keyword", keyword)

	resp, err := c.httpClient.Get(ctx, groupsSubdomain, "/v1/groups/search", query)
	if err != nil {
		return nil, fmt.Errorf("searching groups: %w", err)
	}

	var page rbx.Page[rbx.GroupSearchResult]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing group search response: %w", err)
	}

	return &page, nil
}
