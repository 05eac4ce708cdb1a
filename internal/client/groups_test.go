package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbxweb/rbxweb/pkg/rbx"
)

func TestGroupsGet(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/groups/7", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"id": 7,
			"name": "Official Group of Roblox",
			"description": "The official group",
			"owner": {"id":1,"name":"Roblox","displayName":"Roblox"},
			"shout": {
				"body": "hello",
				"poster": {"id":1,"name":"Roblox","displayName":"Roblox"},
				"created": "2020-01-01T00:00:00Z",
				"updated": "2020-01-02T00:00:00Z"
			},
			"memberCount": 1000000,
			"publicEntryAllowed": true,
			"hasVerifiedBadge": true
		}`))
	}))

	group, err := client.Groups().Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), group.ID)
	require.NotNil(t, group.Owner)
	assert.Equal(t, int64(1), group.Owner.ID)
	require.NotNil(t, group.Shout)
	assert.Equal(t, "hello", group.Shout.Body)
	assert.Equal(t, int64(1000000), group.MemberCount)
}

func TestGroupsGetRoles(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/groups/7/roles", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"groupId": 7,
			"roles": [
				{"id":1,"name":"Guest","rank":0,"memberCount":0},
				{"id":2,"name":"Member","rank":1,"memberCount":999},
				{"id":3,"name":"Owner","rank":255,"memberCount":1}
			]
		}`))
	}))

	roles, err := client.Groups().GetRoles(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, roles, 3)
	assert.Equal(t, "Owner", roles[2].Name)
	assert.Equal(t, 255, roles[2].Rank)
}

func TestGroupsListMembers(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/groups/7/users", r.URL.Path)
		assert.Equal(t, "Desc", r.URL.Query().Get("sortOrder"))

		_, _ = w.Write([]byte(`{
			"previousPageCursor": null,
			"nextPageCursor": "next",
			"data": [{
				"user": {"id":156,"name":"builderman","displayName":"builderman"},
				"role": {"id":3,"name":"Owner","rank":255}
			}]
		}`))
	}))

	page, err := client.Groups().ListMembers(context.Background(), 7,
		rbx.NewQueryParams().WithSortOrder(rbx.SortDescending))
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "builderman", page.Data[0].User.Name)
	assert.Equal(t, "Owner", page.Data[0].Role.Name)
	assert.True(t, page.HasNext())
}

func TestGroupsGetUserRoles(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/156/groups/roles", r.URL.Path)

		_, _ = w.Write([]byte(`{"data":[{
			"group": {"id":7,"name":"Official Group of Roblox","memberCount":1000000},
			"role": {"id":3,"name":"Owner","rank":255}
		}]}`))
	}))

	memberships, err := client.Groups().GetUserRoles(context.Background(), 156)
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	assert.Equal(t, int64(7), memberships[0].Group.ID)
	assert.Equal(t, 255, memberships[0].Role.Rank)
}

func TestGroupsSearch(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/groups/search", r.URL.Path)
		assert.Equal(t, "official", r.URL.Query().Get("keyword"))

		_, _ = w.Write([]byte(`{
			"previousPageCursor": null,
			"nextPageCursor": null,
			"data": [{"id":7,"name":"Official Group of Roblox","memberCount":1000000}]
		}`))
	}))

	page, err := client.Groups().Search(context.Background(), "official", nil)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(7), page.Data[0].ID)
}
