package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbxweb/rbxweb/pkg/rbx"
)

func TestUsersGet(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/users/1", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"id": 1,
			"name": "Roblox",
			"displayName": "Roblox",
			"description": "Official",
			"created": "2006-02-27T21:06:40.3Z",
			"isBanned": false,
			"hasVerifiedBadge": true
		}`))
	}))

	user, err := client.Users().Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Roblox", user.Name)
	assert.True(t, user.HasVerifiedBadge)
	assert.False(t, user.IsBanned)
}

func TestUsersGetNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"code":3,"message":"The user id is invalid."}]}`))
	}))

	_, err := client.Users().Get(context.Background(), 999999999999)
	require.Error(t, err)
	assert.True(t, rbx.IsNotFound(err))
	assert.Contains(t, err.Error(), "The user id is invalid.")
}

func TestUsersGetAuthenticated(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/authenticated", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":42,"name":"builderman","displayName":"builderman"}`))
	}))

	user, err := client.Users().GetAuthenticated(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "builderman", user.Name)
}

func TestUsersGetByUsernames(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/usernames/users", r.URL.Path)

		var body struct {
			Usernames          []string `json:"usernames"`
			ExcludeBannedUsers bool     `json:"excludeBannedUsers"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"Roblox", "builderman"}, body.Usernames)
		assert.True(t, body.ExcludeBannedUsers)

		_, _ = w.Write([]byte(`{"data":[
			{"requestedUsername":"Roblox","id":1,"name":"Roblox","displayName":"Roblox"},
			{"requestedUsername":"builderman","id":156,"name":"builderman","displayName":"builderman"}
		]}`))
	}))

	users, err := client.Users().GetByUsernames(context.Background(), []string{"Roblox", "builderman"}, true)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Roblox", users[0].RequestedUsername)
	assert.Equal(t, int64(156), users[1].ID)
}

func TestUsersGetByIDs(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/users", r.URL.Path)

		_, _ = w.Write([]byte(`{"data":[{"id":1,"name":"Roblox","displayName":"Roblox"}]}`))
	}))

	users, err := client.Users().GetByIDs(context.Background(), []int64{1}, false)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(1), users[0].ID)
}

func TestUsersSearch(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/search", r.URL.Path)
		assert.Equal(t, "builder", r.URL.Query().Get("keyword"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`{
			"previousPageCursor": null,
			"nextPageCursor": "cursor-2",
			"data": [{"id":156,"name":"builderman","displayName":"builderman"}]
		}`))
	}))

	page, err := client.Users().Search(context.Background(), "builder", rbx.NewQueryParams().WithLimit(10))
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.True(t, page.HasNext())
	assert.Equal(t, "builderman", page.Data[0].Name)
}

func TestUsersUsernameHistory(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/156/username-history", r.URL.Path)

		_, _ = w.Write([]byte(`{"previousPageCursor":null,"nextPageCursor":null,"data":[{"name":"olduser"}]}`))
	}))

	page, err := client.Users().UsernameHistory(context.Background(), 156, nil)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "olduser", page.Data[0].Name)
	assert.False(t, page.HasNext())
}
