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

func TestPresenceGetForUsers(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/presence/users", r.URL.Path)

		var body struct {
			UserIDs []int64 `json:"userIds"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []int64{1, 156}, body.UserIDs)

		_, _ = w.Write([]byte(`{"userPresences":[
			{"userPresenceType":0,"lastLocation":"Website","userId":1},
			{"userPresenceType":2,"lastLocation":"Crossroads","placeId":1818,"userId":156}
		]}`))
	}))

	presences, err := client.Presence().GetForUsers(context.Background(), []int64{1, 156})
	require.NoError(t, err)
	require.Len(t, presences, 2)
	assert.Equal(t, rbx.PresenceOffline, presences[0].UserPresenceType)
	assert.Equal(t, rbx.PresenceInGame, presences[1].UserPresenceType)
	require.NotNil(t, presences[1].PlaceID)
	assert.Equal(t, int64(1818), *presences[1].PlaceID)
}

func TestPresenceLastOnline(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/presence/last-online", r.URL.Path)

		_, _ = w.Write([]byte(`{"lastOnlineTimestamps":[
			{"userId":156,"lastOnline":"2024-03-01T12:00:00Z"}
		]}`))
	}))

	timestamps, err := client.Presence().LastOnline(context.Background(), []int64{156})
	require.NoError(t, err)
	require.Len(t, timestamps, 1)
	assert.Equal(t, int64(156), timestamps[0].UserID)
	assert.Equal(t, 2024, timestamps[0].LastOnline.Year())
}
