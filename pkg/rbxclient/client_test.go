package rbxclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbxweb/rbxweb/pkg/rbx"
)

func TestNormalizeBaseDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty defaults", input: "", expected: "roblox.com"},
		{name: "apex passes through", input: "roblox.com", expected: "roblox.com"},
		{name: "scheme stripped", input: "https://roblox.com", expected: "roblox.com"},
		{name: "www stripped", input: "www.roblox.com", expected: "roblox.com"},
		{name: "scheme and www stripped", input: "https://www.roblox.com/", expected: "roblox.com"},
		{name: "trailing slash trimmed", input: "roblox.com/", expected: "roblox.com"},
		{name: "test server URL untouched", input: "http://127.0.0.1:8080", expected: "http://127.0.0.1:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, normalizeBaseDomain(tt.input))
		})
	}
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	client, err := New(nil)
	require.NoError(t, err)
	assert.NotNil(t, client.Users())
	assert.NotNil(t, client.Groups())
}

func TestNewAuthenticatedRequiresCookie(t *testing.T) {
	t.Parallel()

	_, _, err := NewAuthenticated(context.Background(), &rbx.Config{})
	assert.ErrorIs(t, err, rbx.ErrNoCookieConfigured)
}

func TestNewAuthenticatedVerifiesCookie(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/users/authenticated", r.URL.Path)

		cookie, err := r.Cookie(".ROBLOSECURITY")
		require.NoError(t, err)

		if cookie.Value != "valid" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errors":[{"code":0,"message":"Authorization has been denied for this request."}]}`))

			return
		}

		_, _ = w.Write([]byte(`{"id":42,"name":"builderman","displayName":"builderman"}`))
	}))
	defer server.Close()

	client, user, err := NewAuthenticated(context.Background(), &rbx.Config{
		BaseDomain: server.URL,
		Cookie:     "valid",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, "builderman", user.Name)

	_, _, err = NewAuthenticated(context.Background(), &rbx.Config{
		BaseDomain: server.URL,
		Cookie:     "expired",
	})
	require.Error(t, err)
	assert.True(t, rbx.IsUnauthorized(err))
}
