package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rbxweb/rbxweb/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCookieProvider(t *testing.T) {
	t.Parallel()

	provider := auth.NewStaticCookieProvider("initial")

	cookie, err := provider.GetCookie(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "initial", cookie)

	provider.SetCookie("rotated")

	cookie, err = provider.GetCookie(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rotated", cookie)
}

func TestEnvCookieProvider(t *testing.T) {
	t.Setenv("RBX_TEST_COOKIE", "  from-env \n")

	provider := &auth.EnvCookieProvider{Key: "RBX_TEST_COOKIE"}

	cookie, err := provider.GetCookie(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-env", cookie)
}

func TestCSRFStore(t *testing.T) {
	t.Parallel()

	store := auth.NewCSRFStore()
	assert.Empty(t, store.Get())

	store.Set("token-1")
	assert.Equal(t, "token-1", store.Get())

	// Empty values never clear a held token
	store.Set("")
	assert.Equal(t, "token-1", store.Get())

	store.Set("token-2")
	assert.Equal(t, "token-2", store.Get())
}

func TestCSRFStore_Concurrent(t *testing.T) {
	t.Parallel()

	store := auth.NewCSRFStore()

	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			store.Set("token")
			_ = store.Get()
		}()
	}

	wg.Wait()
	assert.Equal(t, "token", store.Get())
}
