package http_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rbxhttp "github.com/rbxweb/rbxweb/internal/http"
)

// noSleep skips backoff pauses so retry loops run instantly.
func noSleep(ctx context.Context, d time.Duration) error {
	return ctx.Err()
}

type stubProber struct {
	verdict rbxhttp.Verdict
	err     error
	calls   int
}

func (p *stubProber) Probe(ctx context.Context, url string, headers map[string]string) (rbxhttp.Verdict, error) {
	p.calls++
	return p.verdict, p.err
}

// deadURL returns the address of a listener that has already been closed,
// so every connection attempt is refused immediately.
func deadURL(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	url := "http://" + listener.Addr().String() + "/"
	require.NoError(t, listener.Close())

	return url
}

func countingServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, func() int) {
	t.Helper()

	var mu sync.Mutex

	var calls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()

		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return server, func() int {
		mu.Lock()
		defer mu.Unlock()

		return calls
	}
}

func TestVariants(t *testing.T) {
	t.Parallel()

	verifying := rbxhttp.RequestDescriptor{URL: "https://users.roblox.com/", VerifyTLS: true}

	variants := rbxhttp.Variants(verifying)
	require.Len(t, variants, 2)
	assert.True(t, variants[0].VerifyTLS)
	assert.False(t, variants[1].VerifyTLS)
	assert.Equal(t, verifying.URL, variants[1].URL)

	insecure := rbxhttp.RequestDescriptor{URL: "https://users.roblox.com/", VerifyTLS: false}
	require.Len(t, rbxhttp.Variants(insecure), 1)
}

func TestFetchSuccessFirstAttempt(t *testing.T) {
	t.Parallel()

	server, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Roblox/WinInet", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("ok"))
	})

	fetcher := rbxhttp.NewFetcher(
		rbxhttp.RetryPolicy{MaxAttempts: 3, Backoff: time.Second},
		rbxhttp.WithSleep(noSleep))

	outcome := fetcher.Fetch(context.Background(), rbxhttp.RequestDescriptor{
		URL:       server.URL,
		Headers:   map[string]string{"User-Agent": "Roblox/WinInet"},
		VerifyTLS: true,
	})

	assert.Equal(t, rbxhttp.OutcomeSuccess, outcome.Kind)
	assert.Equal(t, http.StatusOK, outcome.StatusCode)
	assert.Equal(t, "ok", string(outcome.Body))
	// A first-attempt success never touches the skip-verification variant.
	assert.Equal(t, 1, outcome.Attempts)
	assert.Equal(t, 1, calls())
}

func TestFetchHTTPErrorNotRetried(t *testing.T) {
	t.Parallel()

	server, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	})

	fetcher := rbxhttp.NewFetcher(
		rbxhttp.RetryPolicy{MaxAttempts: 3, Backoff: time.Second},
		rbxhttp.WithSleep(noSleep))

	outcome := fetcher.Fetch(context.Background(), rbxhttp.RequestDescriptor{URL: server.URL, VerifyTLS: true})

	assert.Equal(t, rbxhttp.OutcomeHTTPError, outcome.Kind)
	assert.Equal(t, http.StatusNotFound, outcome.StatusCode)
	assert.Equal(t, "missing", string(outcome.Body))
	assert.Equal(t, 1, outcome.Attempts)
	assert.Equal(t, 1, calls())
}

func TestFetchExhaustsBothVariantGroups(t *testing.T) {
	t.Parallel()

	var sleeps []time.Duration

	recordSleep := func(ctx context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return ctx.Err()
	}

	fetcher := rbxhttp.NewFetcher(
		rbxhttp.RetryPolicy{MaxAttempts: 2, Backoff: 250 * time.Millisecond},
		rbxhttp.WithSleep(recordSleep))

	outcome := fetcher.Fetch(context.Background(), rbxhttp.RequestDescriptor{
		URL:       deadURL(t),
		Timeout:   time.Second,
		VerifyTLS: true,
	})

	assert.Equal(t, rbxhttp.OutcomeExhaustedRetries, outcome.Kind)
	require.Error(t, outcome.Err)
	// Two attempts per TLS-mode group, verify-true first.
	assert.Equal(t, 4, outcome.Attempts)
	// Backoff between attempts but not after the final one.
	assert.Equal(t, []time.Duration{250 * time.Millisecond, 250 * time.Millisecond, 250 * time.Millisecond}, sleeps)
}

func TestFetchFallsBackToSkipVerify(t *testing.T) {
	t.Parallel()

	// A self-signed server fails the verifying group at the TLS layer and
	// only the fallback group reaches the handler.
	var mu sync.Mutex

	var handled int

	tlsServer := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		handled++
		mu.Unlock()

		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(tlsServer.Close)

	fetcher := rbxhttp.NewFetcher(
		rbxhttp.RetryPolicy{MaxAttempts: 2, Backoff: time.Millisecond},
		rbxhttp.WithSleep(noSleep))

	outcome := fetcher.Fetch(context.Background(), rbxhttp.RequestDescriptor{
		URL:       tlsServer.URL,
		Timeout:   5 * time.Second,
		VerifyTLS: true,
	})

	assert.Equal(t, rbxhttp.OutcomeSuccess, outcome.Kind)
	assert.Equal(t, "ok", string(outcome.Body))
	// Two failed verifying attempts, then the first fallback attempt lands.
	assert.Equal(t, 3, outcome.Attempts)

	mu.Lock()
	assert.Equal(t, 1, handled)
	mu.Unlock()
}

func TestFetchPreflightDownShortCircuits(t *testing.T) {
	t.Parallel()

	server, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	prober := &stubProber{verdict: rbxhttp.VerdictDown}
	fetcher := rbxhttp.NewFetcher(
		rbxhttp.RetryPolicy{MaxAttempts: 3, Backoff: time.Second},
		rbxhttp.WithProber(prober),
		rbxhttp.WithSleep(noSleep))

	outcome := fetcher.Fetch(context.Background(), rbxhttp.RequestDescriptor{URL: server.URL, VerifyTLS: true})

	assert.Equal(t, rbxhttp.OutcomePreflightFailed, outcome.Kind)
	require.Error(t, outcome.Err)
	assert.Equal(t, 0, outcome.Attempts)
	assert.Equal(t, 0, calls())
	assert.Equal(t, 1, prober.calls)
}

func TestFetchPreflightUpProceeds(t *testing.T) {
	t.Parallel()

	server, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	fetcher := rbxhttp.NewFetcher(
		rbxhttp.RetryPolicy{MaxAttempts: 1, Backoff: time.Second},
		rbxhttp.WithProber(&stubProber{verdict: rbxhttp.VerdictUp}),
		rbxhttp.WithSleep(noSleep))

	outcome := fetcher.Fetch(context.Background(), rbxhttp.RequestDescriptor{URL: server.URL, VerifyTLS: true})

	assert.Equal(t, rbxhttp.OutcomeSuccess, outcome.Kind)
	assert.Equal(t, 1, calls())
}

func TestFetchPreflightErrorShortCircuits(t *testing.T) {
	t.Parallel()

	server, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	fetcher := rbxhttp.NewFetcher(
		rbxhttp.RetryPolicy{MaxAttempts: 1, Backoff: time.Second},
		rbxhttp.WithProber(&stubProber{err: assert.AnError}),
		rbxhttp.WithSleep(noSleep))

	outcome := fetcher.Fetch(context.Background(), rbxhttp.RequestDescriptor{URL: server.URL, VerifyTLS: true})

	assert.Equal(t, rbxhttp.OutcomePreflightFailed, outcome.Kind)
	assert.ErrorIs(t, outcome.Err, assert.AnError)
	assert.Equal(t, 0, calls())
}

func TestFetchCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := rbxhttp.NewFetcher(rbxhttp.RetryPolicy{MaxAttempts: 3, Backoff: time.Second})

	outcome := fetcher.Fetch(ctx, rbxhttp.RequestDescriptor{URL: deadURL(t), VerifyTLS: true})

	assert.Equal(t, rbxhttp.OutcomeExhaustedRetries, outcome.Kind)
	require.Error(t, outcome.Err)
	assert.Equal(t, 1, outcome.Attempts)
}

func TestOutcomeKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "success", rbxhttp.OutcomeSuccess.String())
	assert.Equal(t, "http error", rbxhttp.OutcomeHTTPError.String())
	assert.Equal(t, "preflight failed", rbxhttp.OutcomePreflightFailed.String())
	assert.Equal(t, "exhausted retries", rbxhttp.OutcomeExhaustedRetries.String())
}
