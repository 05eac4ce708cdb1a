package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rbxweb/rbxweb/internal/constants"
)

// RequestDescriptor is one configuration of a diagnostic GET: the target,
// the header set sent with it, the per-attempt timeout, and whether the
// server certificate is validated. Descriptors are value types and never
// mutated by the fetcher.
type RequestDescriptor struct {
	URL       string
	Headers   map[string]string
	Timeout   time.Duration
	VerifyTLS bool
}

// RetryPolicy controls the attempt budget per descriptor variant and the
// fixed pause between attempts.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// OutcomeKind classifies the terminal result of a fetch.
type OutcomeKind int

const (
	// OutcomeSuccess is a 2xx response.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeHTTPError is a definitive non-2xx response. The server
	// answered, so the attempt is never retried.
	OutcomeHTTPError
	// OutcomePreflightFailed means the liveness probe reported the server
	// down and no primary attempt was made.
	OutcomePreflightFailed
	// OutcomeExhaustedRetries means every attempt across every descriptor
	// variant failed at the transport level.
	OutcomeExhaustedRetries
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeHTTPError:
		return "http error"
	case OutcomePreflightFailed:
		return "preflight failed"
	case OutcomeExhaustedRetries:
		return "exhausted retries"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a Fetch. Attempts counts primary-path
// requests actually issued, across all variants.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Body       []byte
	Attempts   int
	Err        error
}

// Fetcher issues diagnostic GETs with retries, TLS-mode fallback, and an
// optional preflight liveness probe. It holds no per-request state and is
// safe for reuse across invocations.
type Fetcher struct {
	policy RetryPolicy
	prober Prober
	logger Logger
	sleep  func(context.Context, time.Duration) error
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithProber installs a liveness probe run before the primary path.
func WithProber(prober Prober) FetcherOption {
	return func(f *Fetcher) {
		f.prober = prober
	}
}

// WithFetcherLogger sets the logger for per-attempt diagnostics.
func WithFetcherLogger(logger Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithSleep replaces the backoff sleep. Tests inject a no-op to run the
// retry loop without waiting.
func WithSleep(sleep func(context.Context, time.Duration) error) FetcherOption {
	return func(f *Fetcher) {
		f.sleep = sleep
	}
}

// NewFetcher creates a Fetcher with the given retry policy. MaxAttempts
// below 1 is treated as 1.
func NewFetcher(policy RetryPolicy, opts ...FetcherOption) *Fetcher {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}

	fetcher := &Fetcher{
		policy: policy,
		sleep:  sleepContext,
	}

	for _, opt := range opts {
		opt(fetcher)
	}

	return fetcher
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Variants expands a descriptor into the ordered list of configurations the
// fetcher will try. A verifying descriptor is followed by its
// skip-verification twin so certificate problems can be told apart from a
// down server; the verifying group is fully exhausted before the fallback
// group begins.
func Variants(desc RequestDescriptor) []RequestDescriptor {
	if !desc.VerifyTLS {
		return []RequestDescriptor{desc}
	}

	fallback := desc
	fallback.VerifyTLS = false

	return []RequestDescriptor{desc, fallback}
}

// Fetch runs the preflight probe (when configured) and then works through
// the descriptor's variants, giving each one the policy's full attempt
// budget. The returned Outcome is always terminal; no error escapes as a
// bare return.
func (f *Fetcher) Fetch(ctx context.Context, desc RequestDescriptor) Outcome {
	if f.prober != nil {
		verdict, err := f.prober.Probe(ctx, desc.URL, desc.Headers)
		if err != nil {
			return Outcome{Kind: OutcomePreflightFailed, Err: err}
		}

		if verdict == VerdictDown {
			return Outcome{
				Kind: OutcomePreflightFailed,
				Err:  fmt.Errorf("preflight probe reported %s down", desc.URL),
			}
		}

		if f.logger != nil {
			f.logger.Debug("Preflight probe passed", map[string]interface{}{
				"url":     desc.URL,
				"verdict": verdict.String(),
			})
		}
	}

	return f.FetchVariants(ctx, Variants(desc))
}

// FetchVariants runs the primary path over an explicit ordered variant
// list, skipping the preflight probe.
func (f *Fetcher) FetchVariants(ctx context.Context, variants []RequestDescriptor) Outcome {
	attempts := 0

	var lastErr error

	for vi, variant := range variants {
		client := clientFor(variant)

		for attempt := 1; attempt <= f.policy.MaxAttempts; attempt++ {
			attempts++

			statusCode, body, err := f.attempt(ctx, client, variant)
			if err == nil {
				if statusCode >= 200 && statusCode < 300 {
					return Outcome{Kind: OutcomeSuccess, StatusCode: statusCode, Body: body, Attempts: attempts}
				}

				// The server answered. Retrying cannot change its mind.
				return Outcome{Kind: OutcomeHTTPError, StatusCode: statusCode, Body: body, Attempts: attempts}
			}

			lastErr = err

			if f.logger != nil {
				f.logger.Debug("Fetch attempt failed", map[string]interface{}{
					"url":        variant.URL,
					"verify_tls": variant.VerifyTLS,
					"attempt":    attempt,
					"error":      err.Error(),
				})
			}

			final := vi == len(variants)-1 && attempt == f.policy.MaxAttempts
			if !final {
				if err := f.sleep(ctx, f.policy.Backoff); err != nil {
					return Outcome{Kind: OutcomeExhaustedRetries, Attempts: attempts, Err: err}
				}
			}
		}
	}

	return Outcome{Kind: OutcomeExhaustedRetries, Attempts: attempts, Err: lastErr}
}

// attempt issues one GET. Any error return is a transport-level failure.
func (f *Fetcher) attempt(ctx context.Context, client *http.Client, desc RequestDescriptor) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, desc.URL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}

	for key, value := range desc.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response body: %w", err)
	}

	return resp.StatusCode, body, nil
}

// clientFor builds a client matching one descriptor variant. Each variant
// owns its own transport so TLS settings never leak across groups.
func clientFor(desc RequestDescriptor) *http.Client {
	timeout := desc.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: !desc.VerifyTLS, //nolint:gosec // deliberate fallback variant
			},
		},
	}
}
