// Package http implements the transport layer for the Roblox web API:
// a retrying HTTP client with session-cookie authentication and transparent
// X-CSRF-Token handling, plus a diagnostic fetcher for connectivity triage.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/rbxweb/rbxweb/internal/auth"
	"github.com/rbxweb/rbxweb/internal/constants"
	"github.com/rbxweb/rbxweb/pkg/rbx"
)

// Logger interface for HTTP layer logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method    string
	Subdomain string
	Path      string
	Query     url.Values
	Body      interface{}
	Headers   map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP client all resource clients share. It routes requests
// to the per-service Roblox subdomains, retries transient failures, and
// performs the CSRF token handshake on state-changing requests.
type Client struct {
	base       string
	singleHost bool
	retryable  *retryablehttp.Client
	cookies    auth.CookieProvider
	csrf       *auth.CSRFStore
	userAgent  string
	referer    string
	logger     Logger
	debug      bool
	cache      rbx.Cache
	cacheTTL   time.Duration
}

// Option configures the Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes the retry behavior for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryable.RetryMax = retryMax
		c.retryable.RetryWaitMin = waitMin
		c.retryable.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per-request timeout of the underlying client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryable.HTTPClient.Timeout = timeout
	}
}

// WithHTTPClient swaps the underlying net/http client (custom transports,
// proxies).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.retryable.HTTPClient = httpClient
	}
}

// WithCache enables response caching for GET requests.
func WithCache(cache rbx.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// NewClient creates a new API client.
//
// base is normally an apex domain like "roblox.com", with requests routed to
// "https://<subdomain>.<base>". If base carries a scheme (as httptest server
// URLs do), subdomain routing is disabled and paths are resolved against the
// URL directly.
func NewClient(base string, cookies auth.CookieProvider, opts ...Option) *Client {
	retryable := retryablehttp.NewClient()
	retryable.RetryMax = constants.DefaultRetryMax
	retryable.RetryWaitMin = constants.DefaultRetryWaitMin
	retryable.RetryWaitMax = constants.DefaultRetryWaitMax
	retryable.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryable.Logger = nil
	retryable.CheckRetry = checkRetry

	client := &Client{
		base:       strings.TrimSuffix(base, "/"),
		singleHost: strings.Contains(base, "://"),
		retryable:  retryable,
		cookies:    cookies,
		csrf:       auth.NewCSRFStore(),
		userAgent:  constants.DefaultUserAgent,
		referer:    constants.DefaultReferer,
		cacheTTL:   constants.DefaultCacheTTL,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// checkRetry retries transport errors, 429, and 5xx. 4xx responses are
// authoritative answers from the API and are never retried.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return true, nil
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return true, nil
	}

	return false, nil
}

// URL resolves a request against the configured base domain.
func (c *Client) URL(subdomain, path string) string {
	if c.singleHost {
		return c.base + path
	}

	if subdomain == "" {
		subdomain = "www"
	}

	return fmt.Sprintf("https://%s.%s%s", subdomain, c.base, path)
}

// mutating reports whether the method participates in the CSRF handshake.
func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// Do executes a request and returns the response. Responses with status
// >= 400 are returned together with a *rbx.ResponseError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.URL(req.Subdomain, req.Path)
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	if req.Method == http.MethodGet && c.cache != nil {
		if entry, err := c.cache.Get(ctx, fullURL); err == nil {
			return &Response{StatusCode: http.StatusOK, Body: entry.Data}, nil
		}
	}

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	resp, err := c.send(ctx, req, fullURL, bodyBytes)
	if err != nil {
		return nil, err
	}

	// CSRF handshake: Roblox rejects the first state-changing request with
	// 403 and hands the token back in a response header. Store it and
	// replay once.
	if mutating(req.Method) {
		token := resp.Headers.Get(constants.CSRFTokenHeader)
		c.csrf.Set(token)

		if resp.StatusCode == http.StatusForbidden && token != "" {
			resp, err = c.send(ctx, req, fullURL, bodyBytes)
			if err != nil {
				return nil, err
			}
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode >= http.StatusBadRequest {
		errResp, parseErr := rbx.ParseResponseError(resp.StatusCode, resp.Body)
		if parseErr != nil {
			errResp = &rbx.ResponseError{StatusCode: resp.StatusCode}
		}

		return resp, errResp
	}

	if req.Method == http.MethodGet && c.cache != nil && resp.StatusCode == http.StatusOK {
		_ = c.cache.Set(ctx, fullURL, &rbx.CacheEntry{
			Data:      resp.Body,
			ExpiresAt: time.Now().Add(c.cacheTTL),
			ETag:      resp.Headers.Get("ETag"),
		})
	}

	return resp, nil
}

// send performs a single logical exchange (retryablehttp handles transient
// retries underneath).
func (c *Client) send(ctx context.Context, req *Request, fullURL string, bodyBytes []byte) (*Response, error) {
	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Referer", c.referer)

	if bodyBytes != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.cookies != nil {
		cookie, err := c.cookies.GetCookie(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting session cookie: %w", err)
		}

		if cookie != "" {
			httpReq.AddCookie(&http.Cookie{Name: constants.SecurityCookieName, Value: cookie})
		}
	}

	if token := c.csrf.Get(); token != "" && mutating(req.Method) {
		httpReq.Header.Set(constants.CSRFTokenHeader, token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	httpResp, err := c.retryable.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, subdomain, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Subdomain: subdomain, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, subdomain, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Subdomain: subdomain, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, subdomain, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Subdomain: subdomain, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, subdomain, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Subdomain: subdomain, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, subdomain, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Subdomain: subdomain, Path: path})
}
