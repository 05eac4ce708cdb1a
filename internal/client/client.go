// Package client implements the rbx.Client interface on top of the
// internal HTTP transport, one resource client per Roblox API subdomain.
package client

import (
	"fmt"

	"github.com/rbxweb/rbxweb/internal/auth"
	"github.com/rbxweb/rbxweb/internal/constants"
	"github.com/rbxweb/rbxweb/internal/http"
	"github.com/rbxweb/rbxweb/pkg/rbx"
)

// Client implements the rbx.Client interface.
type Client struct {
	httpClient *http.Client
	baseDomain string
	logger     rbx.Logger

	// Resource clients
	users      rbx.UsersClient
	groups     rbx.GroupsClient
	assets     rbx.AssetsClient
	badges     rbx.BadgesClient
	presence   rbx.PresenceClient
	thumbnails rbx.ThumbnailsClient
	economy    rbx.EconomyClient
	friends    rbx.FriendsClient
}

// loggerAdapter bridges rbx.Logger to the HTTP layer's logger interface.
type loggerAdapter struct {
	logger rbx.Logger
}

func (a *loggerAdapter) Debug(msg string, fields map[string]interface{}) { a.logger.Debug(msg, fields) }
func (a *loggerAdapter) Info(msg string, fields map[string]interface{})  { a.logger.Info(msg, fields) }
func (a *loggerAdapter) Warn(msg string, fields map[string]interface{})  { a.logger.Warn(msg, fields) }
func (a *loggerAdapter) Error(msg string, fields map[string]interface{}) { a.logger.Error(msg, fields) }

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *rbx.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Cache != nil {
		cache, err := rbx.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("building response cache: %w", err)
		}

		ttl := constants.DefaultCacheTTL
		if config.Cache.Options != nil && config.Cache.Options.DefaultTTL > 0 {
			ttl = config.Cache.Options.DefaultTTL
		}

		httpOpts = append(httpOpts, http.WithCache(cache, ttl))
	}

	return httpOpts, nil
}

// New creates a new Roblox API client.
func New(config *rbx.Config) (*Client, error) {
	if config == nil {
		return nil, rbx.ErrConfigRequired
	}

	if config.BaseDomain == "" {
		return nil, rbx.ErrBaseDomainRequired
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	cookies := auth.NewStaticCookieProvider(config.Cookie)
	httpClient := http.NewClient(config.BaseDomain, cookies, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseDomain: config.BaseDomain,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients wires up one client per subdomain.
func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c.httpClient)
	c.groups = NewGroupsClient(c.httpClient)
	c.assets = NewAssetsClient(c.httpClient)
	c.badges = NewBadgesClient(c.httpClient)
	c.presence = NewPresenceClient(c.httpClient)
	c.thumbnails = NewThumbnailsClient(c.httpClient)
	c.economy = NewEconomyClient(c.httpClient)
	c.friends = NewFriendsClient(c.httpClient)
}

// Users implements rbx.Client.Users.
func (c *Client) Users() rbx.UsersClient { return c.users }

// Groups implements rbx.Client.Groups.
func (c *Client) Groups() rbx.GroupsClient { return c.groups }

// Assets implements rbx.Client.Assets.
func (c *Client) Assets() rbx.AssetsClient { return c.assets }

// Badges implements rbx.Client.Badges.
func (c *Client) Badges() rbx.BadgesClient { return c.badges }

// Presence implements rbx.Client.Presence.
func (c *Client) Presence() rbx.PresenceClient { return c.presence }

// Thumbnails implements rbx.Client.Thumbnails.
func (c *Client) Thumbnails() rbx.ThumbnailsClient { return c.thumbnails }

// Economy implements rbx.Client.Economy.
func (c *Client) Economy() rbx.EconomyClient { return c.economy }

// Friends implements rbx.Client.Friends.
func (c *Client) Friends() rbx.FriendsClient { return c.friends }
