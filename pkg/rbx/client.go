package rbx

import (
	"context"
	"time"
)

// UsersClient provides access to users.roblox.com.
type UsersClient interface {
	Get(ctx context.Context, userID int64) (*User, error)
	GetAuthenticated(ctx context.Context) (*AuthenticatedUser, error)
	GetByUsernames(ctx context.Context, usernames []string, excludeBanned bool) ([]RequestedUser, error)
	GetByIDs(ctx context.Context, userIDs []int64, excludeBanned bool) ([]SkinnyUser, error)
	Search(ctx context.Context, keyword string, params *QueryParams) (*Page[SkinnyUser], error)
	UsernameHistory(ctx context.Context, userID int64, params *QueryParams) (*Page[UsernameRecord], error)
}

// GroupsClient provides access to groups.roblox.com.
type GroupsClient interface {
	Get(ctx context.Context, groupID int64) (*Group, error)
	GetRoles(ctx context.Context, groupID int64) ([]GroupRole, error)
	ListMembers(ctx context.Context, groupID int64, params *QueryParams) (*Page[GroupMember], error)
	GetUserRoles(ctx context.Context, userID int64) ([]GroupMembership, error)
	Search(ctx context.Context, keyword string, params *QueryParams) (*Page[GroupSearchResult], error)
}

// AssetsClient provides access to asset details and inventories.
type AssetsClient interface {
	GetDetails(ctx context.Context, assetID int64) (*AssetDetails, error)
	ListInventory(ctx context.Context, userID int64, assetType string, params *QueryParams) (*Page[InventoryItem], error)
}

// BadgesClient provides access to badges.roblox.com.
type BadgesClient interface {
	Get(ctx context.Context, badgeID int64) (*Badge, error)
	ListForUser(ctx context.Context, userID int64, params *QueryParams) (*Page[Badge], error)
	ListForUniverse(ctx context.Context, universeID int64, params *QueryParams) (*Page[Badge], error)
}

// PresenceClient provides access to presence.roblox.com.
type PresenceClient interface {
	GetForUsers(ctx context.Context, userIDs []int64) ([]Presence, error)
	LastOnline(ctx context.Context, userIDs []int64) ([]LastOnline, error)
}

// ThumbnailsClient provides access to thumbnails.roblox.com.
type ThumbnailsClient interface {
	AvatarHeadshots(ctx context.Context, userIDs []int64, size ThumbnailSize, format ThumbnailFormat) ([]Thumbnail, error)
	AssetThumbnails(ctx context.Context, assetIDs []int64, size ThumbnailSize, format ThumbnailFormat) ([]Thumbnail, error)
}

// EconomyClient provides access to economy.roblox.com.
type EconomyClient interface {
	CurrencyBalance(ctx context.Context, userID int64) (*CurrencyBalance, error)
	ResaleData(ctx context.Context, assetID int64) (*ResaleData, error)
}

// FriendsClient provides access to friends.roblox.com.
type FriendsClient interface {
	List(ctx context.Context, userID int64) ([]Friend, error)
	Count(ctx context.Context, userID int64) (int64, error)
	Followers(ctx context.Context, userID int64, params *QueryParams) (*Page[Friend], error)
	Following(ctx context.Context, userID int64, params *QueryParams) (*Page[Friend], error)
}

// Client is the full Roblox web API client surface.
type Client interface {
	Users() UsersClient
	Groups() GroupsClient
	Assets() AssetsClient
	Badges() BadgesClient
	Presence() PresenceClient
	Thumbnails() ThumbnailsClient
	Economy() EconomyClient
	Friends() FriendsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a rbx.Client.
//
// # Authentication
//
// Roblox's web API authenticates with the .ROBLOSECURITY session cookie.
// Read-only endpoints (user lookup, group info, badges) work without one;
// anything touching the authenticated account (economy, inventory writes)
// requires it. The transport also transparently handles the X-CSRF-Token
// dance: when a state-changing request is rejected with 403 and a fresh
// token header, the request is replayed once with the token attached.
//
// # Timeouts, retries, and TLS
//
// Per-request timeouts should generally be controlled via context passed to
// client methods. Retry behavior can be tuned via RetryMax/RetryWaitMin/
// RetryWaitMax; 429 and 5xx responses and transport failures are retried,
// 4xx responses are authoritative and are not.
type Config struct {
	// BaseDomain: apex domain the API subdomains hang off. Defaults to
	// "roblox.com"; rbxclient.New strips a scheme or "www." prefix if one
	// is supplied.
	BaseDomain string

	// Cookie: the .ROBLOSECURITY session cookie value. Optional for
	// read-only use.
	Cookie string

	// HTTPTimeout: optional default HTTP timeout where supported. Most
	// client calls should rely on context timeouts.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500,
	// 429, and connection errors). If 0, a sensible default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header ("Roblox/WinInet",
	// which some endpoints require).
	UserAgent string
	// Cache: optional response cache configuration for GET requests.
	Cache *CacheConfig
}
