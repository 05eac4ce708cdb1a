package rbx

import (
	"time"
)

// User represents a full user profile from users.roblox.com/v1/users/{id}.
type User struct {
	ID                     int64     `json:"id"                     yaml:"id"`
	Name                   string    `json:"name"                   yaml:"name"`
	DisplayName            string    `json:"displayName"            yaml:"displayName"`
	Description            string    `json:"description"            yaml:"description"`
	Created                time.Time `json:"created"                yaml:"created"`
	IsBanned               bool      `json:"isBanned"               yaml:"isBanned"`
	ExternalAppDisplayName *string   `json:"externalAppDisplayName" yaml:"externalAppDisplayName"`
	HasVerifiedBadge       bool      `json:"hasVerifiedBadge"       yaml:"hasVerifiedBadge"`
}

// SkinnyUser is the reduced profile returned by search and batch lookup
// endpoints.
type SkinnyUser struct {
	ID               int64  `json:"id"               yaml:"id"`
	Name             string `json:"name"             yaml:"name"`
	DisplayName      string `json:"displayName"      yaml:"displayName"`
	HasVerifiedBadge bool   `json:"hasVerifiedBadge" yaml:"hasVerifiedBadge"`
}

// RequestedUser is a batch lookup result that echoes the requested username.
type RequestedUser struct {
	SkinnyUser `yaml:",inline"`

	RequestedUsername string `json:"requestedUsername" yaml:"requestedUsername"`
}

// AuthenticatedUser is the minimal profile of the cookie owner.
type AuthenticatedUser struct {
	ID          int64  `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	DisplayName string `json:"displayName" yaml:"displayName"`
}

// UsernameRecord is one entry of a user's username history.
type UsernameRecord struct {
	Name string `json:"name" yaml:"name"`
}

// Group represents a group from groups.roblox.com/v1/groups/{id}.
type Group struct {
	ID                 int64       `json:"id"                 yaml:"id"`
	Name               string      `json:"name"               yaml:"name"`
	Description        string      `json:"description"        yaml:"description"`
	Owner              *SkinnyUser `json:"owner"              yaml:"owner"`
	Shout              *GroupShout `json:"shout"              yaml:"shout"`
	MemberCount        int64       `json:"memberCount"        yaml:"memberCount"`
	IsBuildersClubOnly bool        `json:"isBuildersClubOnly" yaml:"isBuildersClubOnly"`
	PublicEntryAllowed bool        `json:"publicEntryAllowed" yaml:"publicEntryAllowed"`
	IsLocked           bool        `json:"isLocked"           yaml:"isLocked"`
	HasVerifiedBadge   bool        `json:"hasVerifiedBadge"   yaml:"hasVerifiedBadge"`
}

// GroupShout is the current shout of a group, if any.
type GroupShout struct {
	Body    string     `json:"body"    yaml:"body"`
	Poster  SkinnyUser `json:"poster"  yaml:"poster"`
	Created time.Time  `json:"created" yaml:"created"`
	Updated time.Time  `json:"updated" yaml:"updated"`
}

// GroupRole is one rank in a group's role ladder.
type GroupRole struct {
	ID          int64  `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Rank        int    `json:"rank"        yaml:"rank"`
	MemberCount int64  `json:"memberCount" yaml:"memberCount"`
}

// GroupMember is one entry of a group member listing.
type GroupMember struct {
	User SkinnyUser `json:"user" yaml:"user"`
	Role GroupRole  `json:"role" yaml:"role"`
}

// GroupMembership pairs a group with the role a specific user holds in it.
type GroupMembership struct {
	Group Group     `json:"group" yaml:"group"`
	Role  GroupRole `json:"role"  yaml:"role"`
}

// GroupSearchResult is the reduced group shape returned by group search.
type GroupSearchResult struct {
	ID                 int64     `json:"id"                 yaml:"id"`
	Name               string    `json:"name"               yaml:"name"`
	Description        string    `json:"description"        yaml:"description"`
	MemberCount        int64     `json:"memberCount"        yaml:"memberCount"`
	PublicEntryAllowed bool      `json:"publicEntryAllowed" yaml:"publicEntryAllowed"`
	Created            time.Time `json:"created"            yaml:"created"`
	Updated            time.Time `json:"updated"            yaml:"updated"`
}

// Creator identifies the creator of an asset (a user or a group).
type Creator struct {
	ID               int64  `json:"Id"               yaml:"id"`
	Name             string `json:"Name"             yaml:"name"`
	CreatorType      string `json:"CreatorType"      yaml:"creatorType"`
	CreatorTargetID  int64  `json:"CreatorTargetId"  yaml:"creatorTargetId"`
	HasVerifiedBadge bool   `json:"HasVerifiedBadge" yaml:"hasVerifiedBadge"`
}

// AssetDetails is the economy v2 asset details payload. The endpoint predates
// the camelCase convention, hence the PascalCase JSON keys.
type AssetDetails struct {
	TargetID            int64     `json:"TargetId"            yaml:"targetId"`
	ProductType         string    `json:"ProductType"         yaml:"productType"`
	AssetID             int64     `json:"AssetId"             yaml:"assetId"`
	ProductID           int64     `json:"ProductId"           yaml:"productId"`
	Name                string    `json:"Name"                yaml:"name"`
	Description         string    `json:"Description"         yaml:"description"`
	AssetTypeID         int       `json:"AssetTypeId"         yaml:"assetTypeId"`
	Creator             Creator   `json:"Creator"             yaml:"creator"`
	Created             time.Time `json:"Created"             yaml:"created"`
	Updated             time.Time `json:"Updated"             yaml:"updated"`
	PriceInRobux        *int64    `json:"PriceInRobux"        yaml:"priceInRobux"`
	Sales               int64     `json:"Sales"               yaml:"sales"`
	IsNew               bool      `json:"IsNew"               yaml:"isNew"`
	IsForSale           bool      `json:"IsForSale"           yaml:"isForSale"`
	IsPublicDomain      bool      `json:"IsPublicDomain"      yaml:"isPublicDomain"`
	IsLimited           bool      `json:"IsLimited"           yaml:"isLimited"`
	IsLimitedUnique     bool      `json:"IsLimitedUnique"     yaml:"isLimitedUnique"`
	Remaining           *int64    `json:"Remaining"           yaml:"remaining"`
	MinimumMembershipLevel int    `json:"MinimumMembershipLevel" yaml:"minimumMembershipLevel"`
}

// InventoryItem is one entry of a user's inventory listing.
type InventoryItem struct {
	AssetID   int64     `json:"assetId"   yaml:"assetId"`
	Name      string    `json:"name"      yaml:"name"`
	AssetType string    `json:"assetType" yaml:"assetType"`
	Created   time.Time `json:"created"   yaml:"created"`
}

// Badge represents a badge from badges.roblox.com/v1/badges/{id}.
type Badge struct {
	ID                 int64            `json:"id"                 yaml:"id"`
	Name               string           `json:"name"               yaml:"name"`
	Description        string           `json:"description"        yaml:"description"`
	DisplayName        string           `json:"displayName"        yaml:"displayName"`
	Enabled            bool             `json:"enabled"            yaml:"enabled"`
	IconImageID        int64            `json:"iconImageId"        yaml:"iconImageId"`
	Created            time.Time        `json:"created"            yaml:"created"`
	Updated            time.Time        `json:"updated"            yaml:"updated"`
	Statistics         *BadgeStatistics `json:"statistics"         yaml:"statistics"`
	AwardingUniverseID *int64           `json:"awardingUniverseId" yaml:"awardingUniverseId"`
}

// BadgeStatistics carries award counts for a badge.
type BadgeStatistics struct {
	PastDayAwardedCount int64   `json:"pastDayAwardedCount" yaml:"pastDayAwardedCount"`
	AwardedCount        int64   `json:"awardedCount"        yaml:"awardedCount"`
	WinRatePercentage   float64 `json:"winRatePercentage"   yaml:"winRatePercentage"`
}

// PresenceType enumerates the user presence states reported by
// presence.roblox.com.
type PresenceType int

const (
	PresenceOffline  PresenceType = 0
	PresenceOnline   PresenceType = 1
	PresenceInGame   PresenceType = 2
	PresenceInStudio PresenceType = 3
)

// Presence is the current presence of one user.
type Presence struct {
	UserPresenceType PresenceType `json:"userPresenceType" yaml:"userPresenceType"`
	LastLocation     string       `json:"lastLocation"     yaml:"lastLocation"`
	PlaceID          *int64       `json:"placeId"          yaml:"placeId"`
	RootPlaceID      *int64       `json:"rootPlaceId"      yaml:"rootPlaceId"`
	GameID           *string      `json:"gameId"           yaml:"gameId"`
	UniverseID       *int64       `json:"universeId"       yaml:"universeId"`
	UserID           int64        `json:"userId"           yaml:"userId"`
	LastOnline       time.Time    `json:"lastOnline"       yaml:"lastOnline"`
}

// LastOnline reports when a user was last seen online.
type LastOnline struct {
	UserID     int64     `json:"userId"     yaml:"userId"`
	LastOnline time.Time `json:"lastOnline" yaml:"lastOnline"`
}

// Thumbnail is one rendered thumbnail returned by thumbnails.roblox.com.
// State is "Completed" once the render is ready; "Pending" renders carry an
// empty ImageURL.
type Thumbnail struct {
	TargetID int64  `json:"targetId" yaml:"targetId"`
	State    string `json:"state"    yaml:"state"`
	ImageURL string `json:"imageUrl" yaml:"imageUrl"`
	Version  string `json:"version"  yaml:"version"`
}

// CurrencyBalance is the Robux balance of the authenticated user.
type CurrencyBalance struct {
	Robux int64 `json:"robux" yaml:"robux"`
}

// ResaleData summarizes the resale market for a limited asset.
type ResaleData struct {
	AssetStock             *int64  `json:"assetStock"             yaml:"assetStock"`
	Sales                  int64   `json:"sales"                  yaml:"sales"`
	NumberRemaining        *int64  `json:"numberRemaining"        yaml:"numberRemaining"`
	RecentAveragePrice     int64   `json:"recentAveragePrice"     yaml:"recentAveragePrice"`
	OriginalPrice          *int64  `json:"originalPrice"          yaml:"originalPrice"`
	PriceDataPoints        []Point `json:"priceDataPoints"        yaml:"priceDataPoints"`
	VolumeDataPoints       []Point `json:"volumeDataPoints"       yaml:"volumeDataPoints"`
}

// Point is a dated value in a resale data series.
type Point struct {
	Value int64     `json:"value" yaml:"value"`
	Date  time.Time `json:"date"  yaml:"date"`
}

// Friend is one entry of a user's friend list.
type Friend struct {
	ID               int64  `json:"id"               yaml:"id"`
	Name             string `json:"name"             yaml:"name"`
	DisplayName      string `json:"displayName"      yaml:"displayName"`
	IsOnline         bool   `json:"isOnline"         yaml:"isOnline"`
	IsBanned         bool   `json:"isBanned"         yaml:"isBanned"`
	HasVerifiedBadge bool   `json:"hasVerifiedBadge" yaml:"hasVerifiedBadge"`
}

// FriendCount is the envelope of the friend/follower count endpoints.
type FriendCount struct {
	Count int64 `json:"count" yaml:"count"`
}
