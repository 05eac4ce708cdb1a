package constants

import "errors"

// Configuration errors.
var (
	ErrNoCookieConfigured  = errors.New("no session cookie configured, use 'rbx login' to set one")
	ErrConfigKeyUnknown    = errors.New("unknown configuration key")
	ErrCookieCannotUnset   = errors.New("use 'rbx logout' to remove the session cookie")
	ErrCookieUseLogin      = errors.New("use 'rbx login' to set the session cookie")
	ErrConfigFileNotFound  = errors.New("configuration file not found")
)

// Validation errors.
var (
	ErrInvalidUserID     = errors.New("user ID must be a positive integer")
	ErrInvalidGroupID    = errors.New("group ID must be a positive integer")
	ErrInvalidAssetID    = errors.New("asset ID must be a positive integer")
	ErrInvalidBadgeID    = errors.New("badge ID must be a positive integer")
	ErrInvalidLimit      = errors.New("limit must be 10, 25, 50, or 100")
	ErrKeywordRequired   = errors.New("a search keyword is required")
	ErrUsernamesRequired = errors.New("at least one username is required")
)

// Doctor errors.
var (
	ErrProbeToolNotFound = errors.New("curl not found in PATH, preflight probe unavailable")
	ErrInvalidProbeURL   = errors.New("probe URL must be http or https")
)
