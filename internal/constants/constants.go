package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files. The config
	// file holds the session cookie, so keep it private.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations like the doctor
	// preflight probe.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// DoctorRetryMax is the per-variant attempt budget of the doctor
	// fetcher.
	DoctorRetryMax = 2

	// DoctorBackoff is the fixed pause between doctor fetch attempts.
	DoctorBackoff = 2 * time.Second
)

// Pagination limits.
const (
	// DefaultPageLimit is the page size requested from list endpoints.
	// Roblox accepts 10, 25, 50, or 100.
	DefaultPageLimit = 100

	// MaxPages bounds eager pagination to prevent runaway collection.
	MaxPages = 50
)

// Cache TTLs.
const (
	// DefaultCacheTTL is the default response cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultCacheSize is the default memory cache entry limit.
	DefaultCacheSize = 1000
)

// Default request headers. Some Roblox endpoints reject requests without
// a browser-ish user agent; these are the values the official clients send.
const (
	// DefaultUserAgent is the User-Agent header value.
	DefaultUserAgent = "Roblox/WinInet"

	// DefaultReferer is the Referer header value.
	DefaultReferer = "www.roblox.com"

	// CSRFTokenHeader carries the cross-site request forgery token.
	CSRFTokenHeader = "X-CSRF-Token"

	// SecurityCookieName is the Roblox session cookie name.
	SecurityCookieName = ".ROBLOSECURITY"
)

// Output format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// DescriptionDisplayLength is the default length for displaying
	// descriptions.
	DescriptionDisplayLength = 60
)
