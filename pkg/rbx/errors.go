package rbx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a single error object from a Roblox API response.
type APIError struct {
	Code              int    `json:"code"              yaml:"code"`
	Message           string `json:"message"           yaml:"message"`
	UserFacingMessage string `json:"userFacingMessage" yaml:"userFacingMessage"`
	Field             string `json:"field,omitempty"   yaml:"field,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// ResponseError represents the `{"errors": [...]}` body Roblox returns for
// any request that fails with status >= 400. StatusCode carries the HTTP
// status the body arrived with, since Roblox error codes are only unique per
// endpoint.
type ResponseError struct {
	StatusCode int        `json:"-"      yaml:"-"`
	Errors     []APIError `json:"errors" yaml:"errors"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	switch len(e.Errors) {
	case 0:
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	case 1:
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Errors[0].Error())
	default:
		return fmt.Sprintf("HTTP %d: multiple errors: %v", e.StatusCode, e.Errors)
	}
}

// FirstError returns the first error object or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired         = errors.New("config is required")
	ErrBaseDomainRequired     = errors.New("base domain is required")
	ErrNoCookieConfigured     = errors.New("no .ROBLOSECURITY cookie configured")
	ErrStaticCookieNoRefresh  = errors.New("static cookie cannot be refreshed")
	ErrNoMoreItems            = errors.New("no more items")
	ErrCircuitBreakerOpen     = errors.New("circuit breaker is open")
	ErrInvalidThumbnailState  = errors.New("thumbnail render is not completed")
	ErrUserNotFound           = errors.New("user not found")
	ErrGroupNotFound          = errors.New("group not found")
	ErrAssetNotFound          = errors.New("asset not found")
	ErrBadgeNotFound          = errors.New("badge not found")
)

// statusOf extracts the HTTP status from an error chain, or 0.
func statusOf(err error) int {
	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		return errResp.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a not-found API response.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates a missing or expired cookie.
func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a forbidden API response. A 403 that
// only carries "Token Validation Failed" is handled transparently by the
// transport and never surfaces here.
func IsForbidden(err error) bool {
	return statusOf(err) == http.StatusForbidden
}

// IsTooManyRequests checks if the error is a rate-limit response.
func IsTooManyRequests(err error) bool {
	return statusOf(err) == http.StatusTooManyRequests
}

// IsChallengeRequired checks if the error carries the Roblox account
// challenge error code (two-step verification interstitial).
func IsChallengeRequired(err error) bool {
	errResp := &ResponseError{}
	if !errors.As(err, &errResp) {
		return false
	}

	first := errResp.FirstError()

	return first != nil && first.Code == 0 && errResp.StatusCode == http.StatusForbidden
}

// ParseResponseError parses an error response body.
func ParseResponseError(statusCode int, data []byte) (*ResponseError, error) {
	var errResp ResponseError

	err := json.Unmarshal(data, &errResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	errResp.StatusCode = statusCode

	return &errResp, nil
}
