// Package auth manages Roblox session credentials: the .ROBLOSECURITY
// cookie that authenticates requests and the X-CSRF-Token that Roblox
// requires on state-changing calls.
package auth

import (
	"context"
	"os"
	"strings"
	"sync"
)

// CookieProvider supplies the .ROBLOSECURITY session cookie value. An empty
// value means the request goes out unauthenticated.
type CookieProvider interface {
	GetCookie(ctx context.Context) (string, error)
	SetCookie(cookie string)
}

// StaticCookieProvider holds a fixed session cookie.
type StaticCookieProvider struct {
	mu     sync.RWMutex
	cookie string
}

// NewStaticCookieProvider creates a provider around a cookie value.
func NewStaticCookieProvider(cookie string) *StaticCookieProvider {
	return &StaticCookieProvider{cookie: cookie}
}

// GetCookie returns the stored cookie.
func (p *StaticCookieProvider) GetCookie(ctx context.Context) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.cookie, nil
}

// SetCookie replaces the stored cookie.
func (p *StaticCookieProvider) SetCookie(cookie string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cookie = cookie
}

// EnvCookieProvider reads the cookie from an environment variable on every
// request, so long-running processes pick up rotations without a restart.
type EnvCookieProvider struct {
	// Key is the environment variable name, e.g. "RBX_COOKIE".
	Key string
}

// GetCookie reads the environment variable.
func (p *EnvCookieProvider) GetCookie(ctx context.Context) (string, error) {
	return strings.TrimSpace(os.Getenv(p.Key)), nil
}

// SetCookie updates the process environment.
func (p *EnvCookieProvider) SetCookie(cookie string) {
	_ = os.Setenv(p.Key, cookie)
}
