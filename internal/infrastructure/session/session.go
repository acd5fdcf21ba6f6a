// Package session binds a ports.TokenStore to one HTTP exchange. Two
// providers exist: sealed cookies (the default) and redis-backed sessions
// keyed by an opaque id cookie.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pdam/billing-console/internal/core/ports"
)

const cookiePrefix = "pdam_"

// Provider returns the token store for the current request.
type Provider interface {
	Store(c echo.Context) ports.TokenStore
}

// cookieOptions are shared by both providers.
type cookieOptions struct {
	secure bool
}

func (o cookieOptions) cookie(name, value string, ttl time.Duration) *http.Cookie {
	ck := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   o.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		ck.MaxAge = int(ttl.Seconds())
		ck.Expires = time.Now().Add(ttl)
	}
	return ck
}

func (o cookieOptions) expired(name string) *http.Cookie {
	ck := o.cookie(name, "", 0)
	ck.MaxAge = -1
	ck.Expires = time.Unix(0, 0)
	return ck
}
