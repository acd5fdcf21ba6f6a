package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pdam/billing-console/internal/core/ports"
)

// credentials returns the bearer token loaded by the Session middleware.
// An empty token is passed through; the API decides what it may see.
func credentials(c echo.Context) ports.Credentials {
	token, _ := c.Get("access_token").(string)
	return ports.Credentials{Token: token}
}

// tokenStore returns the request-bound store, or a no-op store when the
// Session middleware did not run.
func tokenStore(c echo.Context) ports.TokenStore {
	if s, ok := c.Get("token_store").(ports.TokenStore); ok {
		return s
	}
	return nopStore{}
}

type nopStore struct{}

func (nopStore) Get(context.Context, string) (string, error) { return "", nil }

func (nopStore) Set(context.Context, string, string, time.Duration) error { return nil }

func (nopStore) Delete(context.Context, string) error { return nil }
