package middleware

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pdam/billing-console/internal/core/ports"
	"github.com/pdam/billing-console/internal/infrastructure/session"
)

// Context keys set by Session.
const (
	TokenStoreKey  = "token_store"
	AccessTokenKey = "access_token"
)

// Session binds the request's token store and loads the access token into
// context. It never rejects a request: a missing or expired token simply
// leaves the access token empty, and the page decides what to render.
func Session(provider session.Provider, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			store := provider.Store(c)
			c.Set(TokenStoreKey, store)

			ctx := c.Request().Context()
			token, err := store.Get(ctx, ports.AccessTokenKey)
			if err != nil {
				log.Warn().Err(err).Str("path", c.Path()).Msg("token store read failed")
				token = ""
			}

			if token != "" && expired(token, time.Now()) {
				if err := store.Delete(ctx, ports.AccessTokenKey); err != nil {
					log.Warn().Err(err).Msg("drop expired token")
				}
				token = ""
			}

			c.Set(AccessTokenKey, token)
			return next(c)
		}
	}
}

// expired reports whether token is a JWT whose exp claim has passed. Opaque
// tokens never expire here; the API remains the authority.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}
