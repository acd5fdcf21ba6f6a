package ports

import (
	"context"
	"time"
)

// AccessTokenKey is the token store key holding the bearer token.
const AccessTokenKey = "accessToken"

// TokenStore holds per-session values. Get returns "" for a missing key.
// The cookie-backed and redis-backed implementations are interchangeable.
type TokenStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
