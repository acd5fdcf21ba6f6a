package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pdam/billing-console/internal/core/ports"
)

const sessionIDCookie = cookiePrefix + "sid"

// Backend is the server-side session storage, satisfied by
// redis.SessionStore.
type Backend interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Set(ctx context.Context, sessionID, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, sessionID, key string) error
}

// RedisProvider keeps values server-side; the browser only holds a random
// session id.
type RedisProvider struct {
	backend Backend
	cookieOptions
}

func NewRedisProvider(backend Backend, secure bool) *RedisProvider {
	return &RedisProvider{backend: backend, cookieOptions: cookieOptions{secure: secure}}
}

func (p *RedisProvider) Store(c echo.Context) ports.TokenStore {
	return &backendStore{p: p, c: c}
}

type backendStore struct {
	p   *RedisProvider
	c   echo.Context
	sid string
}

// sessionID returns the id from the request cookie, ignoring anything that is
// not a UUID.
func (s *backendStore) sessionID() string {
	if s.sid != "" {
		return s.sid
	}
	ck, err := s.c.Cookie(sessionIDCookie)
	if err != nil {
		return ""
	}
	id, err := uuid.Parse(ck.Value)
	if err != nil {
		return ""
	}
	s.sid = id.String()
	return s.sid
}

func (s *backendStore) Get(ctx context.Context, key string) (string, error) {
	sid := s.sessionID()
	if sid == "" {
		return "", nil
	}
	return s.p.backend.Get(ctx, sid, key)
}

func (s *backendStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	sid := s.sessionID()
	if sid == "" {
		sid = uuid.NewString()
		s.sid = sid
	}
	if err := s.p.backend.Set(ctx, sid, key, value, ttl); err != nil {
		return err
	}
	s.c.SetCookie(s.p.cookie(sessionIDCookie, sid, ttl))
	return nil
}

func (s *backendStore) Delete(ctx context.Context, key string) error {
	sid := s.sessionID()
	if sid == "" {
		return nil
	}
	if err := s.p.backend.Delete(ctx, sid, key); err != nil {
		return err
	}
	if key == ports.AccessTokenKey {
		s.c.SetCookie(s.p.expired(sessionIDCookie))
	}
	return nil
}
