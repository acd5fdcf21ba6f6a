package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/pdam/billing-console/internal/core/ports"
)

const nonceSize = 24

var errInvalidCookie = errors.New("invalid session cookie")

// CookieProvider stores each value in its own cookie, sealed with
// nacl/secretbox so the browser can neither read nor forge it.
type CookieProvider struct {
	key [32]byte
	cookieOptions
}

// NewCookieProvider derives the sealing key from secret. An empty secret
// yields a random per-process key, so sessions do not survive a restart.
func NewCookieProvider(secret string, secure bool) (*CookieProvider, error) {
	p := &CookieProvider{cookieOptions: cookieOptions{secure: secure}}
	if secret == "" {
		if _, err := io.ReadFull(rand.Reader, p.key[:]); err != nil {
			return nil, fmt.Errorf("session key: %w", err)
		}
		return p, nil
	}
	p.key = sha256.Sum256([]byte(secret))
	return p, nil
}

func (p *CookieProvider) Store(c echo.Context) ports.TokenStore {
	return &cookieStore{p: p, c: c, pending: make(map[string]string)}
}

// seal prefixes value with its expiry (unix seconds, 0 = none).
func (p *CookieProvider) seal(value string, expires time.Time) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}
	msg := make([]byte, 8+len(value))
	if !expires.IsZero() {
		binary.BigEndian.PutUint64(msg, uint64(expires.Unix()))
	}
	copy(msg[8:], value)

	out := secretbox.Seal(nonce[:], msg, &nonce, &p.key)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

func (p *CookieProvider) open(sealed string, now time.Time) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead+8 {
		return "", errInvalidCookie
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	msg, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &p.key)
	if !ok {
		return "", errInvalidCookie
	}
	if exp := int64(binary.BigEndian.Uint64(msg[:8])); exp != 0 && now.Unix() >= exp {
		return "", errInvalidCookie
	}
	return string(msg[8:]), nil
}

// cookieStore remembers writes made during the request so a Set followed by
// Get in the same exchange sees the new value.
type cookieStore struct {
	p       *CookieProvider
	c       echo.Context
	pending map[string]string
}

func (s *cookieStore) name(key string) string {
	return cookiePrefix + key
}

func (s *cookieStore) Get(_ context.Context, key string) (string, error) {
	if v, ok := s.pending[key]; ok {
		return v, nil
	}
	ck, err := s.c.Cookie(s.name(key))
	if err != nil {
		return "", nil
	}
	v, err := s.p.open(ck.Value, time.Now())
	if err != nil {
		// Tampered, stale-key or expired cookies read as absent.
		return "", nil
	}
	return v, nil
}

func (s *cookieStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	var expires time.Time
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}
	sealed, err := s.p.seal(value, expires)
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}
	s.c.SetCookie(s.p.cookie(s.name(key), sealed, ttl))
	s.pending[key] = value
	return nil
}

func (s *cookieStore) Delete(_ context.Context, key string) error {
	s.c.SetCookie(s.p.expired(s.name(key)))
	s.pending[key] = ""
	return nil
}
