package service

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/internal/core/ports"
)

// AuthService implements registration and sign-in against the API. Tokens
// are issued and verified upstream; the console only reads their claims.
type AuthService struct {
	client   ports.PDAMClient
	tokenTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(client ports.PDAMClient, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{client: client, tokenTTL: tokenTTL, logger: logger, now: time.Now}
}

func (s *AuthService) Register(ctx context.Context, in ports.AdminRegistration) (string, error) {
	msg, err := s.client.RegisterAdmin(ctx, in)
	if err != nil {
		return "", err
	}
	s.logger.Info().Str("username", in.Username).Msg("admin registered")
	return msg, nil
}

// SignIn exchanges credentials for a token and derives the session lifetime
// and landing page from its claims.
func (s *AuthService) SignIn(ctx context.Context, in ports.SignInInput) (*ports.Session, error) {
	res, err := s.client.SignIn(ctx, in)
	if err != nil {
		return nil, err
	}

	session := &ports.Session{
		Token:     res.Token,
		Role:      res.Role,
		ExpiresIn: s.tokenTTL,
		Message:   res.Message,
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(res.Token, claims); err != nil {
		// Opaque tokens are fine; keep the defaults.
		s.logger.Debug().Err(err).Msg("token is not a parseable jwt")
		return session, nil
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		left := exp.Sub(s.now())
		if left <= 0 {
			return nil, domain.NewStatusError(http.StatusUnauthorized, "Token already expired")
		}
		if left < session.ExpiresIn {
			session.ExpiresIn = left
		}
	}
	if session.Role == "" {
		if role, ok := claims["role"].(string); ok {
			session.Role = role
		}
	}

	s.logger.Info().Str("username", in.Username).Str("role", session.Role).Msg("signed in")
	return session, nil
}
