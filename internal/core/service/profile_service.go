package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/internal/core/ports"
)

// ProfileService loads the signed-in principal's own record.
type ProfileService struct {
	client ports.PDAMClient
	logger zerolog.Logger
}

var _ ports.ProfileService = (*ProfileService)(nil)

func NewProfileService(client ports.PDAMClient, logger zerolog.Logger) *ProfileService {
	return &ProfileService{client: client, logger: logger}
}

// Admin returns domain.ErrNoToken without calling the API when there is no
// token.
func (s *ProfileService) Admin(ctx context.Context, creds ports.Credentials) (*domain.Admin, error) {
	if creds.Token == "" {
		return nil, domain.ErrNoToken
	}
	admin, err := s.client.CurrentAdmin(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Msg("admin profile fetch failed")
		return nil, err
	}
	return admin, nil
}

func (s *ProfileService) Customer(ctx context.Context, creds ports.Credentials) (*domain.Customer, error) {
	if creds.Token == "" {
		return nil, domain.ErrNoToken
	}
	customer, err := s.client.CurrentCustomer(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Msg("customer profile fetch failed")
		return nil, err
	}
	return customer, nil
}
