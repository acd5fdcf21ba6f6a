package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/internal/core/ports"
)

// CustomerService drives the customer list view and its dialogs.
type CustomerService struct {
	client   ports.PDAMClient
	observer ports.Observer
	logger   zerolog.Logger
}

var _ ports.CustomerService = (*CustomerService)(nil)

// NewCustomerService returns a service. A nil observer discards events.
func NewCustomerService(client ports.PDAMClient, observer ports.Observer, logger zerolog.Logger) *CustomerService {
	if observer == nil {
		observer = ports.NopObserver{}
	}
	return &CustomerService{client: client, observer: observer, logger: logger}
}

// List returns the customers in server order. A failed fetch yields an empty
// list; the failure is only logged.
func (s *CustomerService) List(ctx context.Context, creds ports.Credentials) []domain.Customer {
	customers, err := s.client.ListCustomers(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Msg("customer list fetch failed, rendering empty list")
		s.observer.EmptyListFallback("customer")
		return []domain.Customer{}
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	return customers
}

func (s *CustomerService) Create(ctx context.Context, creds ports.Credentials, in ports.CustomerInput) (string, error) {
	msg, err := s.client.CreateCustomer(ctx, creds, in)
	if err != nil {
		return "", err
	}
	s.logger.Info().Str("customer_number", in.CustomerNumber).Msg("customer created")
	return msg, nil
}

func (s *CustomerService) Update(ctx context.Context, creds ports.Credentials, id int64, in ports.CustomerUpdate) (string, error) {
	msg, err := s.client.UpdateCustomer(ctx, creds, id, in)
	if err != nil {
		return "", err
	}
	s.logger.Info().Int64("customer_id", id).Msg("customer updated")
	return msg, nil
}

func (s *CustomerService) Delete(ctx context.Context, creds ports.Credentials, id int64) (string, error) {
	msg, err := s.client.DeleteCustomer(ctx, creds, id)
	if err != nil {
		return "", err
	}
	s.logger.Info().Int64("customer_id", id).Msg("customer deleted")
	return msg, nil
}
