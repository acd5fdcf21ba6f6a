package service

import (
	"context"

	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub PDAM client
// ---------------------------------------------------------------------------

type stubClient struct {
	customers []domain.Customer
	services  []domain.Service
	admin     *domain.Admin
	customer  *domain.Customer
	signIn    *ports.SignInResult

	err   error  // returned by every call when set
	msg   string // returned by mutations
	calls map[string]int
	creds []ports.Credentials
}

func newStubClient() *stubClient {
	return &stubClient{calls: make(map[string]int)}
}

func (c *stubClient) record(name string, creds ports.Credentials) {
	c.calls[name]++
	c.creds = append(c.creds, creds)
}

func (c *stubClient) ListCustomers(_ context.Context, creds ports.Credentials) ([]domain.Customer, error) {
	c.record("ListCustomers", creds)
	return c.customers, c.err
}

func (c *stubClient) CreateCustomer(_ context.Context, creds ports.Credentials, _ ports.CustomerInput) (string, error) {
	c.record("CreateCustomer", creds)
	return c.msg, c.err
}

func (c *stubClient) UpdateCustomer(_ context.Context, creds ports.Credentials, _ int64, _ ports.CustomerUpdate) (string, error) {
	c.record("UpdateCustomer", creds)
	return c.msg, c.err
}

func (c *stubClient) DeleteCustomer(_ context.Context, creds ports.Credentials, _ int64) (string, error) {
	c.record("DeleteCustomer", creds)
	return c.msg, c.err
}

func (c *stubClient) CurrentCustomer(_ context.Context, creds ports.Credentials) (*domain.Customer, error) {
	c.record("CurrentCustomer", creds)
	return c.customer, c.err
}

func (c *stubClient) ListServices(_ context.Context, creds ports.Credentials) ([]domain.Service, error) {
	c.record("ListServices", creds)
	return c.services, c.err
}

func (c *stubClient) CreateService(_ context.Context, creds ports.Credentials, _ ports.ServiceInput) (string, error) {
	c.record("CreateService", creds)
	return c.msg, c.err
}

func (c *stubClient) UpdateService(_ context.Context, creds ports.Credentials, _ int64, _ ports.ServiceInput) (string, error) {
	c.record("UpdateService", creds)
	return c.msg, c.err
}

func (c *stubClient) DeleteService(_ context.Context, creds ports.Credentials, _ int64) (string, error) {
	c.record("DeleteService", creds)
	return c.msg, c.err
}

func (c *stubClient) CurrentAdmin(_ context.Context, creds ports.Credentials) (*domain.Admin, error) {
	c.record("CurrentAdmin", creds)
	return c.admin, c.err
}

func (c *stubClient) RegisterAdmin(_ context.Context, _ ports.AdminRegistration) (string, error) {
	c.record("RegisterAdmin", ports.Credentials{})
	return c.msg, c.err
}

func (c *stubClient) SignIn(_ context.Context, _ ports.SignInInput) (*ports.SignInResult, error) {
	c.record("SignIn", ports.Credentials{})
	if c.err != nil {
		return nil, c.err
	}
	return c.signIn, nil
}
