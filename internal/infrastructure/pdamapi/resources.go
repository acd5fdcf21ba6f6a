package pdamapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/internal/core/ports"
)

const (
	customersPath  = "/customer"
	customerMePath = "/customers/me"
	servicesPath   = "/services"
	adminsPath     = "/admins"
	adminMePath    = "/admins/me"
)

// ── Customers ────────────────────────────────────────────────────────────────

func (c *Client) ListCustomers(ctx context.Context, creds ports.Credentials) ([]domain.Customer, error) {
	env, err := call[[]domain.Customer](ctx, c, request{
		method: http.MethodGet, route: customersPath, path: customersPath, creds: creds,
	})
	return env.Data, err
}

func (c *Client) CreateCustomer(ctx context.Context, creds ports.Credentials, in ports.CustomerInput) (string, error) {
	env, err := call[json.RawMessage](ctx, c, request{
		method: http.MethodPost, route: customersPath, path: customersPath, creds: creds, body: in,
	})
	return env.Message, err
}

func (c *Client) UpdateCustomer(ctx context.Context, creds ports.Credentials, id int64, in ports.CustomerUpdate) (string, error) {
	env, err := call[json.RawMessage](ctx, c, request{
		method: http.MethodPut, route: customersPath + "/{id}", path: resourcePath(customersPath, id), creds: creds, body: in,
	})
	return env.Message, err
}

func (c *Client) DeleteCustomer(ctx context.Context, creds ports.Credentials, id int64) (string, error) {
	env, err := call[json.RawMessage](ctx, c, request{
		method: http.MethodDelete, route: customersPath + "/{id}", path: resourcePath(customersPath, id), creds: creds,
	})
	return env.Message, err
}

func (c *Client) CurrentCustomer(ctx context.Context, creds ports.Credentials) (*domain.Customer, error) {
	env, err := call[*domain.Customer](ctx, c, request{
		method: http.MethodGet, route: customerMePath, path: customerMePath, creds: creds,
	})
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, domain.NewTransportError(errNilData)
	}
	return env.Data, nil
}

// ── Services ─────────────────────────────────────────────────────────────────

func (c *Client) ListServices(ctx context.Context, creds ports.Credentials) ([]domain.Service, error) {
	env, err := call[[]domain.Service](ctx, c, request{
		method: http.MethodGet, route: servicesPath, path: servicesPath, creds: creds,
	})
	return env.Data, err
}

func (c *Client) CreateService(ctx context.Context, creds ports.Credentials, in ports.ServiceInput) (string, error) {
	env, err := call[json.RawMessage](ctx, c, request{
		method: http.MethodPost, route: servicesPath, path: servicesPath, creds: creds, body: in,
	})
	return env.Message, err
}

func (c *Client) UpdateService(ctx context.Context, creds ports.Credentials, id int64, in ports.ServiceInput) (string, error) {
	env, err := call[json.RawMessage](ctx, c, request{
		method: http.MethodPut, route: servicesPath + "/{id}", path: resourcePath(servicesPath, id), creds: creds, body: in,
	})
	return env.Message, err
}

func (c *Client) DeleteService(ctx context.Context, creds ports.Credentials, id int64) (string, error) {
	env, err := call[json.RawMessage](ctx, c, request{
		method: http.MethodDelete, route: servicesPath + "/{id}", path: resourcePath(servicesPath, id), creds: creds,
	})
	return env.Message, err
}

// ── Admins and auth ──────────────────────────────────────────────────────────

func (c *Client) CurrentAdmin(ctx context.Context, creds ports.Credentials) (*domain.Admin, error) {
	env, err := call[*domain.Admin](ctx, c, request{
		method: http.MethodGet, route: adminMePath, path: adminMePath, creds: creds,
	})
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, domain.NewTransportError(errNilData)
	}
	return env.Data, nil
}

func (c *Client) RegisterAdmin(ctx context.Context, in ports.AdminRegistration) (string, error) {
	env, err := call[json.RawMessage](ctx, c, request{
		method: http.MethodPost, route: adminsPath, path: adminsPath, body: in,
	})
	return env.Message, err
}

// signInData accepts the token either at the top level of the envelope or
// inside data.
type signInData struct {
	Token string       `json:"token"`
	Role  string       `json:"role"`
	User  *domain.User `json:"user"`
}

func (c *Client) SignIn(ctx context.Context, in ports.SignInInput) (*ports.SignInResult, error) {
	env, err := call[*signInData](ctx, c, request{
		method: http.MethodPost, route: c.authPath, path: c.authPath, body: in,
	})
	if err != nil {
		return nil, err
	}
	res := &ports.SignInResult{Message: env.Message, Token: env.Token}
	if d := env.Data; d != nil {
		if res.Token == "" {
			res.Token = d.Token
		}
		res.Role = d.Role
		if res.Role == "" && d.User != nil {
			res.Role = d.User.Role
		}
	}
	if res.Token == "" {
		return nil, domain.NewStatusError(http.StatusUnauthorized, env.Message)
	}
	return res, nil
}
