package ports

import (
	"context"

	"github.com/pdam/billing-console/internal/core/domain"
)

// Credentials is the caller-supplied authentication for one upstream call.
// An empty Token sends no Authorization header.
type Credentials struct {
	Token string
}

// CustomerInput is the create payload for POST /customer.
type CustomerInput struct {
	Name           string `json:"name"`
	CustomerNumber string `json:"customer_number"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	ServiceID      int64  `json:"service_id"`
}

// CustomerUpdate is the payload for PUT /customer/{id}.
type CustomerUpdate struct {
	Name           string `json:"name"`
	CustomerNumber string `json:"customer_number"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	ServiceID      int64  `json:"service_id"`
}

// ServiceInput is the payload for POST /services and PUT /services/{id}.
type ServiceInput struct {
	Name     string  `json:"name"`
	MinUsage float64 `json:"min_usage"`
	MaxUsage float64 `json:"max_usage"`
	Price    float64 `json:"price"`
}

// AdminRegistration is the payload for POST /admins.
type AdminRegistration struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// SignInInput is the payload for the sign-in endpoint.
type SignInInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInResult carries the bearer token issued by the API.
type SignInResult struct {
	Message string
	Token   string
	Role    string
}

// PDAMClient is the typed REST client for the external billing API.
// Mutations return the server-provided message on success.
type PDAMClient interface {
	ListCustomers(ctx context.Context, creds Credentials) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, creds Credentials, in CustomerInput) (string, error)
	UpdateCustomer(ctx context.Context, creds Credentials, id int64, in CustomerUpdate) (string, error)
	DeleteCustomer(ctx context.Context, creds Credentials, id int64) (string, error)
	CurrentCustomer(ctx context.Context, creds Credentials) (*domain.Customer, error)

	ListServices(ctx context.Context, creds Credentials) ([]domain.Service, error)
	CreateService(ctx context.Context, creds Credentials, in ServiceInput) (string, error)
	UpdateService(ctx context.Context, creds Credentials, id int64, in ServiceInput) (string, error)
	DeleteService(ctx context.Context, creds Credentials, id int64) (string, error)

	CurrentAdmin(ctx context.Context, creds Credentials) (*domain.Admin, error)
	RegisterAdmin(ctx context.Context, in AdminRegistration) (string, error)
	SignIn(ctx context.Context, in SignInInput) (*SignInResult, error)
}
