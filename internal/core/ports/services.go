package ports

import (
	"context"

	"github.com/pdam/billing-console/internal/core/domain"
)

// CustomerService covers the customer list view and its dialogs.
type CustomerService interface {
	List(ctx context.Context, creds Credentials) []domain.Customer
	Create(ctx context.Context, creds Credentials, in CustomerInput) (string, error)
	Update(ctx context.Context, creds Credentials, id int64, in CustomerUpdate) (string, error)
	Delete(ctx context.Context, creds Credentials, id int64) (string, error)
}

// ServiceCatalog covers the service package list view, its dialogs and the
// cached reference list used by customer dialogs.
type ServiceCatalog interface {
	List(ctx context.Context, creds Credentials) []domain.Service
	Reference(ctx context.Context, creds Credentials) ([]domain.Service, error)
	Create(ctx context.Context, creds Credentials, in ServiceInput) (string, error)
	Update(ctx context.Context, creds Credentials, id int64, in ServiceInput) (string, error)
	Delete(ctx context.Context, creds Credentials, id int64) (string, error)
}

// ProfileService loads the authenticated principal's own record.
type ProfileService interface {
	Admin(ctx context.Context, creds Credentials) (*domain.Admin, error)
	Customer(ctx context.Context, creds Credentials) (*domain.Customer, error)
}

// AuthService handles sign-up and sign-in.
type AuthService interface {
	Register(ctx context.Context, in AdminRegistration) (string, error)
	SignIn(ctx context.Context, in SignInInput) (*Session, error)
}
