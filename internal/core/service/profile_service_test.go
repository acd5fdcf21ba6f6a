package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/internal/core/ports"
)

func TestProfileService_Admin(t *testing.T) {
	client := newStubClient()
	client.admin = &domain.Admin{ID: 1, Name: "Ops"}
	svc := NewProfileService(client, zerolog.Nop())

	admin, err := svc.Admin(context.Background(), ports.Credentials{Token: "tok"})
	if err != nil || admin.Name != "Ops" {
		t.Fatalf("unexpected result %+v %v", admin, err)
	}
}

func TestProfileService_NoToken(t *testing.T) {
	client := newStubClient()
	svc := NewProfileService(client, zerolog.Nop())

	if _, err := svc.Admin(context.Background(), ports.Credentials{}); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if _, err := svc.Customer(context.Background(), ports.Credentials{}); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if len(client.calls) != 0 {
		t.Fatalf("expected no upstream calls, got %v", client.calls)
	}
}

func TestProfileService_Unauthorized(t *testing.T) {
	client := newStubClient()
	client.err = domain.NewStatusError(http.StatusUnauthorized, "Unauthorized")
	svc := NewProfileService(client, zerolog.Nop())

	if _, err := svc.Admin(context.Background(), ports.Credentials{Token: "expired"}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
