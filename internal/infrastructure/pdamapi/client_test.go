package pdamapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/internal/core/ports"
)

type recorded struct {
	method string
	path   string
	header http.Header
	body   map[string]any
}

func newTestClient(t *testing.T, status int, body string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.header = r.Header.Clone()
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL + "/", AppKey: "app-123"}, zerolog.Nop())
	return c, rec
}

func TestClient_ListCustomers_SendsHeaders(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK,
		`{"success":true,"message":"ok","data":[{"id":1,"name":"Budi","customer_number":"C-001","service_id":2,"user":{"id":9,"username":"budi","role":"CUSTOMER"}}]}`)

	got, err := c.ListCustomers(context.Background(), ports.Credentials{Token: "tok"})
	if err != nil {
		t.Fatalf("ListCustomers returned error: %v", err)
	}
	if rec.method != http.MethodGet || rec.path != "/customer" {
		t.Fatalf("unexpected request %s %s", rec.method, rec.path)
	}
	if rec.header.Get("APP-KEY") != "app-123" {
		t.Fatalf("missing APP-KEY header: %v", rec.header)
	}
	if rec.header.Get("Authorization") != "Bearer tok" {
		t.Fatalf("unexpected Authorization: %q", rec.header.Get("Authorization"))
	}
	if rec.header.Get("Content-Type") != "application/json" {
		t.Fatalf("unexpected Content-Type: %q", rec.header.Get("Content-Type"))
	}
	if len(got) != 1 || got[0].Name != "Budi" || got[0].ServiceID != 2 || got[0].User.Username != "budi" || !got[0].IsActive() {
		t.Fatalf("unexpected customers: %+v", got)
	}
}

func TestClient_OmitsAuthorizationWithoutToken(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"success":true,"data":[]}`)

	if _, err := c.ListServices(context.Background(), ports.Credentials{}); err != nil {
		t.Fatalf("ListServices returned error: %v", err)
	}
	if _, ok := rec.header["Authorization"]; ok {
		t.Fatalf("expected no Authorization header, got %q", rec.header.Get("Authorization"))
	}
}

func TestClient_CreateCustomer_ReturnsServerMessage(t *testing.T) {
	c, rec := newTestClient(t, http.StatusCreated, `{"success":true,"message":"Customer added successfully"}`)

	msg, err := c.CreateCustomer(context.Background(), ports.Credentials{Token: "tok"}, ports.CustomerInput{
		Name: "Siti", CustomerNumber: "C-002", Phone: "081234567890", Address: "Jl. Merdeka 1",
		Username: "siti", Password: "rahasia", ServiceID: 3,
	})
	if err != nil {
		t.Fatalf("CreateCustomer returned error: %v", err)
	}
	if msg != "Customer added successfully" {
		t.Fatalf("unexpected message %q", msg)
	}
	if rec.method != http.MethodPost || rec.path != "/customer" {
		t.Fatalf("unexpected request %s %s", rec.method, rec.path)
	}
	if rec.body["customer_number"] != "C-002" || rec.body["service_id"] != float64(3) || rec.body["password"] != "rahasia" {
		t.Fatalf("unexpected body: %+v", rec.body)
	}
}

func TestClient_UpdateCustomer_OmitsCredentials(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"success":true,"message":"updated"}`)

	if _, err := c.UpdateCustomer(context.Background(), ports.Credentials{Token: "tok"}, 7, ports.CustomerUpdate{Name: "Siti"}); err != nil {
		t.Fatalf("UpdateCustomer returned error: %v", err)
	}
	if rec.method != http.MethodPut || rec.path != "/customer/7" {
		t.Fatalf("unexpected request %s %s", rec.method, rec.path)
	}
	if _, ok := rec.body["username"]; ok {
		t.Fatalf("update body must not carry username: %+v", rec.body)
	}
	if _, ok := rec.body["password"]; ok {
		t.Fatalf("update body must not carry password: %+v", rec.body)
	}
}

func TestClient_DeleteService_Conflict(t *testing.T) {
	c, rec := newTestClient(t, http.StatusConflict, `{"success":false,"message":"Service in use"}`)

	_, err := c.DeleteService(context.Background(), ports.Credentials{Token: "tok"}, 5)
	if rec.method != http.MethodDelete || rec.path != "/services/5" {
		t.Fatalf("unexpected request %s %s", rec.method, rec.path)
	}
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	ae, ok := domain.AsAPIError(err)
	if !ok || ae.Status != http.StatusConflict || ae.Message != "Service in use" {
		t.Fatalf("unexpected api error: %+v", ae)
	}
}

func TestClient_CurrentAdmin_Unauthorized(t *testing.T) {
	c, _ := newTestClient(t, http.StatusUnauthorized, `{"success":false,"message":"Unauthorized"}`)

	admin, err := c.CurrentAdmin(context.Background(), ports.Credentials{Token: "expired"})
	if admin != nil {
		t.Fatalf("expected nil admin, got %+v", admin)
	}
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_InvalidJSONIsTransportError(t *testing.T) {
	c, _ := newTestClient(t, http.StatusBadGateway, `<html>bad gateway</html>`)

	_, err := c.CreateService(context.Background(), ports.Credentials{Token: "tok"}, ports.ServiceInput{Name: "Rumah"})
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestClient_NetworkFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(Config{BaseURL: url}, zerolog.Nop())
	_, err := c.ListServices(context.Background(), ports.Credentials{})
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestClient_SignIn_TokenLocations(t *testing.T) {
	cases := map[string]string{
		"top level": `{"success":true,"message":"Login success","token":"jwt-1","data":{"role":"ADMIN"}}`,
		"in data":   `{"success":true,"message":"Login success","data":{"token":"jwt-1","user":{"role":"ADMIN"}}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, rec := newTestClient(t, http.StatusOK, body)

			res, err := c.SignIn(context.Background(), ports.SignInInput{Username: "admin", Password: "pw"})
			if err != nil {
				t.Fatalf("SignIn returned error: %v", err)
			}
			if rec.path != "/auth" {
				t.Fatalf("unexpected path %s", rec.path)
			}
			if res.Token != "jwt-1" || res.Role != "ADMIN" || res.Message != "Login success" {
				t.Fatalf("unexpected result: %+v", res)
			}
		})
	}
}

func TestClient_SignIn_WithoutTokenIsUnauthorized(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{"success":false,"message":"Wrong password"}`)

	_, err := c.SignIn(context.Background(), ports.SignInInput{Username: "admin", Password: "bad"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_RegisterAdmin(t *testing.T) {
	c, rec := newTestClient(t, http.StatusCreated, `{"success":true,"message":"Admin registered"}`)

	msg, err := c.RegisterAdmin(context.Background(), ports.AdminRegistration{Username: "ops", Password: "pw", Name: "Ops", Phone: "0812"})
	if err != nil {
		t.Fatalf("RegisterAdmin returned error: %v", err)
	}
	if msg != "Admin registered" || rec.path != "/admins" {
		t.Fatalf("unexpected result %q %s", msg, rec.path)
	}
	if _, ok := rec.header["Authorization"]; ok {
		t.Fatalf("registration must be unauthenticated")
	}
}
