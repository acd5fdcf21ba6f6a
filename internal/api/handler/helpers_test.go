package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pdam/billing-console/internal/api/view"
	"github.com/pdam/billing-console/internal/core/dialog"
	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/internal/core/ports"
)

// captureRenderer records the last page rendered instead of executing
// templates.
type captureRenderer struct {
	name string
	page view.Page
}

func (r *captureRenderer) Render(_ io.Writer, name string, data any, _ echo.Context) error {
	r.name = name
	r.page, _ = data.(view.Page)
	return nil
}

func newEcho() (*echo.Echo, *captureRenderer) {
	e := echo.New()
	e.Validator = NewValidator()
	r := &captureRenderer{}
	e.Renderer = r
	return e, r
}

// newRequestContext builds a context with an optional JSON body and token.
func newRequestContext(e *echo.Echo, method, target, body, token string) (echo.Context, *httptest.ResponseRecorder) {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if token != "" {
		c.Set("access_token", token)
	}
	return c, rec
}

func decodeOutcome(t *testing.T, rec *httptest.ResponseRecorder) dialog.Outcome {
	t.Helper()
	var out dialog.Outcome
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return out
}

// ---------------------------------------------------------------------------
// Stub services
// ---------------------------------------------------------------------------

type stubCustomers struct {
	list    []domain.Customer
	msg     string
	err     error
	created ports.CustomerInput
	updated ports.CustomerUpdate
	id      int64
	creds   ports.Credentials
	calls   int
}

func (s *stubCustomers) List(_ context.Context, creds ports.Credentials) []domain.Customer {
	s.creds = creds
	return s.list
}

func (s *stubCustomers) Create(_ context.Context, creds ports.Credentials, in ports.CustomerInput) (string, error) {
	s.calls++
	s.creds, s.created = creds, in
	return s.msg, s.err
}

func (s *stubCustomers) Update(_ context.Context, creds ports.Credentials, id int64, in ports.CustomerUpdate) (string, error) {
	s.calls++
	s.creds, s.id, s.updated = creds, id, in
	return s.msg, s.err
}

func (s *stubCustomers) Delete(_ context.Context, creds ports.Credentials, id int64) (string, error) {
	s.calls++
	s.creds, s.id = creds, id
	return s.msg, s.err
}

type stubCatalog struct {
	list   []domain.Service
	ref    []domain.Service
	refErr error
	msg    string
	err    error
	input  ports.ServiceInput
	id     int64
	calls  int
}

func (s *stubCatalog) List(context.Context, ports.Credentials) []domain.Service { return s.list }

func (s *stubCatalog) Reference(context.Context, ports.Credentials) ([]domain.Service, error) {
	return s.ref, s.refErr
}

func (s *stubCatalog) Create(_ context.Context, _ ports.Credentials, in ports.ServiceInput) (string, error) {
	s.calls++
	s.input = in
	return s.msg, s.err
}

func (s *stubCatalog) Update(_ context.Context, _ ports.Credentials, id int64, in ports.ServiceInput) (string, error) {
	s.calls++
	s.id, s.input = id, in
	return s.msg, s.err
}

func (s *stubCatalog) Delete(_ context.Context, _ ports.Credentials, id int64) (string, error) {
	s.calls++
	s.id = id
	return s.msg, s.err
}

type stubProfiles struct {
	admin    *domain.Admin
	customer *domain.Customer
	err      error
}

func (s *stubProfiles) Admin(context.Context, ports.Credentials) (*domain.Admin, error) {
	return s.admin, s.err
}

func (s *stubProfiles) Customer(context.Context, ports.Credentials) (*domain.Customer, error) {
	return s.customer, s.err
}

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.AdminRegistration) (string, error)
	signInFn   func(ctx context.Context, in ports.SignInInput) (*ports.Session, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.AdminRegistration) (string, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) SignIn(ctx context.Context, in ports.SignInInput) (*ports.Session, error) {
	return s.signInFn(ctx, in)
}

// memStore is an in-memory ports.TokenStore.
type memStore struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memStore) Get(_ context.Context, key string) (string, error) { return m.values[key], nil }

func (m *memStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.values[key], m.ttls[key] = value, ttl
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}
