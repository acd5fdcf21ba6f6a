package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pdam/billing-console/internal/api/view"
	"github.com/pdam/billing-console/internal/core/domain"
)

func testAdmin() *domain.Admin {
	return &domain.Admin{ID: 1, Name: "Rina", Phone: "08123", User: domain.User{Username: "rina", Role: "ADMIN"}}
}

func TestProfileHandler_AdminDashboard_Unauthorized(t *testing.T) {
	e, r := newEcho()
	h := NewProfileHandler(&stubProfiles{err: domain.NewStatusError(http.StatusUnauthorized, "Unauthorized")}, zerolog.Nop())

	c, rec := newRequestContext(e, http.MethodGet, "/admin/dashboard", "", "expired")
	if err := h.AdminDashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	data, _ := r.page.Data.(view.AdminData)
	if rec.Code != http.StatusOK || data.Error != adminLoadError || data.Admin != nil {
		t.Fatalf("expected error state, got %d %+v", rec.Code, data)
	}
}

func TestProfileHandler_AdminProfile_EditMode(t *testing.T) {
	e, r := newEcho()
	h := NewProfileHandler(&stubProfiles{admin: testAdmin()}, zerolog.Nop())

	c, _ := newRequestContext(e, http.MethodGet, "/admin/profile?mode=edit", "", "tok")
	if err := h.AdminProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	data, _ := r.page.Data.(view.ProfileData)
	if r.name != view.PageAdminProfile || !data.Editing {
		t.Fatalf("expected edit mode, got %q %+v", r.name, data)
	}
	if data.Fields.Name != "Rina" || data.Fields.Username != "rina" {
		t.Fatalf("fields not populated: %+v", data.Fields)
	}
}

func TestProfileHandler_AdminProfile_ReadOnly(t *testing.T) {
	e, r := newEcho()
	h := NewProfileHandler(&stubProfiles{admin: testAdmin()}, zerolog.Nop())

	c, _ := newRequestContext(e, http.MethodGet, "/admin/profile", "", "tok")
	if err := h.AdminProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if data, _ := r.page.Data.(view.ProfileData); data.Editing || data.Saved {
		t.Fatalf("expected read-only view, got %+v", data)
	}
}

func TestProfileHandler_SaveAdminProfile_KeepsLocalValues(t *testing.T) {
	e, r := newEcho()
	h := NewProfileHandler(&stubProfiles{admin: testAdmin()}, zerolog.Nop())

	form := url.Values{"name": {"Rina Wati"}, "username": {"rina"}, "phone": {"0899"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/profile", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("access_token", "tok")

	if err := h.SaveAdminProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	data, _ := r.page.Data.(view.ProfileData)
	if data.Editing || !data.Saved {
		t.Fatalf("save leaves edit mode: %+v", data)
	}
	if data.Fields.Name != "Rina Wati" || data.Fields.Phone != "0899" {
		t.Fatalf("local values lost: %+v", data.Fields)
	}
	if data.Admin.Name != "Rina" {
		t.Fatalf("original record must be untouched: %+v", data.Admin)
	}
}

func TestProfileHandler_CustomerDashboard(t *testing.T) {
	e, r := newEcho()
	h := NewProfileHandler(&stubProfiles{customer: &domain.Customer{ID: 3, Name: "Budi"}}, zerolog.Nop())

	c, _ := newRequestContext(e, http.MethodGet, "/cust/dashboard", "", "tok")
	if err := h.CustomerDashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	data, _ := r.page.Data.(view.CustomerData)
	if r.name != view.PageCustDashboard || data.Customer == nil || data.Customer.Name != "Budi" {
		t.Fatalf("unexpected render %q %+v", r.name, data)
	}
	if len(r.page.Menu) == 0 || r.page.Menu[0].Href != "/cust/dashboard" {
		t.Fatalf("expected customer menu, got %+v", r.page.Menu)
	}
}
