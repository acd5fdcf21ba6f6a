package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pdam/billing-console/internal/api/view"
	"github.com/pdam/billing-console/internal/core/dialog"
	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/internal/core/ports"
)

const (
	adminLoadError    = "Sorry, admin profile could not be loaded."
	customerLoadError = "Sorry, customer profile could not be loaded."
)

// ProfileHandler renders the "me" pages of admins and customers.
type ProfileHandler struct {
	profiles ports.ProfileService
	logger   zerolog.Logger
}

func NewProfileHandler(profiles ports.ProfileService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, logger: logger}
}

// AdminDashboard handles GET /admin/dashboard.
func (h *ProfileHandler) AdminDashboard(c echo.Context) error {
	admin, err := h.profiles.Admin(c.Request().Context(), credentials(c))
	data := view.AdminData{Admin: admin}
	if err != nil {
		data = view.AdminData{Error: adminLoadError}
	}
	return c.Render(http.StatusOK, view.PageAdminDashboard, view.AdminPage("Dashboard", view.MenuHome, data))
}

// AdminProfile handles GET /admin/profile. ?mode=edit opens the form.
func (h *ProfileHandler) AdminProfile(c echo.Context) error {
	admin, err := h.profiles.Admin(c.Request().Context(), credentials(c))
	if err != nil {
		return h.renderProfile(c, view.ProfileData{Error: adminLoadError})
	}

	form := dialog.NewLocalForm(profileFields(admin))
	if c.QueryParam("mode") == "edit" {
		form.Edit()
	}
	return h.renderProfile(c, view.ProfileData{
		Admin:   admin,
		Fields:  form.Values(),
		Editing: form.Editing(),
	})
}

// SaveAdminProfile handles POST /admin/profile. The values are kept on the
// page only; nothing is sent to the API.
func (h *ProfileHandler) SaveAdminProfile(c echo.Context) error {
	admin, err := h.profiles.Admin(c.Request().Context(), credentials(c))
	if err != nil {
		return h.renderProfile(c, view.ProfileData{Error: adminLoadError})
	}

	var fields view.ProfileFields
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	form := dialog.NewLocalForm(profileFields(admin))
	form.Edit()
	form.Update(fields)
	form.Save()
	h.logger.Debug().Int64("admin_id", admin.ID).Msg("profile saved locally")

	return h.renderProfile(c, view.ProfileData{
		Admin:  admin,
		Fields: form.Values(),
		Saved:  true,
	})
}

// CustomerDashboard handles GET /cust/dashboard.
func (h *ProfileHandler) CustomerDashboard(c echo.Context) error {
	customer, err := h.profiles.Customer(c.Request().Context(), credentials(c))
	data := view.CustomerData{Customer: customer}
	if err != nil {
		data = view.CustomerData{Error: customerLoadError}
	}
	return c.Render(http.StatusOK, view.PageCustDashboard, view.Page{
		Title: "Dashboard",
		Menu:  view.CustomerMenu(),
		Data:  data,
	})
}

func (h *ProfileHandler) renderProfile(c echo.Context, data view.ProfileData) error {
	return c.Render(http.StatusOK, view.PageAdminProfile, view.AdminPage("My Profile", view.MenuProfile, data))
}

func profileFields(a *domain.Admin) view.ProfileFields {
	return view.ProfileFields{Name: a.Name, Username: a.User.Username, Phone: a.Phone}
}
