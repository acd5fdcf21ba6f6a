package handler

import (
	"bytes"
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pdam/billing-console/internal/api/view"
	"github.com/pdam/billing-console/internal/core/dialog"
	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/internal/core/ports"
	"github.com/pdam/billing-console/internal/core/service"
	"github.com/pdam/billing-console/internal/infrastructure/export"
)

const resourceService = "service"

var (
	createServiceMsgs = dialog.Messages{Success: "Service added successfully", Failure: "Failed to add service"}
	updateServiceMsgs = dialog.Messages{Success: "Service updated successfully", Failure: "Failed to update service"}
	deleteServiceMsgs = dialog.Messages{Success: "Service deleted successfully", Failure: "Failed to delete service"}
)

// ServiceHandler serves the service package list view, its dialog actions
// and the reference list used by customer dialogs.
type ServiceHandler struct {
	catalog ports.ServiceCatalog
	guard   *dialog.Guard
	logger  zerolog.Logger
}

func NewServiceHandler(catalog ports.ServiceCatalog, guard *dialog.Guard, logger zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{catalog: catalog, guard: guard, logger: logger}
}

type serviceRequest struct {
	Name     string  `json:"name"      validate:"required"`
	MinUsage float64 `json:"min_usage" validate:"gte=0"`
	MaxUsage float64 `json:"max_usage" validate:"gtefield=MinUsage"`
	Price    float64 `json:"price"     validate:"gte=0"`
}

type referenceResponse struct {
	Data []domain.Service `json:"data"`
}

// List handles GET /admin/services.
func (h *ServiceHandler) List(c echo.Context) error {
	services := h.catalog.List(c.Request().Context(), credentials(c))
	return c.Render(http.StatusOK, view.PageServices, view.AdminPage("Services", view.MenuServices, view.ServicesData{
		Services: services,
		Stats:    service.ComputeServiceStats(services),
	}))
}

// Export handles GET /admin/services/export.xlsx.
func (h *ServiceHandler) Export(c echo.Context) error {
	services := h.catalog.List(c.Request().Context(), credentials(c))

	var buf bytes.Buffer
	if err := export.Services(&buf, services); err != nil {
		h.logger.Error().Err(err).Msg("service export failed")
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="services.xlsx"`)
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}

// Reference returns the service packages offered by customer dialogs.
//
// @Summary      Service reference list
// @Tags         services
// @Produce      json
// @Success      200  {object}  referenceResponse
// @Failure      401  {object}  dialog.Outcome
// @Failure      502  {object}  dialog.Outcome
// @Router       /admin/reference/services [get]
func (h *ServiceHandler) Reference(c echo.Context) error {
	services, err := h.catalog.Reference(c.Request().Context(), credentials(c))
	if err != nil {
		return respond(c, resourceService, actionStatus(err), dialog.Outcome{
			Notice: dialog.FailureNotice(err, dialog.Messages{Failure: "Failed to load services"}),
		})
	}
	return c.JSON(http.StatusOK, referenceResponse{Data: services})
}

// Create handles POST /admin/services.
//
// @Summary      Add a service package
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body  body      serviceRequest  true  "Service package"
// @Success      200   {object}  dialog.Outcome
// @Failure      400   {object}  dialog.Outcome
// @Failure      409   {object}  dialog.Outcome
// @Failure      422   {object}  dialog.Outcome
// @Failure      502   {object}  dialog.Outcome
// @Router       /admin/services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req serviceRequest
	if err := bindForm(c, &req); err != nil {
		return invalid(c, resourceService, err)
	}

	creds := credentials(c)
	d := dialog.NewCreate(ports.ServiceInput{})
	return submitDialog(c, h.guard, resourceService, d, ports.ServiceInput(req), func(ctx context.Context, in ports.ServiceInput) (string, error) {
		return h.catalog.Create(ctx, creds, in)
	}, createServiceMsgs)
}

// Update handles PUT /admin/services/:id.
//
// @Summary      Update a service package
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Service ID"
// @Param        body  body      serviceRequest  true  "Service package"
// @Success      200   {object}  dialog.Outcome
// @Failure      400   {object}  dialog.Outcome
// @Failure      404   {object}  dialog.Outcome
// @Failure      422   {object}  dialog.Outcome
// @Failure      502   {object}  dialog.Outcome
// @Router       /admin/services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return invalid(c, resourceService, err)
	}
	var req serviceRequest
	if err := bindForm(c, &req); err != nil {
		return invalid(c, resourceService, err)
	}

	creds := credentials(c)
	initial := ports.ServiceInput(req)
	d := dialog.NewEdit(initial)
	return submitDialog(c, h.guard, resourceService, d, initial, func(ctx context.Context, in ports.ServiceInput) (string, error) {
		return h.catalog.Update(ctx, creds, id, in)
	}, updateServiceMsgs)
}

// Delete handles DELETE /admin/services/:id. A package still referenced by
// customers comes back from the API as a 409 conflict.
//
// @Summary      Delete a service package
// @Tags         services
// @Produce      json
// @Param        id   path      int  true  "Service ID"
// @Success      200  {object}  dialog.Outcome
// @Failure      404  {object}  dialog.Outcome
// @Failure      409  {object}  dialog.Outcome
// @Failure      502  {object}  dialog.Outcome
// @Router       /admin/services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return invalid(c, resourceService, err)
	}

	creds := credentials(c)
	return confirmDelete(c, h.guard, resourceService, func(ctx context.Context) (string, error) {
		return h.catalog.Delete(ctx, creds, id)
	}, deleteServiceMsgs)
}
