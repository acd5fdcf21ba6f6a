package handler

import (
	"bytes"
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pdam/billing-console/internal/api/view"
	"github.com/pdam/billing-console/internal/core/dialog"
	"github.com/pdam/billing-console/internal/core/ports"
	"github.com/pdam/billing-console/internal/core/service"
	"github.com/pdam/billing-console/internal/infrastructure/export"
)

const resourceCustomer = "customer"

var (
	createCustomerMsgs = dialog.Messages{Success: "Customer added successfully", Failure: "Failed to add customer"}
	updateCustomerMsgs = dialog.Messages{Success: "Customer updated successfully", Failure: "Failed to update customer"}
	deleteCustomerMsgs = dialog.Messages{Success: "Customer deleted successfully", Failure: "Failed to delete customer"}
)

// CustomerHandler serves the customer list view and its dialog actions.
type CustomerHandler struct {
	customers ports.CustomerService
	guard     *dialog.Guard
	logger    zerolog.Logger
}

func NewCustomerHandler(customers ports.CustomerService, guard *dialog.Guard, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, guard: guard, logger: logger}
}

// --- Request types ---

type createCustomerRequest struct {
	Name           string `json:"name"            validate:"required"`
	CustomerNumber string `json:"customer_number" validate:"required"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Username       string `json:"username"        validate:"required"`
	Password       string `json:"password"        validate:"required"`
	ServiceID      int64  `json:"service_id"      validate:"gt=0"`
}

type updateCustomerRequest struct {
	Name           string `json:"name"            validate:"required"`
	CustomerNumber string `json:"customer_number" validate:"required"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	ServiceID      int64  `json:"service_id"      validate:"gt=0"`
}

// List handles GET /admin/customers.
func (h *CustomerHandler) List(c echo.Context) error {
	customers := h.customers.List(c.Request().Context(), credentials(c))
	return c.Render(http.StatusOK, view.PageCustomers, view.AdminPage("Customers", view.MenuCustomers, view.CustomersData{
		Customers: customers,
		Stats:     service.ComputeCustomerStats(customers),
	}))
}

// Export handles GET /admin/customers/export.xlsx.
func (h *CustomerHandler) Export(c echo.Context) error {
	customers := h.customers.List(c.Request().Context(), credentials(c))

	var buf bytes.Buffer
	if err := export.Customers(&buf, customers); err != nil {
		h.logger.Error().Err(err).Msg("customer export failed")
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="customers.xlsx"`)
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}

// Create handles POST /admin/customers.
//
// @Summary      Add a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      createCustomerRequest  true  "Customer"
// @Success      200   {object}  dialog.Outcome
// @Failure      400   {object}  dialog.Outcome
// @Failure      409   {object}  dialog.Outcome
// @Failure      422   {object}  dialog.Outcome
// @Failure      502   {object}  dialog.Outcome
// @Router       /admin/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := bindForm(c, &req); err != nil {
		return invalid(c, resourceCustomer, err)
	}

	creds := credentials(c)
	d := dialog.NewCreate(ports.CustomerInput{})
	return submitDialog(c, h.guard, resourceCustomer, d, ports.CustomerInput(req), func(ctx context.Context, in ports.CustomerInput) (string, error) {
		return h.customers.Create(ctx, creds, in)
	}, createCustomerMsgs)
}

// Update handles PUT /admin/customers/:id.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Customer ID"
// @Param        body  body      updateCustomerRequest  true  "Customer"
// @Success      200   {object}  dialog.Outcome
// @Failure      400   {object}  dialog.Outcome
// @Failure      404   {object}  dialog.Outcome
// @Failure      422   {object}  dialog.Outcome
// @Failure      502   {object}  dialog.Outcome
// @Router       /admin/customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return invalid(c, resourceCustomer, err)
	}
	var req updateCustomerRequest
	if err := bindForm(c, &req); err != nil {
		return invalid(c, resourceCustomer, err)
	}

	creds := credentials(c)
	initial := ports.CustomerUpdate(req)
	d := dialog.NewEdit(initial)
	return submitDialog(c, h.guard, resourceCustomer, d, initial, func(ctx context.Context, in ports.CustomerUpdate) (string, error) {
		return h.customers.Update(ctx, creds, id, in)
	}, updateCustomerMsgs)
}

// Delete handles DELETE /admin/customers/:id.
//
// @Summary      Delete a customer
// @Tags         customers
// @Produce      json
// @Param        id   path      int  true  "Customer ID"
// @Success      200  {object}  dialog.Outcome
// @Failure      404  {object}  dialog.Outcome
// @Failure      409  {object}  dialog.Outcome
// @Failure      502  {object}  dialog.Outcome
// @Router       /admin/customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return invalid(c, resourceCustomer, err)
	}

	creds := credentials(c)
	return confirmDelete(c, h.guard, resourceCustomer, func(ctx context.Context) (string, error) {
		return h.customers.Delete(ctx, creds, id)
	}, deleteCustomerMsgs)
}
