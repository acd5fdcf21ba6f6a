package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pdam/billing-console/internal/api/metrics"
	"github.com/pdam/billing-console/internal/core/dialog"
	"github.com/pdam/billing-console/internal/core/domain"
)

const busyMessage = "A submission is already in progress"

// guardKey identifies one dialog of one session: the same form submitted
// twice from the same browser shares a key.
func guardKey(c echo.Context) string {
	return c.Request().Method + " " + c.Request().URL.Path + "|" + credentials(c).Token
}

// actionStatus maps a submission error to the action response status.
func actionStatus(err error) int {
	if errors.Is(err, domain.ErrBusy) {
		return http.StatusConflict
	}
	if ae, ok := domain.AsAPIError(err); ok {
		if ae.Kind == domain.KindTransport {
			return http.StatusBadGateway
		}
		if ae.Status > 0 {
			return ae.Status
		}
	}
	return http.StatusInternalServerError
}

func respond(c echo.Context, resource string, status int, out dialog.Outcome) error {
	metrics.NoticesTotal.WithLabelValues(resource, string(out.Notice.Level)).Inc()
	return c.JSON(status, out)
}

func busy(c echo.Context, resource string) error {
	return respond(c, resource, http.StatusConflict, dialog.Outcome{
		Notice: dialog.Notice{Level: dialog.LevelWarning, Message: busyMessage},
	})
}

// invalid answers a request that failed local validation. The dialog stays
// open.
func invalid(c echo.Context, resource string, err error) error {
	return respond(c, resource, http.StatusUnprocessableEntity, dialog.Outcome{
		Notice: dialog.Notice{Level: dialog.LevelWarning, Message: err.Error()},
	})
}

// bindForm binds and validates the request body into dst.
func bindForm(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errors.New("invalid payload")
	}
	return c.Validate(dst)
}

// submitDialog runs one create or edit submission for the current request.
// The dialog is opened first, so a create dialog's reset does not wipe the
// bound values.
func submitDialog[F any](c echo.Context, guard *dialog.Guard, resource string, d *dialog.Dialog[F], values F, fn dialog.SubmitFunc[F], msgs dialog.Messages) error {
	release, ok := guard.TryAcquire(guardKey(c))
	if !ok {
		return busy(c, resource)
	}
	defer release()

	d.Open()
	d.Set(values)
	out, err := d.Submit(c.Request().Context(), fn, msgs)
	if err != nil {
		return respond(c, resource, actionStatus(err), out)
	}
	return respond(c, resource, http.StatusOK, out)
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// confirmDelete runs a confirmed delete for the current request. The DELETE
// request itself is the confirmation; cancelling never reaches the server.
func confirmDelete(c echo.Context, guard *dialog.Guard, resource string, fn func(ctx context.Context) (string, error), msgs dialog.Messages) error {
	release, ok := guard.TryAcquire(guardKey(c))
	if !ok {
		return busy(c, resource)
	}
	defer release()

	var confirm dialog.Confirm
	confirm.Prompt()
	out, err := confirm.Confirm(c.Request().Context(), fn, msgs)
	if err != nil {
		return respond(c, resource, actionStatus(err), out)
	}
	return respond(c, resource, http.StatusOK, out)
}
