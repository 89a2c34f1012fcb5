// Package handler contains the page handlers of the storefront.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	deliverycontext "socksflow/internal/delivery/context"
	"socksflow/internal/delivery/web/middleware"
	"socksflow/internal/delivery/web/response"
	"socksflow/internal/delivery/web/validator"
	"socksflow/internal/delivery/web/view"
	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/domain/service"
	"socksflow/internal/errors"

	"github.com/labstack/echo/v4"
)

// responder holds what every page handler needs to answer a request.
type responder struct {
	logger *slog.Logger
}

// render wraps data in the page envelope and renders the named template.
func (r responder) render(c echo.Context, status int, name, title string, data any) error {
	return c.Render(status, name, view.Page{
		Title:         title,
		Path:          c.Request().URL.Path,
		RequestID:     deliverycontext.GetRequestID(c),
		Authenticated: middleware.GetSession(c).Authenticated(),
		Flash:         middleware.GetFlash(c),
		Data:          data,
	})
}

func (r responder) redirect(c echo.Context, location string) error {
	return c.Redirect(middleware.RedirectStatus(c.Request()), location)
}

// redirectWithFlash stores flash for the page at location and redirects there.
func (r responder) redirectWithFlash(c echo.Context, location string, flash *service.Flash) error {
	if err := middleware.SetFlash(c, flash); err != nil {
		return errors.WithStack(err)
	}

	return r.redirect(c, location)
}

func (r responder) success(c echo.Context, location, message string) error {
	return r.redirectWithFlash(c, location, &service.Flash{Kind: service.FlashSuccess, Message: message})
}

// fail sends a rejected form back to location with its values and messages.
// Rejected tokens go to the error handler, which ends the session.
func (r responder) fail(c echo.Context, location string, err error, form map[string]string) error {
	if domainerrors.IsUnauthorized(err) {
		return err
	}

	flash := &service.Flash{Kind: service.FlashError, Form: form}
	if fields := validator.FieldErrors(err); fields != nil {
		flash.FieldErrors = fields
		flash.Message = domainerrors.ErrValidationFailed.Message()
	} else {
		flash.Message = domainerrors.UserMessage(err)
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), r.logger)
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode() >= http.StatusInternalServerError {
		logger.Error("Form submission failed", slog.String("path", c.Request().URL.Path), slog.Any("error", err))
	} else {
		logger.Info("Form submission rejected", slog.String("path", c.Request().URL.Path), slog.String("code", appErr.ErrorCode()))
	}

	return r.redirectWithFlash(c, location, flash)
}

// bind decodes the form into dst and validates it.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	return c.Validate(dst)
}

// formValues echoes the named fields back to the form. Secrets are never listed.
func formValues(c echo.Context, fields ...string) map[string]string {
	params, err := c.FormParams()
	if err != nil {
		return nil
	}

	out := make(map[string]string, len(fields))
	for _, f := range fields {
		if vals, ok := params[f]; ok && len(vals) > 0 {
			out[f] = strings.TrimSpace(vals[0])
		}
	}

	return out
}

// scopedFormValues ties the values to one of several forms on the target page.
func scopedFormValues(c echo.Context, scope string, fields ...string) map[string]string {
	out := formValues(c, fields...)
	if out == nil {
		out = make(map[string]string, 1)
	}
	out[service.FormScope] = scope

	return out
}

// parseID reads a positive numeric path parameter; anything else is a 404.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(domainerrors.ErrNotFound)
	}

	return id, nil
}

// HealthCheck is the liveness probe.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
