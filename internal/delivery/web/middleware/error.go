package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "socksflow/internal/delivery/context"
	"socksflow/internal/delivery/web/response"
	"socksflow/internal/delivery/web/view"
	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/domain/navigation"
	"socksflow/internal/errors"
	"socksflow/internal/session"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders errors that reach echo: an error page for browsers,
// a JSON body for clients that ask for JSON.
type ErrorMiddleware struct {
	rules    navigation.Rules
	sessions *session.Manager
	logger   *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(rules navigation.Rules, sessions *session.Manager, logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		rules:    rules,
		sessions: sessions,
		logger:   logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// A rejected token ends the session; the customer logs in again and comes back here.
	if domainerrors.IsUnauthorized(err) {
		m.sessions.ClearCookie(c.Response())
		target := c.Request().URL.Path
		if c.Request().Method != http.MethodGet {
			target = m.rules.DefaultTarget
		} else if raw := c.Request().URL.RawQuery; raw != "" {
			target += "?" + raw
		}
		_ = c.Redirect(RedirectStatus(c.Request()), m.rules.LoginURL(target))

		return
	}

	status, code, message := http.StatusInternalServerError, "INTERNAL_ERROR", domainerrors.GenericFailureMessage

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status, code, message = appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message()
	case errors.As(err, &httpErr):
		status, code = httpErr.Code, "HTTP_ERROR"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed",
			slog.Any("error", err),
			slog.String("cause", fmt.Sprintf("%T", errors.Cause(err))),
			slog.Int("status", status),
		)
	}

	if response.WantsJSON(c) {
		_ = response.Error(c, status, code, message, nil)

		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}

	page := view.Page{
		Title:         http.StatusText(status),
		Path:          c.Request().URL.Path,
		RequestID:     deliverycontext.GetRequestID(c),
		Authenticated: GetSession(c).Authenticated(),
		Data:          view.ErrorData{Status: status, Message: message},
	}
	if renderErr := c.Render(status, "error", page); renderErr != nil {
		logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(status, message)
	}
}
