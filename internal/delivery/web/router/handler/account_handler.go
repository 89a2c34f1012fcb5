package handler

import (
	"log/slog"
	"net/http"

	"socksflow/internal/delivery/web/middleware"
	"socksflow/internal/delivery/web/view"
	"socksflow/internal/domain/entity"
	"socksflow/internal/errors"
	"socksflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	pathProfile  = "/dashboard/profile"
	pathSettings = "/dashboard/settings"
)

// AccountHandler serves the profile and settings pages.
type AccountHandler struct {
	responder
	accounts usecase.AccountUsecase
}

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	Accounts usecase.AccountUsecase
	Logger   *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		responder: responder{logger: params.Logger},
		accounts:  params.Accounts,
	}
}

// Profile renders the profile form.
func (h *AccountHandler) Profile(c echo.Context) error {
	user, err := middleware.GetSession(c).User(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		user = &entity.User{}
	}

	return h.render(c, http.StatusOK, "profile", "Profile", view.ProfileData{User: user, Sizes: entity.SockSizes})
}

// UpdateProfile saves the profile form. The email cannot be changed here.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var form profileForm
	keep := []string{"name", "phone", "sock_size", "shoe_size", "notes"}
	if err := bind(c, &form); err != nil {
		return h.fail(c, pathProfile, err, formValues(c, keep...))
	}

	_, err := h.accounts.UpdateProfile(c.Request().Context(), middleware.GetSession(c), usecase.ProfileInput{
		Name:     form.Name,
		Phone:    form.Phone,
		SockSize: form.SockSize,
		ShoeSize: form.ShoeSize,
		Notes:    form.Notes,
	})
	if err != nil {
		return h.fail(c, pathProfile, err, formValues(c, keep...))
	}

	return h.success(c, pathProfile, "Profile saved.")
}

// Settings renders the password form.
func (h *AccountHandler) Settings(c echo.Context) error {
	return h.render(c, http.StatusOK, "settings", "Settings", nil)
}

// ChangePassword handles the password form. Passwords are never echoed back.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	var form passwordForm
	if err := bind(c, &form); err != nil {
		return h.fail(c, pathSettings, err, nil)
	}

	err := h.accounts.ChangePassword(c.Request().Context(), middleware.GetSession(c), usecase.ChangePasswordInput{
		CurrentPassword: form.CurrentPassword,
		NewPassword:     form.NewPassword,
	})
	if err != nil {
		return h.fail(c, pathSettings, err, nil)
	}

	return h.success(c, pathSettings, "Password changed.")
}
