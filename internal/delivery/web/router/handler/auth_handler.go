package handler

import (
	"log/slog"
	"net/http"

	"socksflow/internal/delivery/web/middleware"
	"socksflow/internal/delivery/web/view"
	"socksflow/internal/domain/constants"
	"socksflow/internal/domain/navigation"
	"socksflow/internal/session"
	"socksflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandler handles sign in, sign up and sign out.
type AuthHandler struct {
	responder
	accounts usecase.AccountUsecase
	sessions *session.Manager
	rules    navigation.Rules
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Accounts usecase.AccountUsecase
	Sessions *session.Manager
	Rules    navigation.Rules
	Logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		responder: responder{logger: params.Logger},
		accounts:  params.Accounts,
		sessions:  params.Sessions,
		rules:     params.Rules,
	}
}

// LoginPage renders the login form. Only a safe redirect target is carried along.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "login", "Sign in", view.AuthData{
		Redirect: safeRedirect(c.QueryParam(constants.QueryRedirect)),
	})
}

// Login handles the login form.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	back := withRedirect(constants.PathLogin, c.FormValue(constants.QueryRedirect))
	if err := bind(c, &form); err != nil {
		return h.fail(c, back, err, formValues(c, "email"))
	}

	sess, err := h.accounts.Login(c.Request().Context(), usecase.LoginInput{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return h.fail(c, back, err, formValues(c, "email"))
	}

	h.sessions.SetCookie(c.Response(), sess.Token())
	middleware.SetSession(c, sess)

	return h.redirect(c, h.rules.PostLoginTarget(form.Redirect))
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "register", "Create account", view.AuthData{
		Redirect: safeRedirect(c.QueryParam(constants.QueryRedirect)),
	})
}

// Register creates the account and signs the customer in.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	back := withRedirect("/auth/register", c.FormValue(constants.QueryRedirect))
	keep := []string{"name", "email", "phone"}
	if err := bind(c, &form); err != nil {
		return h.fail(c, back, err, formValues(c, keep...))
	}

	sess, err := h.accounts.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Phone:    form.Phone,
	})
	if err != nil {
		return h.fail(c, back, err, formValues(c, keep...))
	}

	h.sessions.SetCookie(c.Response(), sess.Token())
	middleware.SetSession(c, sess)

	return h.success(c, h.rules.PostLoginTarget(form.Redirect), "Welcome to SocksFlow!")
}

// Logout ends the session. The cookie is cleared even when the API call fails.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.accounts.Logout(c.Request().Context(), middleware.GetSession(c))
	h.sessions.ClearCookie(c.Response())

	return h.redirect(c, constants.PathHome)
}

func safeRedirect(raw string) string {
	if !navigation.IsRelativeTarget(raw) {
		return ""
	}

	return raw
}

func withRedirect(path, raw string) string {
	if target := safeRedirect(raw); target != "" {
		return path + "?" + constants.QueryRedirect + "=" + navigation.EscapeTarget(target)
	}

	return path
}
