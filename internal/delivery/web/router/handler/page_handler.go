package handler

import (
	"log/slog"
	"net/http"

	"socksflow/internal/delivery/web/middleware"
	"socksflow/internal/delivery/web/view"
	"socksflow/internal/domain/constants"
	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/intent"
	"socksflow/internal/errors"
	"socksflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PageHandler serves the public pages and the plan-card entry point.
type PageHandler struct {
	responder
	catalog entity.Catalog
	intents usecase.IntentUsecase
}

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	Catalog entity.Catalog
	Intents usecase.IntentUsecase
	Logger  *slog.Logger
}

// NewPageHandler is the constructor for PageHandler.
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		responder: responder{logger: params.Logger},
		catalog:   params.Catalog,
		intents:   params.Intents,
	}
}

// Home renders the marketing page with the plan catalogue.
func (h *PageHandler) Home(c echo.Context) error {
	return h.render(c, http.StatusOK, "home", "", view.HomeData{Catalog: h.catalog})
}

// Subscribe is the plan card action. It redirects to login or the creation
// surface, or shows the profile modal over the plan list.
func (h *PageHandler) Subscribe(c echo.Context) error {
	planIndex := entity.ParsePlanIndex(c.QueryParam(constants.QueryPlan))

	decision, err := h.intents.SelectPlan(c.Request().Context(), middleware.GetSession(c), planIndex)
	if err != nil {
		return errors.WithStack(err)
	}

	if decision.Outcome == intent.OutcomeProfileModal {
		return h.render(c, http.StatusOK, "home", "Complete your profile", view.HomeData{
			Catalog: h.catalog,
			Gate:    decision,
		})
	}

	return h.redirect(c, decision.Location)
}

// Terms renders the terms of service.
func (h *PageHandler) Terms(c echo.Context) error {
	return h.render(c, http.StatusOK, "terms", "Terms of service", nil)
}

// Privacy renders the privacy policy.
func (h *PageHandler) Privacy(c echo.Context) error {
	return h.render(c, http.StatusOK, "privacy", "Privacy policy", nil)
}

// ForgotPassword renders the password reset instructions.
func (h *PageHandler) ForgotPassword(c echo.Context) error {
	return h.render(c, http.StatusOK, "forgot_password", "Forgot password", nil)
}
