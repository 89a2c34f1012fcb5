package handler

import (
	"log/slog"
	"net/http"

	"socksflow/internal/delivery/web/middleware"
	"socksflow/internal/delivery/web/view"
	"socksflow/internal/domain/constants"
	"socksflow/internal/domain/navigation"
	"socksflow/internal/errors"
	"socksflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandler serves the dashboard landing page.
type DashboardHandler struct {
	responder
	dashboard usecase.DashboardUsecase
}

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	Dashboard usecase.DashboardUsecase
	Logger    *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		responder: responder{logger: params.Logger},
		dashboard: params.Dashboard,
	}
}

// Overview renders the dashboard with a completeness banner when needed.
func (h *DashboardHandler) Overview(c echo.Context) error {
	overview, err := h.dashboard.Overview(c.Request().Context(), middleware.GetSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	data := view.DashboardData{Overview: overview}
	if !overview.Completeness.Complete {
		data.CompleteURL = navigation.CompletionURL(constants.PathDashboard)
	}

	return h.render(c, http.StatusOK, "dashboard", "Dashboard", data)
}
