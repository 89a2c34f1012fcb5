package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"socksflow/internal/delivery/web/middleware"
	"socksflow/internal/delivery/web/view"
	"socksflow/internal/domain/constants"
	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/intent"
	"socksflow/internal/domain/navigation"
	"socksflow/internal/errors"
	"socksflow/internal/session"
	"socksflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandler serves the subscriptions page and its transitions.
type SubscriptionHandler struct {
	responder
	subscriptions usecase.SubscriptionUsecase
	catalog       entity.Catalog
}

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	Subscriptions usecase.SubscriptionUsecase
	Catalog       entity.Catalog
	Logger        *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler.
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		responder:     responder{logger: params.Logger},
		subscriptions: params.Subscriptions,
		catalog:       params.Catalog,
	}
}

// List renders one of three views: the creation surface (?create=true&plan=N),
// a subscription's detail (?id=ID) or the list.
func (h *SubscriptionHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.GetSession(c)

	if c.QueryParam(constants.QueryCreate) == "true" {
		return h.creation(c, entity.ParsePlanIndex(c.QueryParam(constants.QueryPlan)))
	}

	if raw := c.QueryParam("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return h.redirect(c, constants.PathSubscriptions)
		}
		sub, err := h.subscriptions.Get(ctx, sess, id)
		if err != nil {
			return errors.WithStack(err)
		}

		return h.render(c, http.StatusOK, "subscriptions", sub.PlanName, view.SubscriptionsData{
			Selected:    sub,
			Frequencies: view.Frequencies,
			Sizes:       entity.SockSizes,
		})
	}

	subs, err := h.subscriptions.List(ctx, sess)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.render(c, http.StatusOK, "subscriptions", "Subscriptions", view.SubscriptionsData{Subscriptions: subs})
}

// creation re-checks completeness. An incomplete profile goes to the wizard,
// unless the wizard was just skipped; then a notice is shown instead.
func (h *SubscriptionHandler) creation(c echo.Context, planIndex int) error {
	creation, err := h.subscriptions.PrepareCreation(c.Request().Context(), middleware.GetSession(c), planIndex)
	if err != nil {
		return errors.WithStack(err)
	}

	data := view.SubscriptionsData{
		Creation:    creation,
		Frequencies: view.Frequencies,
		Sizes:       entity.SockSizes,
	}
	if !creation.Completeness.Complete {
		data.CompleteURL = navigation.CompletionURL(intent.CreationURL(creation.PlanIndex))
		flash := middleware.GetFlash(c)
		if flash == nil || !flash.OnboardingDeferred {
			return h.redirect(c, data.CompleteURL)
		}
		data.Deferred = true
	}

	return h.render(c, http.StatusOK, "subscriptions", "Subscribe to "+creation.Plan.Name, data)
}

// Create handles the creation form.
func (h *SubscriptionHandler) Create(c echo.Context) error {
	var form subscriptionForm
	keep := []string{"plan_code", "frequency", "size", "note", "address_id", "auto_renew"}
	back := intent.CreationURL(h.planIndex(c.FormValue("plan_code")))
	if err := bind(c, &form); err != nil {
		return h.fail(c, back, err, formValues(c, keep...))
	}

	sub, err := h.subscriptions.Create(c.Request().Context(), middleware.GetSession(c), usecase.CreateSubscriptionInput{
		PlanCode:  form.PlanCode,
		Frequency: entity.DeliveryFrequency(form.Frequency),
		Size:      form.Size,
		Note:      form.Note,
		AddressID: form.AddressID,
		AutoRenew: form.AutoRenew,
	})
	if err != nil {
		return h.fail(c, back, err, formValues(c, keep...))
	}

	return h.success(c, detailURL(sub.ID), "Your subscription to "+sub.PlanName+" is set up.")
}

// Pause requests a pause.
func (h *SubscriptionHandler) Pause(c echo.Context) error {
	return h.transition(c, h.subscriptions.Pause, "Pause requested.")
}

// Resume requests a resume.
func (h *SubscriptionHandler) Resume(c echo.Context) error {
	return h.transition(c, h.subscriptions.Resume, "Resume requested.")
}

// Cancel requests a cancellation.
func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	return h.transition(c, h.subscriptions.Cancel, "Cancellation requested.")
}

// Preferences saves the delivery preferences.
func (h *SubscriptionHandler) Preferences(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var form preferencesForm
	keep := []string{"frequency", "size", "note"}
	if err := bind(c, &form); err != nil {
		return h.fail(c, detailURL(id), err, formValues(c, keep...))
	}

	_, err = h.subscriptions.UpdatePreferences(c.Request().Context(), middleware.GetSession(c), id, entity.DeliveryPreferences{
		Frequency: entity.DeliveryFrequency(form.Frequency),
		Size:      form.Size,
		Note:      form.Note,
	})
	if err != nil {
		return h.fail(c, detailURL(id), err, formValues(c, keep...))
	}

	return h.success(c, detailURL(id), "Delivery preferences saved.")
}

// transition sends a status change and lands on the detail view, which shows
// whatever the API confirms.
func (h *SubscriptionHandler) transition(
	c echo.Context,
	do func(ctx context.Context, sess *session.Session, id int64) error,
	message string,
) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := do(c.Request().Context(), middleware.GetSession(c), id); err != nil {
		return h.fail(c, detailURL(id), err, nil)
	}

	return h.success(c, detailURL(id), message)
}

func (h *SubscriptionHandler) planIndex(code string) int {
	for i, p := range h.catalog {
		if p.Code == code {
			return i
		}
	}

	return 0
}

func detailURL(id int64) string {
	return constants.PathSubscriptions + "?id=" + strconv.FormatInt(id, 10)
}
