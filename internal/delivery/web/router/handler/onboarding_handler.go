package handler

import (
	"log/slog"
	"net/http"

	"socksflow/internal/delivery/web/middleware"
	"socksflow/internal/delivery/web/view"
	"socksflow/internal/domain/constants"
	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/navigation"
	"socksflow/internal/domain/service"
	"socksflow/internal/errors"
	"socksflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OnboardingHandler serves the profile-completion wizard.
type OnboardingHandler struct {
	responder
	onboarding usecase.OnboardingUsecase
	rules      navigation.Rules
}

// OnboardingHandlerParams holds dependencies for OnboardingHandler, injected by Fx.
type OnboardingHandlerParams struct {
	fx.In

	Onboarding usecase.OnboardingUsecase
	Rules      navigation.Rules
	Logger     *slog.Logger
}

// NewOnboardingHandler is the constructor for OnboardingHandler.
func NewOnboardingHandler(params OnboardingHandlerParams) *OnboardingHandler {
	return &OnboardingHandler{
		responder:  responder{logger: params.Logger},
		onboarding: params.Onboarding,
		rules:      params.Rules,
	}
}

// Show renders the earliest unmet step, or leaves for the return target when
// nothing is missing.
func (h *OnboardingHandler) Show(c echo.Context) error {
	ret := h.returnTarget(c.QueryParam(constants.QueryReturn))

	state, err := h.onboarding.Resolve(c.Request().Context(), middleware.GetSession(c))
	if err != nil {
		return errors.WithStack(err)
	}
	if state.Resolution.Terminal {
		return h.redirect(c, ret)
	}

	return h.render(c, http.StatusOK, "complete_profile", "Complete your profile", view.WizardData{
		State:  state,
		Return: ret,
		Sizes:  entity.SockSizes,
	})
}

// SaveContact handles the contact step.
func (h *OnboardingHandler) SaveContact(c echo.Context) error {
	var form contactForm
	ret := h.returnTarget(c.FormValue(constants.QueryReturn))
	if err := bind(c, &form); err != nil {
		return h.fail(c, navigation.CompletionURL(ret), err, formValues(c, "name", "phone"))
	}

	state, err := h.onboarding.SaveContact(c.Request().Context(), middleware.GetSession(c), usecase.ContactInput{
		Name:  form.Name,
		Phone: form.Phone,
	})
	if err != nil {
		return h.fail(c, navigation.CompletionURL(ret), err, formValues(c, "name", "phone"))
	}

	return h.advance(c, state, ret)
}

// SaveAddress handles the address step.
func (h *OnboardingHandler) SaveAddress(c echo.Context) error {
	var form addressForm
	ret := h.returnTarget(c.FormValue(constants.QueryReturn))
	if err := bind(c, &form); err != nil {
		return h.fail(c, navigation.CompletionURL(ret), err, formValues(c, addressFields...))
	}

	state, err := h.onboarding.SaveAddress(c.Request().Context(), middleware.GetSession(c), form.input())
	if err != nil {
		return h.fail(c, navigation.CompletionURL(ret), err, formValues(c, addressFields...))
	}

	return h.advance(c, state, ret)
}

// SaveSize handles the size step.
func (h *OnboardingHandler) SaveSize(c echo.Context) error {
	var form sizeForm
	ret := h.returnTarget(c.FormValue(constants.QueryReturn))
	if err := bind(c, &form); err != nil {
		return h.fail(c, navigation.CompletionURL(ret), err, formValues(c, "sock_size", "shoe_size"))
	}

	state, err := h.onboarding.SaveSize(c.Request().Context(), middleware.GetSession(c), entity.SizeProfile{
		SockSize: form.SockSize,
		ShoeSize: form.ShoeSize,
	})
	if err != nil {
		return h.fail(c, navigation.CompletionURL(ret), err, formValues(c, "sock_size", "shoe_size"))
	}

	return h.advance(c, state, ret)
}

// Skip leaves the wizard. The destination shows a notice instead of sending
// the customer straight back.
func (h *OnboardingHandler) Skip(c echo.Context) error {
	var form returnForm
	_ = c.Bind(&form)
	ret := h.returnTarget(form.Return)

	h.onboarding.Skip(c.Request().Context(), middleware.GetSession(c))

	return h.redirectWithFlash(c, ret, &service.Flash{
		Kind:               service.FlashInfo,
		Message:            "You can complete your profile any time from the dashboard.",
		OnboardingDeferred: true,
	})
}

func (h *OnboardingHandler) advance(c echo.Context, state *usecase.OnboardingState, ret string) error {
	if state.Resolution.Terminal {
		return h.success(c, ret, "Your profile is complete.")
	}

	return h.success(c, navigation.CompletionURL(ret), "Saved.")
}

func (h *OnboardingHandler) returnTarget(raw string) string {
	return navigation.SanitizeTarget(raw, h.rules.DefaultTarget)
}

func (f *addressForm) input() *service.AddressInput {
	return &service.AddressInput{
		RecipientName:  f.RecipientName,
		RecipientPhone: f.RecipientPhone,
		Province:       f.Province,
		City:           f.City,
		District:       f.District,
		Detail:         f.Detail,
		PostalCode:     f.PostalCode,
		IsDefault:      f.IsDefault,
		Tag:            entity.AddressTag(f.Tag),
	}
}
