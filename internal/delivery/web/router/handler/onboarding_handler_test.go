package handler

import (
	"net/http"
	"net/url"
	"testing"

	"socksflow/internal/domain/entity"
	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/domain/profile"
	"socksflow/internal/domain/service"
	mockUC "socksflow/internal/mocks/usecase"
	"socksflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOnboardingHandler(t *testing.T) (*testEnv, *mockUC.MockOnboardingUsecase) {
	env := newTestEnv(t)
	onboarding := mockUC.NewMockOnboardingUsecase(t)
	h := NewOnboardingHandler(OnboardingHandlerParams{
		Onboarding: onboarding,
		Rules:      navigationRules(),
		Logger:     env.logger,
	})

	env.e.GET("/complete-profile", h.Show)
	env.e.POST("/complete-profile/contact", h.SaveContact)
	env.e.POST("/complete-profile/address", h.SaveAddress)
	env.e.POST("/complete-profile/size", h.SaveSize)
	env.e.POST("/complete-profile/skip", h.Skip)

	return env, onboarding
}

func stateAt(step profile.Step, position int) *usecase.OnboardingState {
	return &usecase.OnboardingState{
		User:       &entity.User{Name: "Li Lei"},
		Resolution: profile.Resolution{Step: step},
		Position:   position,
		Total:      3,
	}
}

func terminalState() *usecase.OnboardingState {
	return &usecase.OnboardingState{
		User:         completeUser(),
		Resolution:   profile.Resolution{Terminal: true},
		Position:     3,
		Total:        3,
		Completeness: profile.Completeness{Complete: true},
	}
}

func TestOnboardingHandler_Show(t *testing.T) {
	t.Run("renders the earliest unmet step", func(t *testing.T) {
		env, onboarding := createTestOnboardingHandler(t)
		onboarding.EXPECT().Resolve(mock.Anything, anySession()).Return(stateAt(profile.StepAddress, 2), nil).Once()

		rec := env.do(http.MethodGet, "/complete-profile?return=/dashboard/subscriptions%3Fcreate%3Dtrue%26plan%3D1", nil, withToken())

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Step 2 of 3")
		assert.Contains(t, body, `action="/complete-profile/address"`)
		assert.Contains(t, body, `value="/dashboard/subscriptions?create=true&amp;plan=1"`)
	})

	t.Run("complete profile leaves for the return target", func(t *testing.T) {
		env, onboarding := createTestOnboardingHandler(t)
		onboarding.EXPECT().Resolve(mock.Anything, anySession()).Return(terminalState(), nil).Once()

		rec := env.do(http.MethodGet, "/complete-profile?return=/dashboard/orders", nil, withToken())

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/dashboard/orders", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("unsafe return target is replaced", func(t *testing.T) {
		env, onboarding := createTestOnboardingHandler(t)
		onboarding.EXPECT().Resolve(mock.Anything, anySession()).Return(terminalState(), nil).Once()

		rec := env.do(http.MethodGet, "/complete-profile?return=https://evil.example", nil, withToken())

		assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestOnboardingHandler_SaveContact(t *testing.T) {
	t.Run("advances to the next step", func(t *testing.T) {
		env, onboarding := createTestOnboardingHandler(t)
		onboarding.EXPECT().SaveContact(mock.Anything, anySession(), usecase.ContactInput{Name: "Li Lei", Phone: "13800000000"}).
			Return(stateAt(profile.StepAddress, 2), nil).Once()

		rec := env.do(http.MethodPost, "/complete-profile/contact", url.Values{
			"name":   {"Li Lei"},
			"phone":  {"13800000000"},
			"return": {"/dashboard/orders"},
		}, withToken())

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/complete-profile?return=/dashboard/orders", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("invalid phone stays on the step", func(t *testing.T) {
		env, _ := createTestOnboardingHandler(t)

		rec := env.do(http.MethodPost, "/complete-profile/contact", url.Values{
			"phone":  {"call me"},
			"return": {"/dashboard/orders"},
		}, withToken())

		assert.Equal(t, "/complete-profile?return=/dashboard/orders", rec.Header().Get(echo.HeaderLocation))
		flash := env.flashOf(rec)
		require.NotNil(t, flash)
		assert.NotEmpty(t, flash.FieldError("phone"))
		assert.Equal(t, "call me", flash.Value("phone"))
	})

	t.Run("concurrent save is reported", func(t *testing.T) {
		env, onboarding := createTestOnboardingHandler(t)
		onboarding.EXPECT().SaveContact(mock.Anything, anySession(), mock.Anything).
			Return(nil, domainerrors.ErrMutationInProgress).Once()

		rec := env.do(http.MethodPost, "/complete-profile/contact", url.Values{"phone": {"13800000000"}}, withToken())

		flash := env.flashOf(rec)
		require.NotNil(t, flash)
		assert.Equal(t, domainerrors.ErrMutationInProgress.Message(), flash.Message)
	})
}

func TestOnboardingHandler_SaveAddress(t *testing.T) {
	env, onboarding := createTestOnboardingHandler(t)
	onboarding.EXPECT().SaveAddress(mock.Anything, anySession(), &service.AddressInput{
		RecipientName:  "Li Lei",
		RecipientPhone: "13800000000",
		Province:       "Shanghai",
		City:           "Shanghai",
		District:       "Huangpu",
		Detail:         "1 Nanjing Rd",
		Tag:            entity.AddressTagHome,
	}).Return(stateAt(profile.StepSize, 3), nil).Once()

	rec := env.do(http.MethodPost, "/complete-profile/address", url.Values{
		"recipient_name":  {"Li Lei"},
		"recipient_phone": {"13800000000"},
		"province":        {"Shanghai"},
		"city":            {"Shanghai"},
		"district":        {"Huangpu"},
		"detail":          {"1 Nanjing Rd"},
		"tag":             {"home"},
	}, withToken())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/complete-profile?return=/dashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestOnboardingHandler_SaveSize(t *testing.T) {
	env, onboarding := createTestOnboardingHandler(t)
	onboarding.EXPECT().SaveSize(mock.Anything, anySession(), entity.SizeProfile{SockSize: "L", ShoeSize: "42"}).
		Return(terminalState(), nil).Once()

	rec := env.do(http.MethodPost, "/complete-profile/size", url.Values{
		"sock_size": {"L"},
		"shoe_size": {"42"},
		"return":    {"/dashboard/subscriptions?create=true&plan=1"},
	}, withToken())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard/subscriptions?create=true&plan=1", rec.Header().Get(echo.HeaderLocation))
	flash := env.flashOf(rec)
	require.NotNil(t, flash)
	assert.Equal(t, service.FlashSuccess, flash.Kind)
}

func TestOnboardingHandler_Skip(t *testing.T) {
	env, onboarding := createTestOnboardingHandler(t)
	onboarding.EXPECT().Skip(mock.Anything, anySession()).Return().Once()

	rec := env.do(http.MethodPost, "/complete-profile/skip", url.Values{
		"return": {"/dashboard/subscriptions?create=true&plan=1"},
	}, withToken())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard/subscriptions?create=true&plan=1", rec.Header().Get(echo.HeaderLocation))
	flash := env.flashOf(rec)
	require.NotNil(t, flash)
	assert.True(t, flash.OnboardingDeferred)
}
