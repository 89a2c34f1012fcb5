package handler

import (
	"net/http"
	"testing"

	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/domain/profile"
	mockUC "socksflow/internal/mocks/usecase"
	"socksflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestDashboardHandler(t *testing.T) (*testEnv, *mockUC.MockDashboardUsecase) {
	env := newTestEnv(t)
	dashboard := mockUC.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(DashboardHandlerParams{Dashboard: dashboard, Logger: env.logger})

	env.e.GET("/dashboard", h.Overview)

	return env, dashboard
}

func TestDashboardHandler_Overview(t *testing.T) {
	t.Run("incomplete profile shows the banner", func(t *testing.T) {
		env, dashboard := createTestDashboardHandler(t)
		dashboard.EXPECT().Overview(mock.Anything, anySession()).Return(&usecase.Overview{
			User:         completeUser(),
			Completeness: profile.Completeness{Missing: []string{profile.MissingSize}},
		}, nil).Once()

		rec := env.do(http.MethodGet, "/dashboard", nil, withToken())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/complete-profile?return=/dashboard")
	})

	t.Run("complete profile has no banner", func(t *testing.T) {
		env, dashboard := createTestDashboardHandler(t)
		dashboard.EXPECT().Overview(mock.Anything, anySession()).Return(&usecase.Overview{
			User:               completeUser(),
			Completeness:       profile.Completeness{Complete: true},
			ActiveSubscription: sampleSubscription(),
		}, nil).Once()

		rec := env.do(http.MethodGet, "/dashboard", nil, withToken())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "/complete-profile")
		assert.Contains(t, rec.Body.String(), "Plus")
	})

	t.Run("rejected token ends the session", func(t *testing.T) {
		env, dashboard := createTestDashboardHandler(t)
		dashboard.EXPECT().Overview(mock.Anything, anySession()).
			Return(nil, domainerrors.NewAPIError(http.StatusUnauthorized, "")).Once()

		rec := env.do(http.MethodGet, "/dashboard", nil, withToken())

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/auth/login?redirect=/dashboard", rec.Header().Get(echo.HeaderLocation))
	})
}
