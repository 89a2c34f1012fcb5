package handler

import (
	"net/http"
	"testing"

	"socksflow/internal/domain/intent"
	"socksflow/internal/domain/profile"
	mockUC "socksflow/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestPageHandler(t *testing.T) (*testEnv, *mockUC.MockIntentUsecase) {
	env := newTestEnv(t)
	intents := mockUC.NewMockIntentUsecase(t)
	h := NewPageHandler(PageHandlerParams{Catalog: testCatalog(), Intents: intents, Logger: env.logger})

	env.e.GET("/", h.Home)
	env.e.GET("/subscribe", h.Subscribe)
	env.e.GET("/terms", h.Terms)
	env.e.GET("/auth/forgot-password", h.ForgotPassword)
	env.e.GET("/health", HealthCheck)

	return env, intents
}

func TestPageHandler_Home(t *testing.T) {
	env, _ := createTestPageHandler(t)

	rec := env.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Basic")
	assert.Contains(t, rec.Body.String(), "/subscribe?plan=1")
	assert.NotContains(t, rec.Body.String(), `role="dialog"`)
}

func TestPageHandler_Subscribe(t *testing.T) {
	t.Run("anonymous is sent to login", func(t *testing.T) {
		env, intents := createTestPageHandler(t)
		intents.EXPECT().SelectPlan(mock.Anything, mock.Anything, 1).Return(&intent.Decision{
			Outcome:  intent.OutcomeLogin,
			Location: "/auth/login?redirect=/dashboard/subscriptions%3Fcreate%3Dtrue%26plan%3D1",
		}, nil).Once()

		rec := env.do(http.MethodGet, "/subscribe?plan=1", nil)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/auth/login?redirect=/dashboard/subscriptions%3Fcreate%3Dtrue%26plan%3D1", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("unparsable plan is passed as -1", func(t *testing.T) {
		env, intents := createTestPageHandler(t)
		intents.EXPECT().SelectPlan(mock.Anything, anySession(), -1).Return(&intent.Decision{
			Outcome:  intent.OutcomeCreate,
			Location: intent.CreationURL(0),
		}, nil).Once()

		rec := env.do(http.MethodGet, "/subscribe?plan=abc", nil, withToken())

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/dashboard/subscriptions?create=true&plan=0", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("incomplete profile shows the modal", func(t *testing.T) {
		env, intents := createTestPageHandler(t)
		decision := intent.Decide(testCatalog(), navigationRules(), intent.Input{
			PlanIndex:     1,
			Authenticated: true,
			Completeness:  profile.Completeness{Missing: []string{profile.MissingPhone, profile.MissingSize}},
		})
		intents.EXPECT().SelectPlan(mock.Anything, anySession(), 1).Return(&decision, nil).Once()

		rec := env.do(http.MethodGet, "/subscribe?plan=1", nil, withToken())

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `role="dialog"`)
		assert.Contains(t, body, "phone number")
		assert.Contains(t, body, "size information")
		assert.Contains(t, body, "/complete-profile?return=/dashboard/subscriptions%3Fcreate%3Dtrue%26plan%3D1")
	})
}

func TestPageHandler_StaticPages(t *testing.T) {
	env, _ := createTestPageHandler(t)

	for _, path := range []string{"/terms", "/auth/forgot-password"} {
		rec := env.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := env.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
