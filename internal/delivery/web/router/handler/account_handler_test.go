package handler

import (
	"net/http"
	"net/url"
	"testing"

	domainerrors "socksflow/internal/domain/errors"
	mockUC "socksflow/internal/mocks/usecase"
	"socksflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAccountHandler(t *testing.T) (*testEnv, *mockUC.MockAccountUsecase) {
	env := newTestEnv(t)
	accounts := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{Accounts: accounts, Logger: env.logger})

	env.e.GET("/dashboard/profile", h.Profile)
	env.e.POST("/dashboard/profile", h.UpdateProfile)
	env.e.GET("/dashboard/settings", h.Settings)
	env.e.POST("/dashboard/settings/password", h.ChangePassword)

	return env, accounts
}

func TestAccountHandler_Profile(t *testing.T) {
	env, _ := createTestAccountHandler(t)
	env.auth.EXPECT().FetchUser(mock.Anything, testToken).Return(completeUser(), nil).Once()

	rec := env.do(http.MethodGet, "/dashboard/profile", nil, withToken())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lilei@example.com")
	assert.Contains(t, rec.Body.String(), `<option value="L" selected>`)
}

func TestAccountHandler_ProfileExpiredToken(t *testing.T) {
	env, _ := createTestAccountHandler(t)
	env.auth.EXPECT().FetchUser(mock.Anything, testToken).
		Return(nil, domainerrors.NewAPIError(http.StatusUnauthorized, "token expired")).Once()

	rec := env.do(http.MethodGet, "/dashboard/profile", nil, withToken())

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login?redirect=/dashboard/profile", rec.Header().Get(echo.HeaderLocation))
	token, ok := cookieValue(rec, "access_token")
	assert.True(t, ok)
	assert.Empty(t, token)
}

func TestAccountHandler_UpdateProfile(t *testing.T) {
	env, accounts := createTestAccountHandler(t)
	accounts.EXPECT().UpdateProfile(mock.Anything, anySession(), usecase.ProfileInput{
		Name:     "Li Lei",
		Phone:    "13800000000",
		SockSize: "XL",
	}).Return(completeUser(), nil).Once()

	rec := env.do(http.MethodPost, "/dashboard/profile", url.Values{
		"name":      {"Li Lei"},
		"phone":     {"13800000000"},
		"sock_size": {"XL"},
	}, withToken())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard/profile", rec.Header().Get(echo.HeaderLocation))
}

func TestAccountHandler_UpdateProfileFailureKeepsSizes(t *testing.T) {
	env, accounts := createTestAccountHandler(t)
	accounts.EXPECT().UpdateProfile(mock.Anything, anySession(), mock.Anything).
		Return(nil, domainerrors.NewAPIError(http.StatusBadRequest, "Phone already in use")).Once()

	rec := env.do(http.MethodPost, "/dashboard/profile", url.Values{
		"name":      {"Li Lei"},
		"phone":     {"13800000000"},
		"sock_size": {"XL"},
		"shoe_size": {"43"},
		"notes":     {"Wide toes"},
	}, withToken())

	assert.Equal(t, "/dashboard/profile", rec.Header().Get(echo.HeaderLocation))
	flash := env.flashOf(rec)
	require.NotNil(t, flash)
	assert.Equal(t, "Phone already in use", flash.Message)
	assert.Equal(t, "XL", flash.Value("sock_size"))
	assert.Equal(t, "43", flash.Value("shoe_size"))
	assert.Equal(t, "Wide toes", flash.Value("notes"))
}

func TestAccountHandler_ChangePassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env, accounts := createTestAccountHandler(t)
		accounts.EXPECT().ChangePassword(mock.Anything, anySession(), usecase.ChangePasswordInput{
			CurrentPassword: "old-secret",
			NewPassword:     "new-secret",
		}).Return(nil).Once()

		rec := env.do(http.MethodPost, "/dashboard/settings/password", url.Values{
			"current_password":     {"old-secret"},
			"new_password":         {"new-secret"},
			"new_password_confirm": {"new-secret"},
		}, withToken())

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		flash := env.flashOf(rec)
		require.NotNil(t, flash)
		assert.Equal(t, "Password changed.", flash.Message)
	})

	t.Run("same password and mismatch", func(t *testing.T) {
		env, _ := createTestAccountHandler(t)

		rec := env.do(http.MethodPost, "/dashboard/settings/password", url.Values{
			"current_password":     {"old-secret"},
			"new_password":         {"old-secret"},
			"new_password_confirm": {"other-secret"},
		}, withToken())

		flash := env.flashOf(rec)
		require.NotNil(t, flash)
		assert.NotEmpty(t, flash.FieldError("new_password"))
		assert.Equal(t, "Does not match", flash.FieldError("new_password_confirm"))
		assert.Empty(t, flash.Form)
	})
}
