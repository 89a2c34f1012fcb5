package impl

import (
	"context"
	"net/http"
	"testing"

	"socksflow/internal/domain/entity"
	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/domain/service"
	mockSvc "socksflow/internal/mocks/service"
	"socksflow/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAccountService(t *testing.T) (*accountService, *mockSvc.MockAuthService) {
	t.Helper()

	auth := mockSvc.NewMockAuthService(t)
	svc := NewAccountService(AccountServiceParams{
		Auth:     auth,
		Sessions: newSessionManager(auth),
		Tracker:  newTracker(),
	}).(*accountService)

	return svc, auth
}

func TestAccountService_Login(t *testing.T) {
	svc, auth := createTestAccountService(t)
	ctx := context.Background()

	auth.EXPECT().Login(ctx, "lilei@example.com", "secret123").
		Return(&service.AuthTokens{AccessToken: "access", RefreshToken: "refresh"}, nil)

	sess, err := svc.Login(ctx, usecase.LoginInput{Email: " lilei@example.com ", Password: "secret123"})
	require.NoError(t, err)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "access", sess.Token())
}

func TestAccountService_Login_InvalidCredentials(t *testing.T) {
	svc, auth := createTestAccountService(t)
	ctx := context.Background()

	auth.EXPECT().Login(ctx, "lilei@example.com", "wrong").
		Return(nil, domainerrors.NewAPIError(http.StatusUnauthorized, "Incorrect email or password"))

	sess, err := svc.Login(ctx, usecase.LoginInput{Email: "lilei@example.com", Password: "wrong"})
	assert.Nil(t, sess)
	assert.Equal(t, "Incorrect email or password", domainerrors.UserMessage(err))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.False(t, domainerrors.IsUnauthorized(err))
}

func TestAccountService_Register(t *testing.T) {
	svc, auth := createTestAccountService(t)
	ctx := context.Background()

	auth.EXPECT().Register(ctx, &service.RegisterInput{
		Name:     "Li Lei",
		Email:    "lilei@example.com",
		Password: "secret123",
		Phone:    "",
	}).Return(&service.AuthTokens{AccessToken: "fresh"}, nil)

	sess, err := svc.Register(ctx, usecase.RegisterInput{Name: "Li Lei ", Email: "lilei@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", sess.Token())
}

func TestAccountService_Logout(t *testing.T) {
	svc, auth := createTestAccountService(t)
	ctx := context.Background()

	auth.EXPECT().Logout(ctx, "tok").Return(domainerrors.NewAPIError(http.StatusInternalServerError, ""))

	sess := svc.sessions.Open("tok")
	svc.Logout(ctx, sess)
	assert.False(t, sess.Authenticated())
}

func TestAccountService_UpdateProfile(t *testing.T) {
	svc, auth := createTestAccountService(t)

	updated := completeUser()
	updated.Name = "Lei Li"
	auth.EXPECT().
		UpdateProfile(mock.Anything, "tok", mock.MatchedBy(func(u *service.ProfileUpdate) bool {
			return *u.Name == "Lei Li" && *u.Phone == "13800138000" && u.SizeProfile.SockSize == "XL" && u.SizeProfile.ShoeSize == "44"
		})).
		Return(updated, nil)

	sess := svc.sessions.Open("tok")
	user, err := svc.UpdateProfile(context.Background(), sess, usecase.ProfileInput{
		Name:     "Lei Li",
		Phone:    "13800138000",
		SockSize: "XL",
		ShoeSize: "44",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lei Li", user.Name)

	cached, err := sess.User(context.Background())
	require.NoError(t, err)
	assert.Same(t, updated, cached)
}

func TestAccountService_UpdateProfile_KeepsSizeWhenBlank(t *testing.T) {
	svc, auth := createTestAccountService(t)

	auth.EXPECT().
		UpdateProfile(mock.Anything, "tok", mock.MatchedBy(func(u *service.ProfileUpdate) bool { return u.SizeProfile == nil })).
		Return(&entity.User{ID: 1}, nil)

	_, err := svc.UpdateProfile(context.Background(), svc.sessions.Open("tok"), usecase.ProfileInput{Name: "Li Lei"})
	require.NoError(t, err)
}

func TestAccountService_ChangePassword(t *testing.T) {
	svc, auth := createTestAccountService(t)

	auth.EXPECT().ChangePassword(mock.Anything, "tok", "old", "new-secret").
		Return(domainerrors.NewAPIError(http.StatusBadRequest, "Current password is incorrect"))

	err := svc.ChangePassword(context.Background(), svc.sessions.Open("tok"), usecase.ChangePasswordInput{
		CurrentPassword: "old",
		NewPassword:     "new-secret",
	})
	assert.Equal(t, "Current password is incorrect", domainerrors.UserMessage(err))
}
