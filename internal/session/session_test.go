package session

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"socksflow/config"
	"socksflow/internal/domain/entity"
	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/domain/profile"
	mockSvc "socksflow/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, *mockSvc.MockAuthService) {
	t.Helper()

	auth := mockSvc.NewMockAuthService(t)
	m := NewManager(ManagerParams{
		Auth:         auth,
		Requirements: profile.DefaultRequirements(),
		Config: &config.Config{
			Session: &config.SessionConfig{
				CookieName: "access_token",
				MaxAge:     24 * time.Hour,
			},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return m, auth
}

func TestManager_Open(t *testing.T) {
	m, _ := newTestManager(t)

	anon := m.Open("")
	assert.False(t, anon.Authenticated())
	assert.Empty(t, anon.ID())

	a := m.Open("token-a")
	b := m.Open("token-a")
	c := m.Open("token-b")
	assert.True(t, a.Authenticated())
	assert.Equal(t, "token-a", a.Token())
	assert.Len(t, a.ID(), 16)
	assert.Equal(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ID(), c.ID())
	assert.NotContains(t, a.ID(), "token")
}

func TestSession_User_Memoised(t *testing.T) {
	m, auth := newTestManager(t)
	ctx := context.Background()
	user := &entity.User{ID: 7, Name: "Li Lei"}

	auth.EXPECT().FetchUser(ctx, "tok").Return(user, nil).Once()

	s := m.Open("tok")
	got, err := s.User(ctx)
	require.NoError(t, err)
	assert.Same(t, user, got)

	got, err = s.User(ctx)
	require.NoError(t, err)
	assert.Same(t, user, got)
}

func TestSession_User_Anonymous(t *testing.T) {
	m, _ := newTestManager(t)

	user, err := m.Open("").User(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSession_User_FailureNotCached(t *testing.T) {
	m, auth := newTestManager(t)
	ctx := context.Background()

	auth.EXPECT().FetchUser(ctx, "tok").Return(nil, domainerrors.NewAPIError(http.StatusServiceUnavailable, "")).Once()
	auth.EXPECT().FetchUser(ctx, "tok").Return(&entity.User{ID: 1}, nil).Once()

	s := m.Open("tok")
	_, err := s.User(ctx)
	require.Error(t, err)

	user, err := s.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestSession_RefreshAndRemember(t *testing.T) {
	m, auth := newTestManager(t)
	ctx := context.Background()

	auth.EXPECT().FetchUser(ctx, "tok").Return(&entity.User{ID: 1, Phone: ""}, nil).Once()
	auth.EXPECT().FetchUser(ctx, "tok").Return(&entity.User{ID: 1, Phone: "13800138000"}, nil).Once()

	s := m.Open("tok")
	_, err := s.User(ctx)
	require.NoError(t, err)

	user, err := s.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, "13800138000", user.Phone)

	s.Remember(&entity.User{ID: 1, Name: "remembered"})
	user, err = s.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, "remembered", user.Name)
}

func TestSession_Completeness(t *testing.T) {
	m, auth := newTestManager(t)
	ctx := context.Background()

	c, err := m.Open("").Completeness(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{profile.MissingLogin}, c.Missing)

	auth.EXPECT().FetchUser(ctx, "tok").Return(&entity.User{ID: 1, Phone: "13800138000"}, nil)
	c, err = m.Open("tok").Completeness(ctx)
	require.NoError(t, err)
	assert.False(t, c.Complete)
	assert.Equal(t, []string{profile.MissingAddress, profile.MissingSize}, c.Missing)
}

func TestManager_Close(t *testing.T) {
	t.Run("logout failure still clears the session", func(t *testing.T) {
		m, auth := newTestManager(t)
		auth.EXPECT().Logout(mock.Anything, "tok").Return(errors.New("connection refused"))

		s := m.Open("tok")
		m.Close(context.Background(), s)
		assert.False(t, s.Authenticated())
		assert.Empty(t, s.Token())
	})

	t.Run("anonymous is a no-op", func(t *testing.T) {
		m, _ := newTestManager(t)
		m.Close(context.Background(), m.Open(""))
	})
}

func TestManager_Cookies(t *testing.T) {
	m, _ := newTestManager(t)

	rec := httptest.NewRecorder()
	m.SetCookie(rec, "tok")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, 86400, cookies[0].MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookies[0])
	assert.True(t, m.HasToken(req))
	assert.Equal(t, "tok", m.FromRequest(req).Token())

	bare := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, m.HasToken(bare))
	assert.False(t, m.FromRequest(bare).Authenticated())

	rec = httptest.NewRecorder()
	m.ClearCookie(rec)
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
}
