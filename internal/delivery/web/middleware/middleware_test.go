package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"socksflow/config"
	deliverycontext "socksflow/internal/delivery/context"
	"socksflow/internal/delivery/web/view"
	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/domain/navigation"
	"socksflow/internal/domain/profile"
	"socksflow/internal/domain/service"
	mockSvc "socksflow/internal/mocks/service"
	"socksflow/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			CookieName: "access_token",
			MaxAge:     time.Hour,
			FlashTTL:   5 * time.Minute,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newManager(t *testing.T) *session.Manager {
	t.Helper()

	return session.NewManager(session.ManagerParams{
		Auth:         mockSvc.NewMockAuthService(t),
		Requirements: profile.DefaultRequirements(),
		Config:       testConfig(),
		Logger:       discardLogger(),
	})
}

func TestSessionMiddleware(t *testing.T) {
	e := echo.New()
	m := NewSessionMiddleware(newManager(t))

	var (
		got       *session.Session
		sessionID string
	)
	handler := m.Load(func(c echo.Context) error {
		got = GetSession(c)
		sessionID = deliverycontext.GetSessionIDFromContext(c.Request().Context())

		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "tok"})
	require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))
	assert.True(t, got.Authenticated())
	assert.Equal(t, "tok", got.Token())
	assert.Equal(t, got.ID(), sessionID)
	assert.NotContains(t, sessionID, "tok")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))
	assert.False(t, got.Authenticated())
	assert.Empty(t, sessionID)

	// Without the middleware an anonymous session is returned.
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetSession(c))
	assert.False(t, GetSession(c).Authenticated())
}

func TestFlashMiddleware(t *testing.T) {
	e := echo.New()

	t.Run("decodes and clears incoming flash", func(t *testing.T) {
		codec := mockSvc.NewMockFlashCodec(t)
		codec.EXPECT().Decode("signed").Return(&service.Flash{Kind: service.FlashSuccess, Message: "Saved"}, nil).Once()
		m := NewFlashMiddleware(codec, testConfig(), discardLogger())

		var got *service.Flash
		handler := m.Handle(func(c echo.Context) error {
			got = GetFlash(c)

			return nil
		})

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: "flash", Value: "signed"})
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))

		require.NotNil(t, got)
		assert.Equal(t, "Saved", got.Message)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "flash=;")
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
	})

	t.Run("drops unreadable flash", func(t *testing.T) {
		codec := mockSvc.NewMockFlashCodec(t)
		codec.EXPECT().Decode("forged").Return(nil, errors.New("signature is invalid")).Once()
		m := NewFlashMiddleware(codec, testConfig(), discardLogger())

		handler := m.Handle(func(c echo.Context) error {
			assert.Nil(t, GetFlash(c))

			return nil
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "flash", Value: "forged"})
		require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))
	})

	t.Run("set flash writes cookie", func(t *testing.T) {
		codec := mockSvc.NewMockFlashCodec(t)
		flash := &service.Flash{Kind: service.FlashError, Message: "Nope"}
		codec.EXPECT().Encode(flash).Return("encoded", nil).Once()
		m := NewFlashMiddleware(codec, testConfig(), discardLogger())

		handler := m.Handle(func(c echo.Context) error {
			return SetFlash(c, flash)
		})

		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/login", nil), rec)))
		cookie := rec.Header().Get("Set-Cookie")
		assert.Contains(t, cookie, "flash=encoded")
		assert.Contains(t, cookie, "HttpOnly")
		assert.Contains(t, cookie, "Max-Age=300")
	})

	t.Run("set flash without middleware", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
		assert.Error(t, SetFlash(c, &service.Flash{}))
	})
}

func TestNavigationGuard(t *testing.T) {
	e := echo.New()
	guard := NewNavigationGuard(navigation.DefaultRules(), newManager(t))
	handler := guard.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	tests := []struct {
		name     string
		method   string
		target   string
		token    bool
		status   int
		location string
	}{
		{
			name:     "protected without token",
			method:   http.MethodGet,
			target:   "/dashboard/orders?page=2",
			status:   http.StatusFound,
			location: "/auth/login?redirect=/dashboard/orders%3Fpage%3D2",
		},
		{
			name:     "protected post without token",
			method:   http.MethodPost,
			target:   "/dashboard/addresses",
			status:   http.StatusSeeOther,
			location: "/auth/login?redirect=/dashboard/addresses",
		},
		{
			name:   "protected with token",
			method: http.MethodGet,
			target: "/dashboard",
			token:  true,
			status: http.StatusOK,
		},
		{
			name:     "login with token",
			method:   http.MethodGet,
			target:   "/auth/login?redirect=/dashboard/orders",
			token:    true,
			status:   http.StatusFound,
			location: "/dashboard/orders",
		},
		{
			name:     "login with token and hostile redirect",
			method:   http.MethodGet,
			target:   "/auth/login?redirect=//evil.example",
			token:    true,
			status:   http.StatusFound,
			location: "/dashboard",
		},
		{
			name:   "public page",
			method: http.MethodGet,
			target: "/terms",
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.token {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: "tok"})
			}
			rec := httptest.NewRecorder()

			require.NoError(t, handler(e.NewContext(req, rec)))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestErrorMiddleware(t *testing.T) {
	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	m := NewErrorMiddleware(navigation.DefaultRules(), newManager(t), discardLogger())

	t.Run("unauthorized clears session and redirects to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard/orders?status=paid", nil)
		rec := httptest.NewRecorder()

		m.HandleHTTPError(domainerrors.NewAPIError(http.StatusUnauthorized, "token expired"), e.NewContext(req, rec))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/auth/login?redirect=/dashboard/orders%3Fstatus%3Dpaid", rec.Header().Get(echo.HeaderLocation))
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "access_token=;")
	})

	t.Run("unauthorized post returns to default target", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/dashboard/addresses", nil)
		rec := httptest.NewRecorder()

		m.HandleHTTPError(errors.Wrap(domainerrors.ErrUnauthenticated, "list"), e.NewContext(req, rec))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth/login?redirect=/dashboard", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("json error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard/orders/9", nil)
		req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		m.HandleHTTPError(domainerrors.NewAPIError(http.StatusNotFound, "order not found"), e.NewContext(req, rec))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"UPSTREAM_NOT_FOUND"`)
		assert.Contains(t, rec.Body.String(), "order not found")
	})

	t.Run("html error page hides internals", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()

		m.HandleHTTPError(errors.New("dial tcp 10.0.0.1:443: connection refused"), e.NewContext(req, rec))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), domainerrors.GenericFailureMessage)
		assert.False(t, strings.Contains(rec.Body.String(), "10.0.0.1"))
	})

	t.Run("echo not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		rec := httptest.NewRecorder()

		m.HandleHTTPError(echo.ErrNotFound, e.NewContext(req, rec))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Not Found")
	})
}
