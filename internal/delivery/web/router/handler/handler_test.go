package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"socksflow/config"
	webmiddleware "socksflow/internal/delivery/web/middleware"
	"socksflow/internal/delivery/web/validator"
	"socksflow/internal/delivery/web/view"
	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/navigation"
	"socksflow/internal/domain/profile"
	"socksflow/internal/domain/service"
	"socksflow/internal/infra/auth"
	mockSvc "socksflow/internal/mocks/service"
	"socksflow/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "tok-123"

type testEnv struct {
	t        *testing.T
	e        *echo.Echo
	codec    service.FlashCodec
	sessions *session.Manager
	auth     *mockSvc.MockAuthService
	logger   *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Session: &config.SessionConfig{
			CookieName: "access_token",
			MaxAge:     time.Hour,
			FlashTTL:   5 * time.Minute,
		},
	}
	cfg.SecretKey.Flash = "handler-test-secret"

	codec, err := auth.NewJWTFlashCodec(cfg)
	require.NoError(t, err)
	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authSvc := mockSvc.NewMockAuthService(t)
	sessions := session.NewManager(session.ManagerParams{
		Auth:         authSvc,
		Requirements: profile.DefaultRequirements(),
		Config:       cfg,
		Logger:       logger,
	})

	e := echo.New()
	e.Renderer = renderer
	e.Validator = validator.New()
	e.HTTPErrorHandler = webmiddleware.NewErrorMiddleware(navigation.DefaultRules(), sessions, logger).HandleHTTPError
	e.Use(webmiddleware.NewSessionMiddleware(sessions).Load)
	e.Use(webmiddleware.NewFlashMiddleware(codec, cfg, logger).Handle)

	return &testEnv{t: t, e: e, codec: codec, sessions: sessions, auth: authSvc, logger: logger}
}

type requestOption func(*testEnv, *http.Request)

func withToken() requestOption {
	return func(_ *testEnv, r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "access_token", Value: testToken})
	}
}

func withFlash(flash *service.Flash) requestOption {
	return func(env *testEnv, r *http.Request) {
		value, err := env.codec.Encode(flash)
		require.NoError(env.t, err)
		r.AddCookie(&http.Cookie{Name: "flash", Value: value})
	}
}

func (env *testEnv) do(method, target string, form url.Values, opts ...requestOption) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, opt := range opts {
		opt(env, req)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	return rec
}

// flashOf decodes the flash the response stores for the next request.
func (env *testEnv) flashOf(rec *httptest.ResponseRecorder) *service.Flash {
	env.t.Helper()

	var value string
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash" && c.Value != "" {
			value = c.Value
		}
	}
	if value == "" {
		return nil
	}

	flash, err := env.codec.Decode(value)
	require.NoError(env.t, err)

	return flash
}

func cookieValue(rec *httptest.ResponseRecorder, name string) (string, bool) {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c.Value, true
		}
	}

	return "", false
}

func anySession() any {
	return mock.MatchedBy(func(s *session.Session) bool { return s.Token() == testToken })
}

func testCatalog() entity.Catalog {
	return entity.Catalog{
		{Code: "basic", Name: "Basic", PriceMonthly: decimal.RequireFromString("9.90"), Currency: "CNY", PairsPerMonth: 1},
		{Code: "plus", Name: "Plus", PriceMonthly: decimal.RequireFromString("19.90"), Currency: "CNY", PairsPerMonth: 3},
	}
}

func completeUser() *entity.User {
	return &entity.User{
		ID:    42,
		Name:  "Li Lei",
		Email: "lilei@example.com",
		Phone: "13800000000",
		Addresses: entity.Addresses{
			{ID: 3, RecipientName: "Li Lei", City: "Shanghai", Detail: "1 Nanjing Rd", IsDefault: true},
		},
		SizeProfile: &entity.SizeProfile{SockSize: "L"},
	}
}

func navigationRules() navigation.Rules {
	return navigation.DefaultRules()
}
