// Package session holds the per-request authentication state: the token from
// the cookie and the lazily fetched user record it belongs to.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"socksflow/config"
	deliverycontext "socksflow/internal/delivery/context"
	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/profile"
	"socksflow/internal/domain/service"

	"go.uber.org/fx"
)

// Session is the explicit session context handed to handlers. A Session with an
// empty token is anonymous. It is scoped to one request and safe for concurrent use.
type Session struct {
	token string
	id    string
	auth  service.AuthService
	reqs  profile.Requirements

	mu     sync.Mutex
	loaded bool
	user   *entity.User
}

// Authenticated reports whether a token is present. The token is not validated
// here; the API does that on every call.
func (s *Session) Authenticated() bool {
	return s != nil && s.token != ""
}

// Token returns the bearer token for API calls.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}

	return s.token
}

// ID is a stable, non-secret identifier of the session for keys and logs.
func (s *Session) ID() string {
	if s == nil {
		return ""
	}

	return s.id
}

// User returns the current user, fetching it on first use. Anonymous sessions
// return nil without calling the API. Failures are not memoised.
func (s *Session) User(ctx context.Context) (*entity.User, error) {
	if !s.Authenticated() {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.user, nil
	}

	user, err := s.auth.FetchUser(ctx, s.token)
	if err != nil {
		return nil, err
	}
	s.user = user
	s.loaded = true

	return user, nil
}

// Refresh drops the cached user and fetches it again, used after a confirmed
// mutation so the page shows server state.
func (s *Session) Refresh(ctx context.Context) (*entity.User, error) {
	if !s.Authenticated() {
		return nil, nil
	}

	s.mu.Lock()
	s.loaded = false
	s.user = nil
	s.mu.Unlock()

	return s.User(ctx)
}

// Remember replaces the cached user with a record the API just returned.
func (s *Session) Remember(user *entity.User) {
	if !s.Authenticated() || user == nil {
		return
	}

	s.mu.Lock()
	s.user = user
	s.loaded = true
	s.mu.Unlock()
}

// Completeness evaluates the current user against the configured requirements.
func (s *Session) Completeness(ctx context.Context) (profile.Completeness, error) {
	user, err := s.User(ctx)
	if err != nil {
		return profile.Completeness{}, err
	}

	return profile.Evaluate(user, s.reqs), nil
}

// Requirements returns the profile requirements the session evaluates against.
func (s *Session) Requirements() profile.Requirements {
	return s.reqs
}

// Manager constructs and tears down sessions and owns the token cookie.
type Manager struct {
	auth       service.AuthService
	reqs       profile.Requirements
	cookieName string
	secure     bool
	maxAge     time.Duration
	logger     *slog.Logger
}

// ManagerParams holds dependencies for Manager, injected by Fx
type ManagerParams struct {
	fx.In

	Auth         service.AuthService
	Requirements profile.Requirements
	Config       *config.Config
	Logger       *slog.Logger
}

// NewManager creates a session manager.
func NewManager(params ManagerParams) *Manager {
	return &Manager{
		auth:       params.Auth,
		reqs:       params.Requirements,
		cookieName: params.Config.Session.CookieName,
		secure:     params.Config.Session.Secure,
		maxAge:     params.Config.Session.MaxAge,
		logger:     params.Logger,
	}
}

// Open builds a session for token. An empty token yields an anonymous session.
func (m *Manager) Open(token string) *Session {
	s := &Session{token: token, auth: m.auth, reqs: m.reqs}
	if token != "" {
		sum := sha256.Sum256([]byte(token))
		s.id = hex.EncodeToString(sum[:8])
	}

	return s
}

// FromRequest opens the session carried by the request cookie.
func (m *Manager) FromRequest(r *http.Request) *Session {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return m.Open("")
	}

	return m.Open(cookie.Value)
}

// HasToken reports whether the request carries a token cookie at all.
func (m *Manager) HasToken(r *http.Request) bool {
	cookie, err := r.Cookie(m.cookieName)

	return err == nil && cookie.Value != ""
}

// Close tears the session down: the API logout is best effort and the session
// becomes anonymous. The caller clears the cookie.
func (m *Manager) Close(ctx context.Context, s *Session) {
	if !s.Authenticated() {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)
	if err := m.auth.Logout(ctx, s.token); err != nil {
		logger.Warn("API logout failed, clearing session anyway",
			slog.String("session", s.id),
			slog.Any("error", err),
		)
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.loaded = false
	s.mu.Unlock()
}

// SetCookie stores token in the HttpOnly session cookie.
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
