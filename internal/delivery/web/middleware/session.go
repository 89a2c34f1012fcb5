// Package middleware contains the storefront's page middleware: session
// loading, flash cookies, the navigation guard and the error handler.
package middleware

import (
	deliverycontext "socksflow/internal/delivery/context"
	"socksflow/internal/session"

	"github.com/labstack/echo/v4"
)

const keySession = "session"

// SessionMiddleware opens the request's session from the token cookie.
type SessionMiddleware struct {
	sessions *session.Manager
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(sessions *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// Load attaches the session to the echo context and tags the request context
// with its ID. The user record is fetched lazily, only by handlers that need it.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := m.sessions.FromRequest(c.Request())
		if s.Authenticated() {
			req := c.Request()
			c.SetRequest(req.WithContext(deliverycontext.WithSessionID(req.Context(), s.ID(), nil)))
		}
		SetSession(c, s)

		return next(c)
	}
}

// SetSession replaces the request's session, e.g. right after login.
func SetSession(c echo.Context, s *session.Session) {
	c.Set(keySession, s)
}

// GetSession returns the request's session. It is never nil once Load ran;
// without it an anonymous session is returned.
func GetSession(c echo.Context) *session.Session {
	if s, ok := c.Get(keySession).(*session.Session); ok && s != nil {
		return s
	}

	return &session.Session{}
}
