package middleware

import (
	"net/http"

	"socksflow/internal/domain/navigation"
	"socksflow/internal/session"

	"github.com/labstack/echo/v4"
)

// NavigationGuard applies the navigation rules before any page handler runs.
// It only looks at token presence; the API validates the token.
type NavigationGuard struct {
	rules    navigation.Rules
	sessions *session.Manager
}

// NewNavigationGuard creates a new navigation guard
func NewNavigationGuard(rules navigation.Rules, sessions *session.Manager) *NavigationGuard {
	return &NavigationGuard{rules: rules, sessions: sessions}
}

// Handle redirects or passes the request through.
func (g *NavigationGuard) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		decision := g.rules.Decide(navigation.Request{
			Path:     req.URL.Path,
			Query:    req.URL.Query(),
			RawQuery: req.URL.RawQuery,
			HasToken: g.sessions.HasToken(req),
		})
		if decision.Action == navigation.Pass {
			return next(c)
		}

		return c.Redirect(RedirectStatus(req), decision.Location)
	}
}

// RedirectStatus is 302 for safe methods and 303 after a form post.
func RedirectStatus(r *http.Request) int {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return http.StatusFound
	}

	return http.StatusSeeOther
}
