// Package navigation holds the request-level authorization decision shared by the
// guard middleware and the page handlers.
package navigation

import (
	"net/url"
	"strings"
	"unicode"

	"socksflow/internal/domain/constants"
)

// Rules configures the guard.
type Rules struct {
	Protected     []string // Path prefixes that require a token.
	AuthOnly      []string // Path prefixes only meaningful without a token.
	LoginPath     string
	DefaultTarget string // Where signed-in users land when no valid redirect is given.
}

// DefaultRules protects the dashboard and the profile wizard.
func DefaultRules() Rules {
	return Rules{
		Protected:     []string{constants.PathDashboard, constants.PathCompleteProfile},
		AuthOnly:      []string{constants.PathLogin, "/auth/register"},
		LoginPath:     constants.PathLogin,
		DefaultTarget: constants.PathDashboard,
	}
}

// Request is everything the guard looks at. The token is never parsed.
type Request struct {
	Path     string
	Query    url.Values
	RawQuery string
	HasToken bool
}

// Action is the outcome kind of Decide.
type Action int

const (
	Pass Action = iota
	Redirect
)

// Decision is the outcome of Decide.
type Decision struct {
	Action   Action
	Location string
}

// Decide applies the rules in order: protected without token goes to login,
// auth-only with token goes to the redirect target, anything else passes.
func (r Rules) Decide(req Request) Decision {
	if !req.HasToken && matchesAny(req.Path, r.Protected) {
		target := req.Path
		if req.RawQuery != "" {
			target += "?" + req.RawQuery
		}

		return Decision{Action: Redirect, Location: r.LoginURL(target)}
	}

	if req.HasToken && matchesAny(req.Path, r.AuthOnly) {
		return Decision{Action: Redirect, Location: r.PostLoginTarget(req.Query.Get(constants.QueryRedirect))}
	}

	return Decision{Action: Pass}
}

// IsProtected reports whether path needs a token.
func (r Rules) IsProtected(path string) bool {
	return matchesAny(path, r.Protected)
}

// LoginURL builds the login location carrying target as the redirect parameter.
func (r Rules) LoginURL(target string) string {
	return r.LoginPath + "?" + constants.QueryRedirect + "=" + EscapeTarget(target)
}

// PostLoginTarget sanitizes a redirect parameter for a signed-in user. Targets
// pointing back into the auth-only area would loop and are treated as absent.
func (r Rules) PostLoginTarget(raw string) string {
	target := SanitizeTarget(raw, r.DefaultTarget)
	if matchesAny(pathOf(target), r.AuthOnly) {
		return r.DefaultTarget
	}

	return target
}

// CompletionURL is the profile wizard location that returns to target when done.
func CompletionURL(target string) string {
	return constants.PathCompleteProfile + "?" + constants.QueryReturn + "=" + EscapeTarget(target)
}

// EscapeTarget query-escapes a relative target but keeps slashes readable.
func EscapeTarget(target string) string {
	return strings.ReplaceAll(url.QueryEscape(target), "%2F", "/")
}

// SanitizeTarget returns raw if it is a same-origin relative path, otherwise fallback.
func SanitizeTarget(raw, fallback string) string {
	if !IsRelativeTarget(raw) {
		return fallback
	}

	return raw
}

// IsRelativeTarget accepts "/x" and rejects "//x", "/\x", absolute URLs and
// anything carrying control characters.
func IsRelativeTarget(raw string) bool {
	if raw == "" || raw[0] != '/' {
		return false
	}
	if strings.HasPrefix(raw, "//") || strings.ContainsRune(raw, '\\') {
		return false
	}
	if strings.IndexFunc(raw, unicode.IsControl) >= 0 {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return u.Scheme == "" && u.Host == "" && u.User == nil
}

func pathOf(target string) string {
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		return target[:i]
	}

	return target
}

func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if hasPathPrefix(path, p) {
			return true
		}
	}

	return false
}

// hasPathPrefix matches whole segments, so /dashboard covers /dashboard/orders
// but not /dashboards.
func hasPathPrefix(path, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return true
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}

	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
