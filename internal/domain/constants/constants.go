// Package constants contains values shared between layers.
package constants

// Pub/Sub provider names accepted in config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Cookie and query parameter names shared by the guard and the handlers.
const (
	QueryRedirect = "redirect"
	QueryReturn   = "return"
	QueryPlan     = "plan"
	QueryCreate   = "create"

	CookieFlash = "flash"
)

// Default landing paths.
const (
	PathDashboard       = "/dashboard"
	PathLogin           = "/auth/login"
	PathCompleteProfile = "/complete-profile"
	PathSubscriptions   = "/dashboard/subscriptions"
	PathHome            = "/"
)
