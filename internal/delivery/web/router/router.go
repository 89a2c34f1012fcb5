// Package router registers the storefront's routes.
package router

import (
	"socksflow/internal/delivery/web/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PageHandler         *handler.PageHandler
	AuthHandler         *handler.AuthHandler
	OnboardingHandler   *handler.OnboardingHandler
	DashboardHandler    *handler.DashboardHandler
	SubscriptionHandler *handler.SubscriptionHandler
	OrderHandler        *handler.OrderHandler
	AddressHandler      *handler.AddressHandler
	AccountHandler      *handler.AccountHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	pages         *handler.PageHandler
	auth          *handler.AuthHandler
	onboarding    *handler.OnboardingHandler
	dashboard     *handler.DashboardHandler
	subscriptions *handler.SubscriptionHandler
	orders        *handler.OrderHandler
	addresses     *handler.AddressHandler
	account       *handler.AccountHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pages:         params.PageHandler,
		auth:          params.AuthHandler,
		onboarding:    params.OnboardingHandler,
		dashboard:     params.DashboardHandler,
		subscriptions: params.SubscriptionHandler,
		orders:        params.OrderHandler,
		addresses:     params.AddressHandler,
		account:       params.AccountHandler,
	}
}

// RegisterRoutes sets up all the page routes. Access control is done by the
// navigation guard before routing, so groups here are only for readability.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public pages
	e.GET("/", r.pages.Home)
	e.GET("/subscribe", r.pages.Subscribe)
	e.GET("/terms", r.pages.Terms)
	e.GET("/privacy", r.pages.Privacy)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/login", r.auth.LoginPage)
		authGroup.POST("/login", r.auth.Login)
		authGroup.GET("/register", r.auth.RegisterPage)
		authGroup.POST("/register", r.auth.Register)
		authGroup.GET("/forgot-password", r.pages.ForgotPassword)
		authGroup.POST("/logout", r.auth.Logout)
	}

	// Profile-completion wizard
	wizardGroup := e.Group("/complete-profile")
	{
		wizardGroup.GET("", r.onboarding.Show)
		wizardGroup.POST("/contact", r.onboarding.SaveContact)
		wizardGroup.POST("/address", r.onboarding.SaveAddress)
		wizardGroup.POST("/size", r.onboarding.SaveSize)
		wizardGroup.POST("/skip", r.onboarding.Skip)
	}

	dashboardGroup := e.Group("/dashboard")
	{
		dashboardGroup.GET("", r.dashboard.Overview)

		dashboardGroup.GET("/subscriptions", r.subscriptions.List)
		dashboardGroup.POST("/subscriptions", r.subscriptions.Create)
		dashboardGroup.POST("/subscriptions/:id/pause", r.subscriptions.Pause)
		dashboardGroup.POST("/subscriptions/:id/resume", r.subscriptions.Resume)
		dashboardGroup.POST("/subscriptions/:id/cancel", r.subscriptions.Cancel)
		dashboardGroup.POST("/subscriptions/:id/preferences", r.subscriptions.Preferences)

		dashboardGroup.GET("/orders", r.orders.List)
		dashboardGroup.GET("/orders/:id", r.orders.Show)
		dashboardGroup.POST("/orders/:id/cancel", r.orders.Cancel)
		dashboardGroup.POST("/orders/:id/pay", r.orders.Pay)

		dashboardGroup.GET("/addresses", r.addresses.List)
		dashboardGroup.POST("/addresses", r.addresses.Create)
		dashboardGroup.POST("/addresses/:id", r.addresses.Update)
		dashboardGroup.POST("/addresses/:id/delete", r.addresses.Delete)
		dashboardGroup.POST("/addresses/:id/default", r.addresses.SetDefault)

		dashboardGroup.GET("/profile", r.account.Profile)
		dashboardGroup.POST("/profile", r.account.UpdateProfile)
		dashboardGroup.GET("/settings", r.account.Settings)
		dashboardGroup.POST("/settings/password", r.account.ChangePassword)
	}
}
