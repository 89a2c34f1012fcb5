// Package view renders the storefront pages from embedded html/template files.
package view

import (
	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/intent"
	"socksflow/internal/domain/service"
	"socksflow/internal/usecase"
)

// Page is the envelope every template receives.
type Page struct {
	Title         string
	Path          string
	RequestID     string
	Authenticated bool
	Flash         *service.Flash
	Data          any
}

// HomeData is the marketing page. Gate is set when the profile modal is open.
type HomeData struct {
	Catalog entity.Catalog
	Gate    *intent.Decision
}

// AuthData backs the login and registration forms.
type AuthData struct {
	Redirect string
}

// WizardData backs the profile-completion wizard.
type WizardData struct {
	State  *usecase.OnboardingState
	Return string
	Sizes  []string
}

// DashboardData backs the dashboard landing page.
type DashboardData struct {
	Overview    *usecase.Overview
	CompleteURL string
}

// SubscriptionsData backs the subscriptions page: list, creation surface or detail.
type SubscriptionsData struct {
	Subscriptions []entity.Subscription
	Creation      *usecase.CreationView
	Selected      *entity.Subscription
	Deferred      bool // Wizard was skipped; show a notice instead of redirecting.
	CompleteURL   string
	Frequencies   []entity.DeliveryFrequency
	Sizes         []string
}

// OrdersData backs the order history.
type OrdersData struct {
	Page     *entity.OrderPage
	Status   entity.OrderStatus
	Statuses []entity.OrderStatus
}

// OrderData backs the order detail.
type OrderData struct {
	Order *entity.Order
}

// PaymentData backs the payment hand-off page.
type PaymentData struct {
	Payment *usecase.PaymentView
}

// AddressesData backs the address book.
type AddressesData struct {
	Addresses entity.Addresses
}

// ProfileData backs the profile form.
type ProfileData struct {
	User  *entity.User
	Sizes []string
}

// ErrorData backs the error page.
type ErrorData struct {
	Status  int
	Message string
}

// Frequencies lists the delivery frequencies offered on forms.
var Frequencies = []entity.DeliveryFrequency{entity.FrequencyMonthly, entity.FrequencyBimonthly, entity.FrequencyQuarterly}

// OrderStatuses lists the order filters.
var OrderStatuses = []entity.OrderStatus{entity.OrderPending, entity.OrderPaid, entity.OrderShipped, entity.OrderCompleted, entity.OrderCancelled}
