package service

import (
	"context"

	"socksflow/internal/domain/entity"
)

// CreateSubscriptionParams are the options chosen on the creation surface.
type CreateSubscriptionParams struct {
	Preferences     entity.DeliveryPreferences
	ShippingAddress entity.ShippingAddress
	PaymentMethod   entity.PaymentMethod
	AutoRenew       bool
}

// SubscriptionService is the subscription part of the external API.
// Status transitions are requested here and confirmed only by a re-fetch.
type SubscriptionService interface {
	ListSubscriptions(ctx context.Context, token string) ([]entity.Subscription, error)
	GetSubscription(ctx context.Context, token string, id int64) (*entity.Subscription, error)
	CreateSubscription(ctx context.Context, token, planCode string, params *CreateSubscriptionParams) (*entity.Subscription, error)
	PauseSubscription(ctx context.Context, token string, id int64) error
	ResumeSubscription(ctx context.Context, token string, id int64) error
	CancelSubscription(ctx context.Context, token string, id int64) error
	UpdatePreferences(ctx context.Context, token string, id int64, prefs entity.DeliveryPreferences) (*entity.Subscription, error)
}
