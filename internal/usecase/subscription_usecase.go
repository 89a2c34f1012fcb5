package usecase

import (
	"context"

	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/profile"
	"socksflow/internal/session"
)

// CreateSubscriptionInput is the creation form.
type CreateSubscriptionInput struct {
	PlanCode      string
	Frequency     entity.DeliveryFrequency
	Size          string
	Note          string
	AddressID     int64 // Zero picks the default address.
	PaymentMethod entity.PaymentMethod
	AutoRenew     bool
}

// CreationView is what the creation surface renders.
type CreationView struct {
	PlanIndex    int
	Plan         entity.Plan
	Catalog      entity.Catalog
	Addresses    entity.Addresses
	User         *entity.User
	Completeness profile.Completeness
}

// SubscriptionUsecase manages subscriptions. Transitions are requests; the
// confirmed state is whatever the next fetch returns.
type SubscriptionUsecase interface {
	List(ctx context.Context, sess *session.Session) ([]entity.Subscription, error)
	Get(ctx context.Context, sess *session.Session, id int64) (*entity.Subscription, error)

	// PrepareCreation re-checks completeness with the shared evaluator and loads the form data.
	PrepareCreation(ctx context.Context, sess *session.Session, planIndex int) (*CreationView, error)

	Create(ctx context.Context, sess *session.Session, input CreateSubscriptionInput) (*entity.Subscription, error)
	Pause(ctx context.Context, sess *session.Session, id int64) error
	Resume(ctx context.Context, sess *session.Session, id int64) error
	Cancel(ctx context.Context, sess *session.Session, id int64) error
	UpdatePreferences(ctx context.Context, sess *session.Session, id int64, prefs entity.DeliveryPreferences) (*entity.Subscription, error)
}
