package impl

import (
	"context"
	"strconv"
	"strings"

	"socksflow/internal/domain/entity"
	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/domain/mutation"
	"socksflow/internal/domain/profile"
	"socksflow/internal/domain/service"
	"socksflow/internal/errors"
	"socksflow/internal/session"
	"socksflow/internal/usecase"

	"go.uber.org/fx"
)

type subscriptionService struct {
	subscriptions service.SubscriptionService
	catalog       entity.Catalog
	tracker       *mutation.Tracker
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	Subscriptions service.SubscriptionService
	Catalog       entity.Catalog
	Tracker       *mutation.Tracker
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptions: params.Subscriptions,
		catalog:       params.Catalog,
		tracker:       params.Tracker,
	}
}

// List returns the customer's subscriptions as the API reports them.
func (s *subscriptionService) List(ctx context.Context, sess *session.Session) ([]entity.Subscription, error) {
	subs, err := s.subscriptions.ListSubscriptions(ctx, sess.Token())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return subs, nil
}

// Get returns one subscription.
func (s *subscriptionService) Get(ctx context.Context, sess *session.Session, id int64) (*entity.Subscription, error) {
	sub, err := s.subscriptions.GetSubscription(ctx, sess.Token(), id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get subscription %d", id)
	}

	return sub, nil
}

// PrepareCreation loads everything the creation surface needs. The handler decides
// what to do with an incomplete profile.
func (s *subscriptionService) PrepareCreation(ctx context.Context, sess *session.Session, planIndex int) (*usecase.CreationView, error) {
	index, plan := s.catalog.Resolve(planIndex)
	view := &usecase.CreationView{
		PlanIndex: index,
		Plan:      plan,
		Catalog:   s.catalog,
	}

	user, err := sess.User(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare subscription creation")
	}
	view.User = user
	view.Completeness = profile.Evaluate(user, sess.Requirements())
	if user != nil {
		view.Addresses = user.Addresses.WithSingleDefault(0)
	}

	return view, nil
}

// Create validates the plan and profile, snapshots the chosen address and asks the API.
func (s *subscriptionService) Create(ctx context.Context, sess *session.Session, input usecase.CreateSubscriptionInput) (*entity.Subscription, error) {
	plan, ok := s.catalog.ByCode(input.PlanCode)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrUnknownPlan, "plan %q", input.PlanCode)
	}

	user, err := sess.User(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for subscription")
	}
	if c := profile.Evaluate(user, sess.Requirements()); !c.Complete {
		return nil, errors.Wrapf(domainerrors.ErrProfileIncomplete, "missing %s", strings.Join(c.Missing, ", "))
	}

	address := pickAddress(user.Addresses, input.AddressID)
	if address == nil {
		return nil, errors.Wrap(domainerrors.ErrProfileIncomplete, "no delivery address on file")
	}

	method := input.PaymentMethod
	if method == "" {
		method = entity.PaymentAlipay
	}
	params := &service.CreateSubscriptionParams{
		Preferences: entity.DeliveryPreferences{
			Frequency: input.Frequency,
			Size:      strings.TrimSpace(input.Size),
			Note:      strings.TrimSpace(input.Note),
		},
		ShippingAddress: address.Snapshot(),
		PaymentMethod:   method,
		AutoRenew:       input.AutoRenew,
	}
	if params.Preferences.Size == "" && user.SizeProfile != nil {
		params.Preferences.Size = user.SizeProfile.SockSize
	}

	var created *entity.Subscription
	key := mutation.Key{Session: sess.ID(), Resource: "subscription", Action: "create"}
	err = s.tracker.Run(ctx, key, func(ctx context.Context) error {
		var err error
		created, err = s.subscriptions.CreateSubscription(ctx, sess.Token(), plan.Code, params)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}

	return created, nil
}

// Pause requests a pause.
func (s *subscriptionService) Pause(ctx context.Context, sess *session.Session, id int64) error {
	return s.transition(ctx, sess, id, "pause", s.subscriptions.PauseSubscription)
}

// Resume requests a resume.
func (s *subscriptionService) Resume(ctx context.Context, sess *session.Session, id int64) error {
	return s.transition(ctx, sess, id, "resume", s.subscriptions.ResumeSubscription)
}

// Cancel requests a cancellation.
func (s *subscriptionService) Cancel(ctx context.Context, sess *session.Session, id int64) error {
	return s.transition(ctx, sess, id, "cancel", s.subscriptions.CancelSubscription)
}

// UpdatePreferences changes frequency, size and note.
func (s *subscriptionService) UpdatePreferences(ctx context.Context, sess *session.Session, id int64, prefs entity.DeliveryPreferences) (*entity.Subscription, error) {
	var updated *entity.Subscription
	key := mutation.Key{Session: sess.ID(), Resource: subscriptionResource(id), Action: "preferences"}
	err := s.tracker.Run(ctx, key, func(ctx context.Context) error {
		var err error
		updated, err = s.subscriptions.UpdatePreferences(ctx, sess.Token(), id, prefs)

		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update preferences of subscription %d", id)
	}

	return updated, nil
}

func (s *subscriptionService) transition(ctx context.Context, sess *session.Session, id int64, action string,
	call func(ctx context.Context, token string, id int64) error,
) error {
	key := mutation.Key{Session: sess.ID(), Resource: subscriptionResource(id), Action: action}
	err := s.tracker.Run(ctx, key, func(ctx context.Context) error {
		return call(ctx, sess.Token(), id)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to %s subscription %d", action, id)
	}

	return nil
}

func subscriptionResource(id int64) string {
	return "subscription:" + strconv.FormatInt(id, 10)
}

// pickAddress returns the requested address, else the default, else the first one.
func pickAddress(book entity.Addresses, id int64) *entity.Address {
	if id != 0 {
		if a := book.Find(id); a != nil {
			return a
		}
	}
	if a := book.WithSingleDefault(0).Default(); a != nil {
		return book.Find(a.ID)
	}
	if len(book) > 0 {
		return &book[0]
	}

	return nil
}
