package impl

import (
	"context"

	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/profile"
	"socksflow/internal/domain/service"
	"socksflow/internal/errors"
	"socksflow/internal/session"
	"socksflow/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// recentOrders is how many orders the overview shows.
const recentOrders = 5

type dashboardService struct {
	subscriptions service.SubscriptionService
	orders        service.OrderService
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	Subscriptions service.SubscriptionService
	Orders        service.OrderService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		subscriptions: params.Subscriptions,
		orders:        params.Orders,
	}
}

// Overview loads the user, subscriptions and recent orders concurrently.
func (s *dashboardService) Overview(ctx context.Context, sess *session.Session) (*usecase.Overview, error) {
	overview := &usecase.Overview{}

	var subs []entity.Subscription
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user, err := sess.User(gctx)
		if err != nil {
			return err
		}
		overview.User = user
		overview.Completeness = profile.Evaluate(user, sess.Requirements())

		return nil
	})
	g.Go(func() error {
		var err error
		subs, err = s.subscriptions.ListSubscriptions(gctx, sess.Token())

		return err
	})
	g.Go(func() error {
		page, err := s.orders.ListOrders(gctx, sess.Token(), service.OrderQuery{Page: 1, PageSize: recentOrders})
		if err != nil {
			return err
		}
		overview.RecentOrders = page.Items

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to load dashboard")
	}

	overview.ActiveSubscription = currentSubscription(subs)

	return overview, nil
}

// currentSubscription prefers an active subscription, then a paused one.
func currentSubscription(subs []entity.Subscription) *entity.Subscription {
	for _, status := range []entity.SubscriptionStatus{entity.SubscriptionActive, entity.SubscriptionPaused} {
		for i := range subs {
			if subs[i].Status == status {
				return &subs[i]
			}
		}
	}

	return nil
}
