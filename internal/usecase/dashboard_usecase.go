package usecase

import (
	"context"

	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/profile"
	"socksflow/internal/session"
)

// Overview is the dashboard landing page.
type Overview struct {
	User               *entity.User
	Completeness       profile.Completeness
	ActiveSubscription *entity.Subscription
	RecentOrders       []entity.Order
}

// DashboardUsecase assembles the dashboard landing page.
type DashboardUsecase interface {
	Overview(ctx context.Context, sess *session.Session) (*Overview, error)
}
