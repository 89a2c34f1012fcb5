package usecase

import (
	"context"

	"socksflow/internal/domain/intent"
	"socksflow/internal/session"
)

// IntentUsecase handles the "subscribe to plan N" action from the plan cards.
type IntentUsecase interface {
	// SelectPlan decides between login, the profile modal and the creation surface.
	// Concurrent duplicates for the same session and plan share one decision.
	SelectPlan(ctx context.Context, sess *session.Session, planIndex int) (*intent.Decision, error)
}
