package impl

import (
	"context"
	"log/slog"
	"strconv"

	"socksflow/internal/domain/entity"
	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/domain/intent"
	"socksflow/internal/domain/navigation"
	"socksflow/internal/domain/profile"
	"socksflow/internal/domain/service"
	"socksflow/internal/errors"
	"socksflow/internal/session"
	"socksflow/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

type intentService struct {
	catalog entity.Catalog
	rules   navigation.Rules
	group   singleflight.Group
	journey *journeyRecorder
}

// IntentServiceParams holds dependencies for IntentService, injected by Fx.
type IntentServiceParams struct {
	fx.In

	Catalog   entity.Catalog
	Rules     navigation.Rules
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewIntentService creates a new intent gate service
func NewIntentService(params IntentServiceParams) usecase.IntentUsecase {
	return &intentService{
		catalog: params.Catalog,
		rules:   params.Rules,
		journey: newJourneyRecorder(params.Publisher, params.Logger),
	}
}

// SelectPlan evaluates the gate for the session. An upstream 401 is reported as
// ErrUnauthenticated so the caller can tear the session down.
func (s *intentService) SelectPlan(ctx context.Context, sess *session.Session, planIndex int) (*intent.Decision, error) {
	if !sess.Authenticated() {
		decision := intent.Decide(s.catalog, s.rules, intent.Input{PlanIndex: planIndex})
		s.publish(ctx, &decision, 0)

		return &decision, nil
	}

	// The flight is shared, so it must not die with whichever request started it.
	flightCtx := context.WithoutCancel(ctx)
	key := sess.ID() + ":" + strconv.Itoa(planIndex)
	v, err, shared := s.group.Do(key, func() (any, error) {
		user, err := sess.User(flightCtx)
		if err != nil {
			return nil, err
		}

		decision := intent.Decide(s.catalog, s.rules, intent.Input{
			PlanIndex:     planIndex,
			Authenticated: true,
			Completeness:  profile.Evaluate(user, sess.Requirements()),
		})
		s.publish(flightCtx, &decision, user.ID)

		return &decision, nil
	})
	if err != nil {
		if domainerrors.IsUnauthorized(err) {
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "session rejected by API")
		}

		return nil, errors.Wrap(err, "failed to load user for plan selection")
	}

	decision := *v.(*intent.Decision)
	if shared {
		decision.Missing = append([]string(nil), decision.Missing...)
	}

	return &decision, nil
}

func (s *intentService) publish(ctx context.Context, d *intent.Decision, userID int64) {
	name := service.EventGateCreate
	switch d.Outcome {
	case intent.OutcomeLogin:
		name = service.EventGateLoginRequired
	case intent.OutcomeProfileModal:
		name = service.EventGateProfileRequired
	}

	s.journey.record(ctx, &service.JourneyEvent{
		Name:      name,
		UserID:    userID,
		PlanCode:  d.Plan.Code,
		PlanIndex: d.PlanIndex,
		Missing:   d.Missing,
	})
}
