package impl

import (
	"context"
	"log/slog"
	"strings"

	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/mutation"
	"socksflow/internal/domain/profile"
	"socksflow/internal/domain/service"
	"socksflow/internal/errors"
	"socksflow/internal/session"
	"socksflow/internal/usecase"

	"go.uber.org/fx"
)

const resourceProfile = "profile"

type onboardingService struct {
	auth      service.AuthService
	addresses service.AddressService
	tracker   *mutation.Tracker
	journey   *journeyRecorder
}

// OnboardingServiceParams holds dependencies for OnboardingService, injected by Fx.
type OnboardingServiceParams struct {
	fx.In

	Auth      service.AuthService
	Addresses service.AddressService
	Tracker   *mutation.Tracker
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOnboardingService creates a new profile wizard service
func NewOnboardingService(params OnboardingServiceParams) usecase.OnboardingUsecase {
	return &onboardingService{
		auth:      params.Auth,
		addresses: params.Addresses,
		tracker:   params.Tracker,
		journey:   newJourneyRecorder(params.Publisher, params.Logger),
	}
}

// Resolve computes the wizard state from the current user record.
func (s *onboardingService) Resolve(ctx context.Context, sess *session.Session) (*usecase.OnboardingState, error) {
	user, err := sess.User(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for onboarding")
	}

	return buildState(user, sess.Requirements()), nil
}

// SaveContact persists the contact step.
func (s *onboardingService) SaveContact(ctx context.Context, sess *session.Session, input usecase.ContactInput) (*usecase.OnboardingState, error) {
	update := &service.ProfileUpdate{}
	if name := strings.TrimSpace(input.Name); name != "" {
		update.Name = &name
	}
	phone := strings.TrimSpace(input.Phone)
	update.Phone = &phone

	key := mutation.Key{Session: sess.ID(), Resource: resourceProfile, Action: profile.StepContact.String()}
	err := s.tracker.Run(ctx, key, func(ctx context.Context) error {
		user, err := s.auth.UpdateProfile(ctx, sess.Token(), update)
		if err != nil {
			return err
		}
		sess.Remember(user)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save contact step")
	}

	return s.afterSave(ctx, sess, profile.StepContact)
}

// SaveAddress adds an address. The first address in the book becomes the default.
func (s *onboardingService) SaveAddress(ctx context.Context, sess *session.Session, input *service.AddressInput) (*usecase.OnboardingState, error) {
	user, err := sess.User(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for address step")
	}

	in := *input
	if !user.HasAddress() {
		in.IsDefault = true
	}

	key := mutation.Key{Session: sess.ID(), Resource: resourceProfile, Action: profile.StepAddress.String()}
	err = s.tracker.Run(ctx, key, func(ctx context.Context) error {
		if _, err := s.addresses.CreateAddress(ctx, sess.Token(), &in); err != nil {
			return err
		}
		_, err := sess.Refresh(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save address step")
	}

	return s.afterSave(ctx, sess, profile.StepAddress)
}

// SaveSize persists the size step.
func (s *onboardingService) SaveSize(ctx context.Context, sess *session.Session, size entity.SizeProfile) (*usecase.OnboardingState, error) {
	size.SockSize = strings.TrimSpace(size.SockSize)

	key := mutation.Key{Session: sess.ID(), Resource: resourceProfile, Action: profile.StepSize.String()}
	err := s.tracker.Run(ctx, key, func(ctx context.Context) error {
		user, err := s.auth.UpdateProfile(ctx, sess.Token(), &service.ProfileUpdate{SizeProfile: &size})
		if err != nil {
			return err
		}
		sess.Remember(user)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save size step")
	}

	return s.afterSave(ctx, sess, profile.StepSize)
}

// Skip records that the customer left the wizard early.
func (s *onboardingService) Skip(ctx context.Context, sess *session.Session) {
	event := &service.JourneyEvent{Name: service.EventOnboardingSkipped}

	// The step is informational; a failed lookup must not block the skip.
	if user, err := sess.User(ctx); err == nil && user != nil {
		event.UserID = user.ID
		res := profile.ResolveStep(user, sess.Requirements())
		if !res.Terminal {
			event.Step = res.Step.String()
		}
		event.Missing = profile.Evaluate(user, sess.Requirements()).Missing
	}

	s.journey.record(ctx, event)
}

func (s *onboardingService) afterSave(ctx context.Context, sess *session.Session, saved profile.Step) (*usecase.OnboardingState, error) {
	user, err := sess.User(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload user after onboarding step")
	}

	state := buildState(user, sess.Requirements())

	var userID int64
	if user != nil {
		userID = user.ID
	}
	s.journey.record(ctx, &service.JourneyEvent{
		Name:    service.EventOnboardingStepSaved,
		UserID:  userID,
		Step:    saved.String(),
		Missing: state.Completeness.Missing,
	})
	if state.Resolution.Terminal {
		s.journey.record(ctx, &service.JourneyEvent{
			Name:   service.EventOnboardingCompleted,
			UserID: userID,
		})
	}

	return state, nil
}

func buildState(user *entity.User, reqs profile.Requirements) *usecase.OnboardingState {
	res := profile.ResolveStep(user, reqs)
	state := &usecase.OnboardingState{
		User:         user,
		Resolution:   res,
		Completeness: profile.Evaluate(user, reqs),
	}
	last := res.Step
	if res.Terminal {
		last = profile.Steps[len(profile.Steps)-1]
	}
	state.Position, state.Total = reqs.Position(last)

	return state
}
