package usecase

import (
	"context"

	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/profile"
	"socksflow/internal/domain/service"
	"socksflow/internal/session"
)

// ContactInput is the first wizard step.
type ContactInput struct {
	Name  string
	Phone string
}

// OnboardingState is what the wizard page renders.
type OnboardingState struct {
	User         *entity.User
	Resolution   profile.Resolution
	Position     int // 1-based position of the active step among required steps
	Total        int // number of required steps
	Completeness profile.Completeness
}

// OnboardingUsecase drives the profile-completion wizard.
type OnboardingUsecase interface {
	// Resolve computes the active step from the current user record.
	Resolve(ctx context.Context, sess *session.Session) (*OnboardingState, error)

	// SaveContact persists the phone (and name) and resolves the next step.
	SaveContact(ctx context.Context, sess *session.Session, input ContactInput) (*OnboardingState, error)

	// SaveAddress adds the first address and resolves the next step.
	SaveAddress(ctx context.Context, sess *session.Session, input *service.AddressInput) (*OnboardingState, error)

	// SaveSize persists the size profile and resolves the next step.
	SaveSize(ctx context.Context, sess *session.Session, size entity.SizeProfile) (*OnboardingState, error)

	// Skip leaves the wizard without saving anything. It only records the event.
	Skip(ctx context.Context, sess *session.Session)
}
