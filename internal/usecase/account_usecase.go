// Package usecase contains the storefront's application rules. It orchestrates
// the domain layer and the external API on behalf of the page handlers.
package usecase

import (
	"context"

	"socksflow/internal/domain/entity"
	"socksflow/internal/session"
)

// --- Input DTOs ---

// LoginInput defines the data required for a customer to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput defines the data required to register a new customer.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// ProfileInput is the editable part of the account.
type ProfileInput struct {
	Name     string
	Phone    string
	SockSize string
	ShoeSize string
	Notes    string
}

// ChangePasswordInput defines the data required to change the password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// AccountUsecase covers sign in, sign up, sign out and account settings.
type AccountUsecase interface {
	// Login authenticates and returns the new session; the caller stores its token.
	Login(ctx context.Context, input LoginInput) (*session.Session, error)

	// Register creates the account and signs in.
	Register(ctx context.Context, input RegisterInput) (*session.Session, error)

	// Logout tears the session down.
	Logout(ctx context.Context, sess *session.Session)

	// UpdateProfile saves name, phone and size profile and returns the confirmed user.
	UpdateProfile(ctx context.Context, sess *session.Session, input ProfileInput) (*entity.User, error)

	// ChangePassword replaces the password.
	ChangePassword(ctx context.Context, sess *session.Session, input ChangePasswordInput) error
}
