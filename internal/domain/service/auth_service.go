// Package service defines the contracts of the external collaborators the
// storefront depends on. Implementations live in internal/infra.
package service

import (
	"context"

	"socksflow/internal/domain/entity"
)

// AuthTokens is what the API returns on a successful login or registration.
type AuthTokens struct {
	AccessToken  string
	RefreshToken string
}

// RegisterInput is the registration form as sent to the API.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string // Optional.
}

// ProfileUpdate is a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	Name        *string
	Phone       *string
	SizeProfile *entity.SizeProfile
}

// AuthService is the account part of the external API.
// Every failure is an *errors.APIError carrying a human-readable message.
type AuthService interface {
	// Login exchanges credentials for tokens.
	Login(ctx context.Context, email, password string) (*AuthTokens, error)

	// Register creates an account and returns tokens for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthTokens, error)

	// FetchUser returns the user the token belongs to, including addresses and size profile.
	FetchUser(ctx context.Context, token string) (*entity.User, error)

	// UpdateProfile applies a partial update and returns the authoritative user.
	UpdateProfile(ctx context.Context, token string, update *ProfileUpdate) (*entity.User, error)

	// ChangePassword replaces the password after checking the current one.
	ChangePassword(ctx context.Context, token, current, next string) error

	// Logout revokes the token server-side.
	Logout(ctx context.Context, token string) error
}
