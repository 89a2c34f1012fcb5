package impl

import (
	"context"
	"strings"

	"socksflow/internal/domain/entity"
	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/domain/mutation"
	"socksflow/internal/domain/service"
	"socksflow/internal/errors"
	"socksflow/internal/session"
	"socksflow/internal/usecase"

	"go.uber.org/fx"
)

type accountService struct {
	auth     service.AuthService
	sessions *session.Manager
	tracker  *mutation.Tracker
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Auth     service.AuthService
	Sessions *session.Manager
	Tracker  *mutation.Tracker
}

// NewAccountService creates a new account service
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		auth:     params.Auth,
		sessions: params.Sessions,
		tracker:  params.Tracker,
	}
}

// Login exchanges credentials for a session.
func (s *accountService) Login(ctx context.Context, input usecase.LoginInput) (*session.Session, error) {
	tokens, err := s.auth.Login(ctx, strings.TrimSpace(input.Email), input.Password)
	if domainerrors.IsUnauthorized(err) {
		// A rejected login is not an expired session.
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, errors.Wrap(err, "login failed")
	}

	return s.sessions.Open(tokens.AccessToken), nil
}

// Register creates the account and opens a session for it.
func (s *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*session.Session, error) {
	tokens, err := s.auth.Register(ctx, &service.RegisterInput{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
		Phone:    strings.TrimSpace(input.Phone),
	})
	if err != nil {
		return nil, errors.Wrap(err, "registration failed")
	}

	return s.sessions.Open(tokens.AccessToken), nil
}

// Logout closes the session. It never fails.
func (s *accountService) Logout(ctx context.Context, sess *session.Session) {
	s.sessions.Close(ctx, sess)
}

// UpdateProfile saves the profile form. An empty sock size leaves the size profile untouched.
func (s *accountService) UpdateProfile(ctx context.Context, sess *session.Session, input usecase.ProfileInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	update := &service.ProfileUpdate{Name: &name, Phone: &phone}
	if size := strings.TrimSpace(input.SockSize); size != "" {
		update.SizeProfile = &entity.SizeProfile{
			SockSize: size,
			ShoeSize: strings.TrimSpace(input.ShoeSize),
			Notes:    strings.TrimSpace(input.Notes),
		}
	}

	var user *entity.User
	key := mutation.Key{Session: sess.ID(), Resource: resourceProfile, Action: "update"}
	err := s.tracker.Run(ctx, key, func(ctx context.Context) error {
		var err error
		user, err = s.auth.UpdateProfile(ctx, sess.Token(), update)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}
	sess.Remember(user)

	return user, nil
}

// ChangePassword replaces the password.
func (s *accountService) ChangePassword(ctx context.Context, sess *session.Session, input usecase.ChangePasswordInput) error {
	key := mutation.Key{Session: sess.ID(), Resource: "password", Action: "change"}
	err := s.tracker.Run(ctx, key, func(ctx context.Context) error {
		return s.auth.ChangePassword(ctx, sess.Token(), input.CurrentPassword, input.NewPassword)
	})
	if err != nil {
		return errors.Wrap(err, "failed to change password")
	}

	return nil
}
