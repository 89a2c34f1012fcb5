package apiclient

import (
	"context"
	"net/http"

	"socksflow/internal/domain/entity"
	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/domain/service"
	"socksflow/internal/errors"

	"golang.org/x/sync/errgroup"
)

// Login exchanges credentials for tokens.
func (c *Client) Login(ctx context.Context, email, password string) (*service.AuthTokens, error) {
	var out tokenDTO
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Email: email, Password: password},
	}, &out)
	if err != nil {
		return nil, err
	}

	return &service.AuthTokens{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}, nil
}

// Register creates the account, then logs in with the same credentials since
// the API answers registration with the user record only.
func (c *Client) Register(ctx context.Context, input *service.RegisterInput) (*service.AuthTokens, error) {
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/register",
		body: registerRequest{
			Email:    input.Email,
			Name:     input.Name,
			Phone:    optional(input.Phone),
			Password: input.Password,
		},
	}, nil)
	if err != nil {
		return nil, err
	}

	return c.Login(ctx, input.Email, input.Password)
}

// FetchUser loads the user with address book and size profile. The three
// resources are fetched concurrently; the size profile is optional.
func (c *Client) FetchUser(ctx context.Context, token string) (*entity.User, error) {
	var (
		me        userDTO
		addresses entity.Addresses
		size      *entity.SizeProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.do(gctx, request{method: http.MethodGet, path: "/auth/me", token: token}, &me)
	})
	g.Go(func() error {
		list, err := c.ListAddresses(gctx, token)
		if err != nil {
			return err
		}
		addresses = list

		return nil
	})
	g.Go(func() error {
		var dto sizeProfileDTO
		err := c.do(gctx, request{method: http.MethodGet, path: "/users/me/size-profile", token: token}, &dto)
		if isStatus(err, http.StatusNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		size = dto.toEntity()

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	user := me.toEntity()
	user.Addresses = addresses
	if size != nil {
		user.SizeProfile = size
	}

	return user, nil
}

// UpdateProfile writes the user fields and, when present, the size profile,
// then re-reads the authoritative record.
func (c *Client) UpdateProfile(ctx context.Context, token string, update *service.ProfileUpdate) (*entity.User, error) {
	if update.Name != nil || update.Phone != nil {
		err := c.do(ctx, request{
			method: http.MethodPut,
			path:   "/users/me",
			token:  token,
			body:   updateUserRequest{Name: update.Name, Phone: update.Phone},
		}, nil)
		if err != nil {
			return nil, err
		}
	}

	if update.SizeProfile != nil {
		err := c.do(ctx, request{
			method: http.MethodPut,
			path:   "/users/me/size-profile",
			token:  token,
			body: sizeProfileRequest{
				SockSize: update.SizeProfile.SockSize,
				ShoeSize: optional(update.SizeProfile.ShoeSize),
				Notes:    optional(update.SizeProfile.Notes),
			},
		}, nil)
		if err != nil {
			return nil, err
		}
	}

	return c.FetchUser(ctx, token)
}

// ChangePassword replaces the password after the API checks the current one.
func (c *Client) ChangePassword(ctx context.Context, token, current, next string) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/change-password",
		token:  token,
		body:   changePasswordRequest{CurrentPassword: current, NewPassword: next},
	}, nil)
}

// Logout revokes the token. APIs without a logout endpoint are tolerated.
func (c *Client) Logout(ctx context.Context, token string) error {
	err := c.do(ctx, request{method: http.MethodPost, path: "/auth/logout", token: token}, nil)
	if isStatus(err, http.StatusNotFound) || isStatus(err, http.StatusMethodNotAllowed) || isStatus(err, http.StatusUnauthorized) {
		return nil
	}

	return err
}

func isStatus(err error, status int) bool {
	var apiErr *domainerrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status() == status
	}

	return false
}
