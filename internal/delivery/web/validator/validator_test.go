package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
	Confirm  string `form:"password_confirm" validate:"eqfield=Password"`
	Phone    string `form:"phone" validate:"omitempty,phone"`
	Size     string `form:"sock_size" validate:"oneof=S M L XL"`
}

func TestValidator_FieldErrors(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{
		Email:    "not-an-email",
		Password: "short",
		Confirm:  "other",
		Phone:    "abc",
		Size:     "XXL",
	})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "Enter a valid email address", fields["email"])
	assert.Equal(t, "Must be at least 8 characters", fields["password"])
	assert.Equal(t, "Does not match", fields["password_confirm"])
	assert.Equal(t, "Enter a valid phone number", fields["phone"])
	assert.Equal(t, "Choose one of: S, M, L, XL", fields["sock_size"])
}

func TestValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{
		Email:    "lilei@example.com",
		Password: "secret123",
		Confirm:  "secret123",
		Phone:    "+86 138-0013-8000",
		Size:     "M",
	})
	assert.NoError(t, err)
}

func TestFieldErrors_NotValidation(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
}
