package usecase

import (
	"context"

	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/service"
	"socksflow/internal/session"
)

// AddressUsecase manages the address book.
type AddressUsecase interface {
	// List returns the address book with at most one default. confirmedDefault is
	// the ID confirmed by the last set-default, or zero.
	List(ctx context.Context, sess *session.Session, confirmedDefault int64) (entity.Addresses, error)
	Create(ctx context.Context, sess *session.Session, input *service.AddressInput) (*entity.Address, error)
	Update(ctx context.Context, sess *session.Session, id int64, input *service.AddressInput) (*entity.Address, error)
	Delete(ctx context.Context, sess *session.Session, id int64) error
	SetDefault(ctx context.Context, sess *session.Session, id int64) error
}
